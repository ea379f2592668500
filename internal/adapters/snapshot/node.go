package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sema/internal/core/ports"
)

const (
	// DecoderNodeID is the unique identifier for the snapshot decoder Graft node.
	DecoderNodeID graft.ID = "adapter.snapshot_decoder"
	// ReaderNodeID is the unique identifier for the member reader Graft node.
	ReaderNodeID graft.ID = "adapter.member_reader"
)

func init() {
	graft.Register(graft.Node[ports.SnapshotDecoder]{
		ID:        DecoderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SnapshotDecoder, error) {
			return NewDecoder(), nil
		},
	})

	graft.Register(graft.Node[ports.MemberReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.MemberReader, error) {
			return NewReader(), nil
		},
	})
}
