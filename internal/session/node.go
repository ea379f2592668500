package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sema/internal/adapters/logger"
	"go.trai.ch/sema/internal/adapters/snapshot"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

// NodeID is the unique identifier for the session factory Graft node.
const NodeID graft.ID = "session.factory"

// Factory creates sessions once a configuration is available. Configuration
// is only known at command time, so the wiring graph provides a factory
// rather than a session.
type Factory struct {
	decoder ports.SnapshotDecoder
	reader  ports.MemberReader
	logger  ports.Logger
}

// NewFactory creates a session factory over the given collaborators.
func NewFactory(decoder ports.SnapshotDecoder, reader ports.MemberReader, log ports.Logger) *Factory {
	return &Factory{decoder: decoder, reader: reader, logger: log}
}

// Open creates a session over the configured snapshot databases.
func (f *Factory) Open(cfg *domain.Config) *Session {
	return New(cfg, f.decoder, f.reader, f.logger)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			snapshot.DecoderNodeID,
			snapshot.ReaderNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			decoder, err := graft.Dep[ports.SnapshotDecoder](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.MemberReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(decoder, reader, log), nil
		},
	})
}
