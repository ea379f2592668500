// Package ports defines the interfaces between the core and its adapters.
package ports

import "go.trai.ch/sema/internal/core/domain"

// SnapshotDecoder reads module snapshots and their member-list sidecars.
//
//go:generate go run go.uber.org/mock/mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks
type SnapshotDecoder interface {
	// Decode opens the snapshot at path for shared read and decodes its root
	// record. Wire-level failures are reported as domain.ErrSnapshotMalformed,
	// structural failures as domain.ErrSnapshotInvalid; I/O failures come
	// back unwrapped so callers can distinguish a missing file from a corrupt
	// one.
	Decode(path string) (*domain.SnapshotDoc, error)

	// ReadMemberList reads the <path>.memlist sidecar, a newline-delimited
	// list of member names used as a fast existence probe. ok is false when
	// no sidecar exists.
	ReadMemberList(path string) (names []string, ok bool, err error)
}
