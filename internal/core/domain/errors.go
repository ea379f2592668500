package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheMiss is returned by the cache indexer when the key is absent.
	ErrCacheMiss = zerr.New("key not present in cache")

	// ErrSnapshotMalformed is returned when a snapshot cannot be decoded at the wire level.
	ErrSnapshotMalformed = zerr.New("snapshot is malformed")

	// ErrSnapshotInvalid is returned when a snapshot decodes but has the wrong structure.
	ErrSnapshotInvalid = zerr.New("snapshot has invalid structure")

	// ErrLoadLockTimeout is logged when a module load lock cannot be acquired in time.
	ErrLoadLockTimeout = zerr.New("timed out waiting for module load lock")

	// ErrModuleNotFound is returned when no snapshot exists for a requested module.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrUnsupportedConfigVersion is returned for config files with an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")
)
