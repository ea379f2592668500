package domain

// DefaultResolvedPathCacheSize bounds the resolved-snapshot-path cache when
// the config does not set a size.
const DefaultResolvedPathCacheSize = 128

// Database is one directory of module snapshots.
type Database struct {
	// Path is the directory holding .idb snapshot files.
	Path string
	// Builtin marks the interpreter's own standard library database.
	Builtin bool
}

// Config is the loaded application configuration.
type Config struct {
	Databases []Database
	// ResolvedPathCacheSize is the capacity of the session's
	// resolved-snapshot-path cache.
	ResolvedPathCacheSize int
}
