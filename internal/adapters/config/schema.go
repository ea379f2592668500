package config

// File represents the structure of the sema.yaml configuration file.
type File struct {
	Version   string        `yaml:"version"`
	Databases []DatabaseDTO `yaml:"databases"`
	Cache     CacheDTO      `yaml:"cache"`
}

// DatabaseDTO represents one snapshot database directory.
type DatabaseDTO struct {
	Path    string `yaml:"path"`
	Builtin bool   `yaml:"builtin"`
}

// CacheDTO holds the bounded-cache capacities.
type CacheDTO struct {
	ResolvedPaths int `yaml:"resolvedPaths"`
}
