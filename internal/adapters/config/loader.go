// Package config provides the configuration loader for sema.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a configuration file from the given path and returns the domain
// config. Database paths are resolved relative to the config file's
// directory.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Version != "" && file.Version != "1" {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}
	if len(file.Databases) == 0 {
		return nil, zerr.New("no snapshot databases configured")
	}

	base := filepath.Dir(path)
	cfg := &domain.Config{
		Databases:             make([]domain.Database, 0, len(file.Databases)),
		ResolvedPathCacheSize: file.Cache.ResolvedPaths,
	}
	if cfg.ResolvedPathCacheSize <= 0 {
		cfg.ResolvedPathCacheSize = domain.DefaultResolvedPathCacheSize
	}

	for _, dto := range file.Databases {
		if dto.Path == "" {
			return nil, zerr.New("database entry is missing a path")
		}
		dbPath := dto.Path
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(base, dbPath)
		}
		cfg.Databases = append(cfg.Databases, domain.Database{
			Path:    filepath.Clean(dbPath),
			Builtin: dto.Builtin,
		})
	}

	return cfg, nil
}
