package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sema/internal/adapters/config"
	"go.trai.ch/sema/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "sema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	path := writeConfig(t, `
version: "1"
databases:
  - path: snapshots/core
    builtin: true
  - path: /opt/sema/extra
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	base := filepath.Dir(path)
	require.Len(t, cfg.Databases, 2)
	require.Equal(t, filepath.Join(base, "snapshots", "core"), cfg.Databases[0].Path)
	require.True(t, cfg.Databases[0].Builtin)
	require.Equal(t, filepath.Clean("/opt/sema/extra"), cfg.Databases[1].Path)
	require.False(t, cfg.Databases[1].Builtin)
}

func TestLoadDefaultsCacheSize(t *testing.T) {
	path := writeConfig(t, `
databases:
  - path: db
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultResolvedPathCacheSize, cfg.ResolvedPathCacheSize)
}

func TestLoadHonorsCacheSize(t *testing.T) {
	path := writeConfig(t, `
databases:
  - path: db
cache:
  resolvedPaths: 16
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.ResolvedPathCacheSize)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := writeConfig(t, `
version: "9"
databases:
  - path: db
`)

	_, err := config.Load(path)
	require.ErrorIs(t, err, domain.ErrUnsupportedConfigVersion)
}

func TestLoadRejectsEmptyDatabases(t *testing.T) {
	path := writeConfig(t, `
version: "1"
databases: []
`)

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingDatabasePath(t *testing.T) {
	path := writeConfig(t, `
databases:
  - builtin: true
`)

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "sema.yaml"))
	require.Error(t, err)
}

func TestFileConfigLoaderJoinsCwd(t *testing.T) {
	path := writeConfig(t, `
databases:
  - path: db
`)

	loader := &config.FileConfigLoader{Filename: "sema.yaml"}
	cfg, err := loader.Load(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, cfg.Databases, 1)
}
