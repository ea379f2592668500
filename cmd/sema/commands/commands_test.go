package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/sema/cmd/sema/commands"
	"go.trai.ch/sema/internal/adapters/snapshot"
	"go.trai.ch/sema/internal/app"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports/mocks"
	"go.trai.ch/sema/internal/session"
	"go.uber.org/mock/gomock"
)

func writeSnapshot(t *testing.T, dir, name string, doc map[string]any) {
	t.Helper()

	data, err := msgpack.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+session.SnapshotSuffix), data, 0o600))
}

// newCLI builds a CLI over real snapshot adapters and a config loader
// returning cfg, with output captured in the returned buffer.
func newCLI(t *testing.T, cfg *domain.Config) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	sessions := session.NewFactory(snapshot.NewDecoder(), snapshot.NewReader(), log)
	cli := commands.New(app.New(loader, sessions, log))

	var buf bytes.Buffer
	cli.SetOutput(&buf)
	return cli, &buf
}

func TestModules(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "os", map[string]any{})
	cfg := &domain.Config{Databases: []domain.Database{{Path: dir, Builtin: true}}}

	cli, buf := newCLI(t, cfg)
	cli.SetArgs([]string{"modules"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Equal(t, dir+" (builtin)\n  os\n", buf.String())
}

func TestMembers(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "os", map[string]any{
		"members": map[string]any{
			"getcwd": map[string]any{"kind": "function"},
			"sep":    map[string]any{"kind": "constant"},
		},
	})
	cfg := &domain.Config{Databases: []domain.Database{{Path: dir}}}

	cli, buf := newCLI(t, cfg)
	cli.SetArgs([]string{"members", "os"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Equal(t, "getcwd\nsep\n", buf.String())
}

func TestMembers_HiddenAndDoc(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "os", map[string]any{
		"doc": "operating system facilities",
		"members": map[string]any{
			"getcwd":  map[string]any{"kind": "function"},
			"_Secret": map[string]any{"kind": "type", "include": false},
		},
	})
	cfg := &domain.Config{Databases: []domain.Database{{Path: dir}}}

	cli, buf := newCLI(t, cfg)
	cli.SetArgs([]string{"members", "os", "--hidden", "--doc"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Equal(t, "operating system facilities\n\ngetcwd\n_Secret (hidden)\n", buf.String())
}

func TestMembers_UnknownModule(t *testing.T) {
	cfg := &domain.Config{Databases: []domain.Database{{Path: t.TempDir()}}}

	cli, _ := newCLI(t, cfg)
	cli.SetArgs([]string{"members", "nonexistent"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrModuleNotFound)
}

func TestVersion(t *testing.T) {
	cfg := &domain.Config{Databases: []domain.Database{{Path: t.TempDir()}}}

	cli, buf := newCLI(t, cfg)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Contains(t, buf.String(), "sema version")
}
