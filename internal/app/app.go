// Package app implements the application layer for sema.
package app

import (
	"context"
	"os"
	"sort"
	"strings"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/sema/internal/session"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sessions     *session.Factory
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, sessions *session.Factory, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		sessions:     sessions,
		logger:       log,
	}
}

// DatabaseListing describes one configured snapshot database and the module
// names its directory currently contains.
type DatabaseListing struct {
	Path    string
	Builtin bool
	Modules []string
}

// Modules lists the configured databases and their module names. cwd is the
// directory holding the sema.yaml configuration.
func (a *App) Modules(ctx context.Context, cwd string) ([]DatabaseListing, error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	listings := make([]DatabaseListing, 0, len(cfg.Databases))
	for _, db := range cfg.Databases {
		listing := DatabaseListing{Path: db.Path, Builtin: db.Builtin}

		entries, err := os.ReadDir(db.Path)
		if err != nil {
			// A configured directory that does not exist yet lists as empty.
			listings = append(listings, listing)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), session.SnapshotSuffix) {
				continue
			}
			listing.Modules = append(listing.Modules, strings.TrimSuffix(entry.Name(), session.SnapshotSuffix))
		}
		sort.Strings(listing.Modules)
		listings = append(listings, listing)
	}
	return listings, nil
}

// MembersOptions controls what a Members report includes.
type MembersOptions struct {
	IncludeHidden bool
	IncludeDoc    bool
}

// MembersReport is the loaded view of one module.
type MembersReport struct {
	Module  string
	Doc     string
	Members []string
	Hidden  []string
}

// Members resolves the named module against the configured databases, loads
// it and reports its member names.
func (a *App) Members(ctx context.Context, cwd, name string, opts MembersOptions) (*MembersReport, error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	sess := a.sessions.Open(cfg)
	defer sess.Close()

	mod, ok := sess.Module(name)
	if !ok {
		return nil, zerr.With(domain.ErrModuleNotFound, "module", name)
	}

	report := &MembersReport{
		Module:  name,
		Members: mod.MemberNames(ctx),
	}
	if opts.IncludeHidden {
		report.Hidden = mod.HiddenMemberNames(ctx)
	}
	if opts.IncludeDoc {
		report.Doc = mod.Documentation(ctx)
	}
	return report, nil
}
