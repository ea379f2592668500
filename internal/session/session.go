// Package session implements the analysis session that owns module
// descriptors, capability registries and the derived-data caches.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/sema/internal/adapters/snapshot"
	"go.trai.ch/sema/internal/cache"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/sema/internal/engine/loader"
	"go.trai.ch/sema/internal/registry"
)

// SnapshotSuffix is the file extension of module snapshot files.
const SnapshotSuffix = ".idb"

type resolvedPath struct {
	path    string
	builtin bool
}

// Session owns the module table for one analysis context. There is exactly
// one descriptor per distinct snapshot path; modules load lazily on first
// query. Session also implements ports.CorruptionNotifier for the modules it
// creates, deduplicating reports by snapshot content fingerprint.
type Session struct {
	cfg       *domain.Config
	decoder   ports.SnapshotDecoder
	reader    ports.MemberReader
	logger    ports.Logger
	cacheSize int

	mu       sync.Mutex
	modules  map[string]*loader.Module
	resolved *cache.Cache[string, resolvedPath]
	reported map[uint64]struct{}

	hosts *registry.Table
}

// New creates a session over the configured snapshot databases.
func New(cfg *domain.Config, decoder ports.SnapshotDecoder, reader ports.MemberReader, logger ports.Logger) *Session {
	size := cfg.ResolvedPathCacheSize
	if size <= 0 {
		size = domain.DefaultResolvedPathCacheSize
	}
	return &Session{
		cfg:       cfg,
		decoder:   decoder,
		reader:    reader,
		logger:    logger,
		cacheSize: size,
		modules:   make(map[string]*loader.Module),
		resolved:  cache.New[string, resolvedPath](size),
		reported:  make(map[uint64]struct{}),
		hosts:     registry.NewTable(),
	}
}

// ModuleAt returns the descriptor for the snapshot at path, creating it on
// first use. Repeated calls with the same path return the same descriptor
// regardless of name.
func (s *Session) ModuleAt(name, path string, builtin bool) *loader.Module {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mod, ok := s.modules[path]; ok {
		return mod
	}
	mod := loader.New(name, path, builtin, s.decoder, s.reader, s, s.logger)
	s.modules[path] = mod
	return mod
}

// Module resolves the named module against the configured databases and
// returns its descriptor. The second result is false when no database
// contains a snapshot for the name.
func (s *Session) Module(name string) (*loader.Module, bool) {
	rp, ok := s.resolve(name)
	if !ok {
		return nil, false
	}
	return s.ModuleAt(name, rp.path, rp.builtin), true
}

// ResolveSnapshotPath returns the snapshot path for the named module, or
// false when no configured database contains it. Successful resolutions are
// memoized in a bounded cache; misses are re-probed on every call.
func (s *Session) ResolveSnapshotPath(name string) (string, bool) {
	rp, ok := s.resolve(name)
	if !ok {
		return "", false
	}
	return rp.path, true
}

func (s *Session) resolve(name string) (resolvedPath, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rp, ok := s.resolved.TryGet(name); ok {
		return rp, true
	}
	for _, db := range s.cfg.Databases {
		candidate := filepath.Join(db.Path, name+SnapshotSuffix)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		rp := resolvedPath{path: candidate, builtin: db.Builtin}
		s.resolved.Put(name, rp)
		return rp, true
	}
	return resolvedPath{}, false
}

// SnapshotCorrupt implements ports.CorruptionNotifier. The snapshot content
// is fingerprinted so that repeated loads of the same corrupt bytes produce
// a single warning.
func (s *Session) SnapshotCorrupt(path string) {
	fp, err := snapshot.Fingerprint(path)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("corrupt snapshot %s (unreadable for fingerprinting)", path))
		return
	}

	s.mu.Lock()
	_, seen := s.reported[fp]
	if !seen {
		s.reported[fp] = struct{}{}
	}
	s.mu.Unlock()

	if !seen {
		s.logger.Warn(fmt.Sprintf("corrupt snapshot %s, treating module as empty", path))
	}
}

// Registry returns the capability registry attached to host, creating it on
// first use.
func (s *Session) Registry(host any) *registry.Registry {
	return s.hosts.For(host)
}

// Teardown detaches the host's capability registry and clears its
// registrations. A later Registry call for the same host yields a fresh one.
func (s *Session) Teardown(host any) {
	s.hosts.Detach(host)
}

// Close tears down every attached registry and drops the module table. The
// session must not be used afterwards.
func (s *Session) Close() {
	s.hosts.DetachAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules = make(map[string]*loader.Module)
	s.resolved = cache.New[string, resolvedPath](s.cacheSize)
	s.reported = make(map[uint64]struct{})
}
