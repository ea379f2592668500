// Package loader implements the lazily-loaded snapshot module descriptor.
package loader

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// DefaultLockTimeout bounds the wait for a module's load lock. Hitting it
// means another load of the same module has stalled for ten seconds, which
// should never happen with reasonable snapshot sizes.
const DefaultLockTimeout = 10 * time.Second

// Module is an immutable-once-loaded description of a library module, backed
// by a snapshot file that is decoded on first use.
//
// Lifecycle: NotLoaded -> Loading -> Loaded, guarded by a per-module lock
// with a bounded wait. Once Loaded the member tables are write-once and safe
// for concurrent readers without further locking.
type Module struct {
	name    string
	path    string
	builtin bool

	decoder  ports.SnapshotDecoder
	reader   ports.MemberReader
	notifier ports.CorruptionNotifier
	logger   ports.Logger

	lockTimeout time.Duration
	loadLock    *semaphore.Weighted

	state atomic.Int32

	// Written only while Loading, with the load lock held. The Loaded state
	// transition publishes them to readers.
	members    map[domain.Symbol]domain.Member
	hidden     map[domain.Symbol]domain.Member
	doc        string
	sourceFile string
	children   []string
	outcome    domain.LoadOutcome

	// Sidecar existence probe, read lazily by Member.
	probeMu   sync.Mutex
	probe     map[domain.Symbol]struct{}
	probeRead bool
}

// Option configures a Module.
type Option func(*Module)

// WithLockTimeout overrides the load-lock wait bound. Used in tests.
func WithLockTimeout(d time.Duration) Option {
	return func(m *Module) {
		m.lockTimeout = d
	}
}

// New creates a module descriptor for the snapshot at path. The snapshot is
// not touched until the first member query.
func New(
	name string,
	path string,
	builtin bool,
	decoder ports.SnapshotDecoder,
	reader ports.MemberReader,
	notifier ports.CorruptionNotifier,
	logger ports.Logger,
	opts ...Option,
) *Module {
	m := &Module{
		name:        name,
		path:        path,
		builtin:     builtin,
		decoder:     decoder,
		reader:      reader,
		notifier:    notifier,
		logger:      logger,
		lockTimeout: DefaultLockTimeout,
		loadLock:    semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// SnapshotPath returns the path of the backing snapshot file.
func (m *Module) SnapshotPath() string { return m.path }

// IsBuiltin reports whether the module belongs to the builtin database.
func (m *Module) IsBuiltin() bool { return m.builtin }

// State returns the current lifecycle state.
func (m *Module) State() domain.LoadState {
	return domain.LoadState(m.state.Load())
}

func (m *Module) setState(s domain.LoadState) {
	m.state.Store(int32(s))
}

// EnsureLoaded decodes the snapshot if that has not happened yet. It is a
// no-op once the module is Loaded.
//
// All snapshot failures are absorbed here: a missing, locked or corrupt
// snapshot leaves the module Loaded with no members, so callers never see an
// error and completion merely degrades. The one exception is a load-lock
// timeout, which is logged as a defect-class diagnostic and leaves the module
// NotLoaded; the next EnsureLoaded call retries.
func (m *Module) EnsureLoaded(ctx context.Context) {
	if m.State() == domain.Loaded {
		return
	}

	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()
	if err := m.loadLock.Acquire(lockCtx, 1); err != nil {
		m.logger.Error(zerr.With(
			zerr.With(
				zerr.Wrap(err, domain.ErrLoadLockTimeout.Error()),
				"module", m.name,
			),
			"path", m.path,
		))
		return
	}
	defer m.loadLock.Release(1)

	// Another goroutine may have finished the load while we waited.
	if m.State() != domain.NotLoaded {
		return
	}

	// Loading is set before any I/O so that recursive member references
	// encountered mid-load see an in-progress module instead of retriggering
	// a load. Loaded is advanced unconditionally: there is no path that
	// leaves the module stuck in Loading.
	m.setState(domain.Loading)
	defer m.setState(domain.Loaded)

	m.load()
}

func (m *Module) load() {
	doc, err := m.decoder.Decode(m.path)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotMalformed) || errors.Is(err, domain.ErrSnapshotInvalid) {
			m.outcome = domain.OutcomeCorrupt
			m.notifier.SnapshotCorrupt(m.path)
			return
		}
		// Missing or locked snapshot. Deliberately swallowed: an absent
		// database must never take the editing session down.
		m.outcome = domain.OutcomeSuppressed
		return
	}

	members := make(map[domain.Symbol]domain.Member, len(doc.Members))
	hidden := make(map[domain.Symbol]domain.Member)
	for name, rec := range doc.Members {
		err := m.reader.Read(doc, name, rec, func(mem domain.Member) {
			if mem.Hidden() {
				hidden[mem.Name] = mem
			} else {
				members[mem.Name] = mem
			}
		})
		if err != nil {
			m.logger.Warn("skipping unreadable member " + name + " in " + m.path)
		}
	}

	m.members = members
	m.hidden = hidden
	m.doc = doc.Doc
	m.sourceFile = doc.Filename
	m.children = doc.Children
	m.outcome = domain.OutcomeSuccess
}

// Member returns the member with the given name, loading the snapshot on
// demand. Before committing to a full decode it consults the .memlist
// sidecar: a name the sidecar rules out misses without any decode. Hidden
// members are not returned; they exist for internal type resolution only.
func (m *Module) Member(ctx context.Context, name string) (domain.Member, bool) {
	if m.State() != domain.Loaded {
		if names, ok := m.memberProbe(); ok {
			if _, present := names[domain.Sym(name)]; !present {
				return domain.Member{}, false
			}
		}
		m.EnsureLoaded(ctx)
	}
	if m.State() != domain.Loaded {
		// Load-lock timeout: the module stays unpopulated for now.
		return domain.Member{}, false
	}
	mem, ok := m.members[domain.Sym(name)]
	return mem, ok
}

// HiddenMember returns a member from the hidden table. It forces a load.
func (m *Module) HiddenMember(ctx context.Context, name string) (domain.Member, bool) {
	m.EnsureLoaded(ctx)
	if m.State() != domain.Loaded {
		return domain.Member{}, false
	}
	mem, ok := m.hidden[domain.Sym(name)]
	return mem, ok
}

// MemberNames forces a load and returns the enumerable member names, sorted.
// Hidden members never enumerate here; see HiddenMemberNames.
func (m *Module) MemberNames(ctx context.Context) []string {
	m.EnsureLoaded(ctx)
	if m.State() != domain.Loaded {
		return nil
	}
	names := make([]string, 0, len(m.members))
	for sym := range m.members {
		names = append(names, sym.String())
	}
	sort.Strings(names)
	return names
}

// HiddenMemberNames forces a load and returns the hidden member names, sorted.
func (m *Module) HiddenMemberNames(ctx context.Context) []string {
	m.EnsureLoaded(ctx)
	if m.State() != domain.Loaded {
		return nil
	}
	names := make([]string, 0, len(m.hidden))
	for sym := range m.hidden {
		names = append(names, sym.String())
	}
	sort.Strings(names)
	return names
}

// Documentation forces a load and returns the module documentation.
func (m *Module) Documentation(ctx context.Context) string {
	m.EnsureLoaded(ctx)
	if m.State() != domain.Loaded {
		return ""
	}
	return m.doc
}

// SourceFile forces a load and returns the source file path recorded in the
// snapshot, if any.
func (m *Module) SourceFile(ctx context.Context) string {
	m.EnsureLoaded(ctx)
	if m.State() != domain.Loaded {
		return ""
	}
	return m.sourceFile
}

// Children forces a load and returns the child module names in snapshot
// order.
func (m *Module) Children(ctx context.Context) []string {
	m.EnsureLoaded(ctx)
	if m.State() != domain.Loaded {
		return nil
	}
	return m.children
}

// memberProbe reads the sidecar name list once. ok is false when no sidecar
// exists, in which case Member falls through to a full load.
func (m *Module) memberProbe() (map[domain.Symbol]struct{}, bool) {
	m.probeMu.Lock()
	defer m.probeMu.Unlock()

	if m.probeRead {
		return m.probe, m.probe != nil
	}
	m.probeRead = true

	names, ok, err := m.decoder.ReadMemberList(m.path)
	if err != nil || !ok {
		return nil, false
	}
	m.probe = make(map[domain.Symbol]struct{}, len(names))
	for _, name := range names {
		m.probe[domain.Sym(name)] = struct{}{}
	}
	return m.probe, true
}
