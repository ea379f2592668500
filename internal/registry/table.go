package registry

import "sync"

// Table maps host objects (documents, buffers) to their registries. One
// registry exists per host, created lazily on first lookup and shared by all
// later lookups against the same host. The table takes the place of an
// attached-property bag: association only, never ownership — dropping the
// host entry is the whole teardown.
//
// Host keys are compared by identity, so hosts are expected to be pointers
// or other comparable identities.
type Table struct {
	mu    sync.Mutex
	hosts map[any]*Registry
}

// NewTable creates an empty host table.
func NewTable() *Table {
	return &Table{hosts: make(map[any]*Registry)}
}

// For returns the registry attached to host, creating it on first access.
// Creation is atomic per host.
func (t *Table) For(host any) *Registry {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.hosts[host]
	if !ok {
		r = New()
		t.hosts[host] = r
	}
	return r
}

// Detach tears down the host's registry: all registrations are cleared and
// the host link removed. The torn-down registry must not be reused; a later
// For call on the same host yields a fresh empty registry.
//
// Detach is not synchronized against in-flight lookups on the same registry
// from other goroutines; callers must quiesce lookups before tearing down.
func (t *Table) Detach(host any) {
	t.mu.Lock()
	r, ok := t.hosts[host]
	delete(t.hosts, host)
	t.mu.Unlock()
	if ok {
		r.clear()
	}
}

// DetachAll tears down every host. Used on session close.
func (t *Table) DetachAll() {
	t.mu.Lock()
	hosts := t.hosts
	t.hosts = make(map[any]*Registry)
	t.mu.Unlock()
	for _, r := range hosts {
		r.clear()
	}
}

// Len returns the number of attached hosts.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.hosts)
}
