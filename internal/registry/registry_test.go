package registry_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/sema/internal/registry"
)

// contentType is a test double for the editor's content-type model.
type contentType struct {
	name  string
	bases []ports.ContentType
}

func (c *contentType) Name() string { return c.name }
func (c *contentType) BaseTypes() []ports.ContentType { return c.bases }

// faultyContentType panics when inspected, standing in for a broken editor
// object crossing the capability boundary.
type faultyContentType struct{}

func (faultyContentType) Name() string { panic("broken content type") }
func (faultyContentType) BaseTypes() []ports.ContentType { panic("broken content type") }

type completer interface {
	Complete(prefix string) []string
}

type listCompleter struct {
	id    uuid.UUID
	items []string
}

func (c *listCompleter) Complete(string) []string { return c.items }
func (c *listCompleter) CapabilityID() uuid.UUID { return c.id }

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	r := registry.New()
	a := &listCompleter{items: []string{"a"}}
	b := &listCompleter{items: []string{"b"}}

	registry.Add(r, a)
	registry.Add(r, b) // no-op: a already resolves

	got, ok := registry.Get[*listCompleter](r)
	require.True(t, ok)
	require.Same(t, a, got)
}

func TestRegistry_AssignabilityFallback(t *testing.T) {
	r := registry.New()
	c := &listCompleter{items: []string{"x"}}
	registry.Add(r, c) // registered under the concrete type

	got, ok := registry.Get[completer](r)
	require.True(t, ok)
	require.Same(t, c, got)

	// Registering under the interface is now a no-op too: the fallback
	// already resolves a service for it.
	other := &listCompleter{items: []string{"y"}}
	registry.Add[completer](r, other)
	got, ok = registry.Get[completer](r)
	require.True(t, ok)
	require.Same(t, c, got)
}

func TestRegistry_MissIsAbsentNotError(t *testing.T) {
	r := registry.New()
	_, ok := registry.Get[completer](r)
	require.False(t, ok)

	registry.Remove[completer](r) // removing an absent service is fine
	_, ok = r.GetID(uuid.New())
	require.False(t, ok)
}

func TestRegistry_ContentTypeExactAndCaseInsensitive(t *testing.T) {
	r := registry.New()
	python := &contentType{name: "Python"}
	c := &listCompleter{items: []string{"def"}}
	registry.AddForContentType(r, c, python)

	got, ok := registry.GetForContentType[*listCompleter](r, python)
	require.True(t, ok)
	require.Same(t, c, got)

	// Name comparison is case-insensitive.
	got, ok = registry.GetForContentType[*listCompleter](r, &contentType{name: "PYTHON"})
	require.True(t, ok)
	require.Same(t, c, got)

	_, ok = registry.GetForContentType[*listCompleter](r, &contentType{name: "Ruby"})
	require.False(t, ok)
}

func TestRegistry_ContentTypeBaseFallback(t *testing.T) {
	r := registry.New()
	bar := &contentType{name: "Bar"}
	foo := &contentType{name: "Foo", bases: []ports.ContentType{bar}}

	c := &listCompleter{items: []string{"base"}}
	registry.AddForContentType(r, c, bar)

	// No registration under Foo itself; the walk falls back to Bar.
	got, ok := registry.GetForContentType[*listCompleter](r, foo)
	require.True(t, ok)
	require.Same(t, c, got)
}

func TestRegistry_ContentTypeDeclaredBaseOrderWins(t *testing.T) {
	r := registry.New()
	first := &contentType{name: "First"}
	second := &contentType{name: "Second"}
	derived := &contentType{name: "Derived", bases: []ports.ContentType{first, second}}

	a := &listCompleter{items: []string{"first"}}
	b := &listCompleter{items: []string{"second"}}
	registry.AddForContentType(r, b, second)
	registry.AddForContentType(r, a, first)

	got, ok := registry.GetForContentType[*listCompleter](r, derived)
	require.True(t, ok)
	require.Same(t, a, got, "the first declared base must win")
}

func TestRegistry_ContentTypeGrandparentFallback(t *testing.T) {
	r := registry.New()
	root := &contentType{name: "text"}
	code := &contentType{name: "code", bases: []ports.ContentType{root}}
	python := &contentType{name: "Python", bases: []ports.ContentType{code}}

	c := &listCompleter{items: []string{"root"}}
	registry.AddForContentType(r, c, root)

	got, ok := registry.GetForContentType[*listCompleter](r, python)
	require.True(t, ok)
	require.Same(t, c, got)
}

func TestRegistry_FaultyContentTypeIsAMiss(t *testing.T) {
	r := registry.New()
	registry.Add(r, &listCompleter{})

	_, ok := registry.GetForContentType[*listCompleter](r, faultyContentType{})
	require.False(t, ok)
}

func TestRegistry_GUIDLookup(t *testing.T) {
	r := registry.New()
	id := uuid.New()
	svc := &listCompleter{items: []string{"guid"}}

	r.AddID(id, svc)
	got, ok := r.GetID(id)
	require.True(t, ok)
	require.Same(t, svc, got)

	r.RemoveID(id)
	_, ok = r.GetID(id)
	require.False(t, ok)
}

func TestRegistry_GUIDFallbackToTypeRegistrations(t *testing.T) {
	r := registry.New()
	id := uuid.New()
	svc := &listCompleter{id: id}
	registry.Add(r, svc) // type-keyed registration only

	got, ok := r.GetID(id)
	require.True(t, ok)
	require.Same(t, svc, got)
}

func TestRegistry_GetAllInRegistrationOrder(t *testing.T) {
	r := registry.New()
	a := &listCompleter{items: []string{"a"}}
	type otherCompleter struct{ listCompleter }
	b := &otherCompleter{}

	registry.Add(r, a)
	registry.Add(r, b)

	all := registry.GetAll[completer](r)
	require.Len(t, all, 2)
	require.Same(t, a, all[0])
	require.Same(t, b, all[1])
}

func TestRegistry_RemoveThenReRegister(t *testing.T) {
	r := registry.New()
	a := &listCompleter{items: []string{"a"}}
	registry.Add(r, a)
	registry.Remove[*listCompleter](r)

	_, ok := registry.Get[*listCompleter](r)
	require.False(t, ok)

	b := &listCompleter{items: []string{"b"}}
	registry.Add(r, b)
	got, ok := registry.Get[*listCompleter](r)
	require.True(t, ok)
	require.Same(t, b, got)
}

func TestTable_OneRegistryPerHost(t *testing.T) {
	table := registry.NewTable()
	hostA := &struct{ name string }{"buffer-a"}
	hostB := &struct{ name string }{"buffer-b"}

	require.Same(t, table.For(hostA), table.For(hostA))
	require.NotSame(t, table.For(hostA), table.For(hostB))
	require.Equal(t, 2, table.Len())
}

func TestTable_DetachYieldsFreshRegistryNextTime(t *testing.T) {
	table := registry.NewTable()
	host := &struct{ id int }{1}

	old := table.For(host)
	registry.Add(old, &listCompleter{items: []string{"stale"}})

	table.Detach(host)
	require.Equal(t, 0, table.Len())

	// The torn-down registry lost its registrations.
	_, ok := registry.Get[*listCompleter](old)
	require.False(t, ok)

	// Attachment is keyed by host: a new access creates a fresh registry.
	fresh := table.For(host)
	require.NotSame(t, old, fresh)
	_, ok = registry.Get[*listCompleter](fresh)
	require.False(t, ok)
}

func TestTable_DetachAll(t *testing.T) {
	table := registry.NewTable()
	table.For(&struct{ id int }{1})
	table.For(&struct{ id int }{2})

	table.DetachAll()
	require.Equal(t, 0, table.Len())
}
