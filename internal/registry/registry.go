// Package registry implements the per-host capability registry: a
// service-locator keyed by exact type, by capability GUID, or by
// (type, content type) pair with content-type-inheritance fallback.
package registry

import (
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/sema/internal/core/ports"
)

// Capability is implemented by services that expose a stable identifier, for
// callers that only hold a GUID rather than a static type.
type Capability interface {
	CapabilityID() uuid.UUID
}

type typeEntry struct {
	typ      reflect.Type
	instance any
}

type idEntry struct {
	id       uuid.UUID
	instance any
}

type contentTypeEntry struct {
	typ         reflect.Type
	contentType string
	instance    any
}

// Registry stores the services attached to one host object. All operations
// are serialized under a single per-registry lock; the content-type
// inheritance walk recurses with that lock held, never re-acquiring it.
//
// Lookup misses are not errors: every getter returns an absent result so a
// caller's feature degrades instead of crashing.
type Registry struct {
	mu            sync.Mutex
	byType        []typeEntry
	byID          []idEntry
	byContentType []contentTypeEntry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Add registers instance under the exact type T. It is a no-op when a
// service already resolves for T, including through the assignability
// fallback — first registration wins.
func Add[T any](r *Registry, instance T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := lookupLocked[T](r); ok {
		return
	}
	r.byType = append(r.byType, typeEntry{typ: typeFor[T](), instance: instance})
}

// AddForContentType registers instance under (T, content type). The
// no-replace rule applies within the content type's resolution scope,
// matching what GetForContentType would find.
func AddForContentType[T any](r *Registry, instance T, ct ports.ContentType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := contentTypeLookupLocked[T](r, ct); ok {
		return
	}
	r.byContentType = append(r.byContentType, contentTypeEntry{
		typ:         typeFor[T](),
		contentType: ct.Name(),
		instance:    instance,
	})
}

// AddID registers instance under an explicit capability identifier. No-op if
// the identifier already resolves.
func (r *Registry) AddID(id uuid.UUID, instance any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.idLookupLocked(id); ok {
		return
	}
	r.byID = append(r.byID, idEntry{id: id, instance: instance})
}

// Get resolves a service by exact type first, then by scanning all type
// registrations for the first instance assignable to T.
func Get[T any](r *Registry) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lookupLocked[T](r)
}

// GetForContentType resolves a service scoped to a content type: exact
// (T, name) pair, then a case-insensitive name match, then the same lookup
// repeated for each declared base type, depth-first in declared order. A
// faulty content-type object (panicking Name or BaseTypes) counts as a miss.
//
// The walk is not memoized; callers that resolve on a hot path cache the
// result themselves.
func GetForContentType[T any](r *Registry, ct ports.ContentType) (v T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			v, ok = zero, false
		}
	}()
	r.mu.Lock()
	defer r.mu.Unlock()
	return contentTypeLookupLocked[T](r, ct)
}

// GetID resolves a service by capability identifier: GUID registrations
// first, then type registrations whose instance reports a matching
// CapabilityID.
func (r *Registry) GetID(id uuid.UUID) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idLookupLocked(id)
}

// GetAll returns every type-registered service assignable to T, in
// registration order.
func GetAll[T any](r *Registry) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []T
	for _, e := range r.byType {
		if v, ok := e.instance.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Remove unregisters the exact-type registration for T. No error if absent.
func Remove[T any](r *Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := typeFor[T]()
	for i, e := range r.byType {
		if e.typ == want {
			r.byType = append(r.byType[:i], r.byType[i+1:]...)
			return
		}
	}
}

// RemoveForContentType unregisters the exact (T, content type name) pair.
func RemoveForContentType[T any](r *Registry, ct ports.ContentType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := typeFor[T]()
	name := ct.Name()
	for i, e := range r.byContentType {
		if e.typ == want && e.contentType == name {
			r.byContentType = append(r.byContentType[:i], r.byContentType[i+1:]...)
			return
		}
	}
}

// RemoveID unregisters a GUID registration. No error if absent.
func (r *Registry) RemoveID(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.byID {
		if e.id == id {
			r.byID = append(r.byID[:i], r.byID[i+1:]...)
			return
		}
	}
}

// clear drops all registrations. Called on teardown.
func (r *Registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType = nil
	r.byID = nil
	r.byContentType = nil
}

func lookupLocked[T any](r *Registry) (T, bool) {
	want := typeFor[T]()
	for _, e := range r.byType {
		if e.typ == want {
			return e.instance.(T), true
		}
	}
	// Assignability fallback: an interface T can be served by a service
	// registered under its concrete type.
	for _, e := range r.byType {
		if v, ok := e.instance.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func contentTypeLookupLocked[T any](r *Registry, ct ports.ContentType) (T, bool) {
	want := typeFor[T]()
	name := ct.Name()
	for _, e := range r.byContentType {
		if e.typ == want && e.contentType == name {
			return e.instance.(T), true
		}
	}
	for _, e := range r.byContentType {
		if e.typ == want && strings.EqualFold(e.contentType, name) {
			return e.instance.(T), true
		}
	}
	// Declared base order decides which registration wins when a content
	// type has more than one base.
	for _, base := range ct.BaseTypes() {
		if v, ok := contentTypeLookupLocked[T](r, base); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (r *Registry) idLookupLocked(id uuid.UUID) (any, bool) {
	if id == uuid.Nil {
		return nil, false
	}
	for _, e := range r.byID {
		if e.id == id {
			return e.instance, true
		}
	}
	for _, e := range r.byType {
		if capabilityID(e.instance) == id {
			return e.instance, true
		}
	}
	return nil, false
}

// capabilityID extracts an instance's capability identifier, treating a
// panicking implementation as "no identifier".
func capabilityID(instance any) (id uuid.UUID) {
	defer func() {
		if recover() != nil {
			id = uuid.Nil
		}
	}()
	if c, ok := instance.(Capability); ok {
		return c.CapabilityID()
	}
	return uuid.Nil
}
