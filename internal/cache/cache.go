// Package cache implements a fixed-capacity key/value store with
// least-recently-used eviction.
package cache

import (
	"container/list"
	"fmt"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cache is a bounded mapping from K to V. Every hit promotes the entry to
// most-recently-used; inserting past capacity evicts the least-recently-used
// entry. Recency order is total (each access moves the entry to the front),
// so eviction never has to break a tie.
//
// Cache is not safe for concurrent use. Callers either serialize access or
// wrap it with a lock.
type Cache[K comparable, V any] struct {
	maxSize int
	order   *list.List // most-recently-used first; elements hold *entry[K, V]
	items   map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most maxSize entries. A maxSize of zero
// yields a cache that stores nothing.
func New[K comparable, V any](maxSize int) *Cache[K, V] {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Cache[K, V]{
		maxSize: maxSize,
		order:   list.New(),
		items:   make(map[K]*list.Element, maxSize),
	}
}

// TryGet returns the cached value for key and promotes it to
// most-recently-used. A miss has no side effect.
func (c *Cache[K, V]) TryGet(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Put inserts or replaces the value for key. Replacement counts as a fresh
// use: the entry moves to the most-recently-used end either way.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.maxSize == 0 {
		return
	}
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Get is indexer sugar over TryGet: it fails with domain.ErrCacheMiss when
// the key is absent.
func (c *Cache[K, V]) Get(key K) (V, error) {
	v, ok := c.TryGet(key)
	if !ok {
		return v, zerr.With(domain.ErrCacheMiss, "key", fmt.Sprintf("%v", key))
	}
	return v, nil
}

// Set is indexer sugar over Put.
func (c *Cache[K, V]) Set(key K, value V) {
	c.Put(key, value)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int {
	return c.maxSize
}

func (c *Cache[K, V]) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry[K, V]).key)
}
