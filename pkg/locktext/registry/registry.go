package registry

import (
	"cmp"
	"slices"
)

// Registry is an immutable set of values indexed by key.
// All methods are safe for concurrent use.
type Registry[K cmp.Ordered, V any] struct {
	entries map[K]V
	keys    []K
}

// New creates a registry holding a copy of entries.
// A nil map yields an empty registry.
func New[K cmp.Ordered, V any](entries map[K]V) *Registry[K, V] {
	r := &Registry[K, V]{
		entries: make(map[K]V, len(entries)),
		keys:    make([]K, 0, len(entries)),
	}
	for k, v := range entries {
		r.entries[k] = v
		r.keys = append(r.keys, k)
	}
	slices.Sort(r.keys)
	return r
}

// Get returns the value for a key and whether it exists.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	v, ok := r.entries[key]
	return v, ok
}

// MustGet returns the value for a key, panicking if not found.
func (r *Registry[K, V]) MustGet(key K) V {
	v, ok := r.entries[key]
	if !ok {
		panic("registry: key not found")
	}
	return v
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	_, ok := r.entries[key]
	return ok
}

// Keys returns all keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	return slices.Clone(r.keys)
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	return len(r.entries)
}

// Range calls fn for each entry in key order.
// If fn returns false, iteration stops.
func (r *Registry[K, V]) Range(fn func(K, V) bool) {
	for _, k := range r.keys {
		if !fn(k, r.entries[k]) {
			return
		}
	}
}

// Filter returns the keys, in order, whose entries satisfy pred.
func (r *Registry[K, V]) Filter(pred func(K, V) bool) []K {
	out := make([]K, 0)
	for _, k := range r.keys {
		if pred(k, r.entries[k]) {
			out = append(out, k)
		}
	}
	return out
}
