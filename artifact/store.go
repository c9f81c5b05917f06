package artifact

import "sync"

// Entry is one stored slot: a payload and the number of active holders.
type Entry[V any] struct {
	// Refs is the number of active holders of Value.
	Refs int

	// Value is the cached payload. Ownership transfers to the caller's
	// disposal logic when the entry is removed.
	Value V
}

// Store is a reference-counted key→value store.
//
// Contract:
// - Concurrency: safe for concurrent use; operations are linearized.
// - Policy-free: the store never inspects Refs; lifetime policy belongs to
//   the caller's Update functions.
// - Errors: none. Operations are total over the key space; unknown keys
//   read as absent.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]Entry[V]
}

// NewStore creates an empty store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{
		entries: make(map[string]Entry[V]),
	}
}

// Get returns the entry stored under key. Pure read; no side effects.
func (s *Store[V]) Get(key Key) (Entry[V], bool) {
	s.mu.Lock()
	e, ok := s.entries[key.Path()]
	s.mu.Unlock()
	return e, ok
}

// Update atomically replaces the slot under key with the result of fn.
//
// fn receives the current entry, or nil if the key is absent, and returns
// the entry to store, or nil to remove the slot. fn runs under the store
// lock and must not call back into the store.
//
// This is the sole mutation primitive: increment, decrement, create and
// destroy are all expressed through fn. Disposal of removed payloads is the
// caller's responsibility, outside of fn.
func (s *Store[V]) Update(key Key, fn func(prev *Entry[V]) *Entry[V]) {
	path := key.Path()

	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *Entry[V]
	if e, ok := s.entries[path]; ok {
		prev = &e
	}

	next := fn(prev)
	if next == nil {
		delete(s.entries, path)
		return
	}
	s.entries[path] = *next
}

// Len returns the number of live entries.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	n := len(s.entries)
	s.mu.Unlock()
	return n
}

// Keys returns the canonical paths of all live entries, in no particular
// order.
func (s *Store[V]) Keys() []string {
	s.mu.Lock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.Unlock()
	return keys
}
