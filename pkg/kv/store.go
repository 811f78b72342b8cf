// Package kv provides a generic thread-safe in-memory map.
package kv

import "sync"

// Store is a thread-safe generic key-value store.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{data: make(map[K]V)}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// GetOrCreate returns the value for key, storing the result of create first
// when key is absent. create runs under the write lock.
func (s *Store[K, V]) GetOrCreate(key K, create func() V) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	if val, ok := s.data[key]; ok {
		return val
	}
	val := create()
	s.data[key] = val
	return val
}

// Set stores a value by key.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Pop removes key and returns the value it held.
func (s *Store[K, V]) Pop(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	delete(s.data, key)
	return val, ok
}

// PopFunc removes every entry for which match returns true and returns the
// removed values.
func (s *Store[K, V]) PopFunc(match func(K, V) bool) []V {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []V
	for k, v := range s.data {
		if match(k, v) {
			removed = append(removed, v)
			delete(s.data, k)
		}
	}
	return removed
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
