// Package registry provides a generic, thread-safe store for items keyed
// by name. It backs the desktop entry cache, where repeated lookups of the
// same application must not re-read the entry file from disk.
package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/resolvr/pkg/errors"
)

// Store is a generic, thread-safe registry for storing and retrieving items by name
type Store[T any] interface {
	// Put adds or replaces an item in the store
	Put(name string, item T) error

	// Get retrieves an item from the store
	Get(name string) (T, error)

	// Has checks if an item is stored
	Has(name string) bool

	// List returns all stored names in sorted order
	List() []string

	// Count returns the number of stored items
	Count() int

	// Clear removes all items from the store
	Clear()
}

// store is the internal implementation of Store
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates a new Store instance
func New[T any]() Store[T] {
	return &store[T]{
		items: make(map[string]T),
	}
}

// Put adds or replaces an item in the store
func (s *store[T]) Put(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "store name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[name] = item
	return nil
}

// Get retrieves an item from the store
func (s *store[T]) Get(name string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in store", name)
	}

	return item, nil
}

// Has checks if an item is stored
func (s *store[T]) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.items[name]
	return exists
}

// List returns all stored names in sorted order
func (s *store[T]) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Count returns the number of stored items
func (s *store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Clear removes all items from the store
func (s *store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]T)
}
