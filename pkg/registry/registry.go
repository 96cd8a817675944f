package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/patterns/pkg/errors"
)

// Registry stores items by name. It is safe for concurrent use; kind names
// the stored items in error messages ("user constructor", "alias").
type Registry[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// Register adds item under name. Names are unique and non-empty.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s '%s' is already registered", r.kind, name).
			WithDetail("name", name)
	}
	r.items[name] = item
	return nil
}

// Get returns the item registered under name
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%s '%s' not found", r.kind, name).
			WithDetail("name", name)
	}
	return item, nil
}

// Remove deletes the item registered under name
func (r *Registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "%s '%s' not found", r.kind, name).
			WithDetail("name", name)
	}
	delete(r.items, name)
	return nil
}

// RemoveFunc deletes every item for which match returns true and reports
// how many were removed
func (r *Registry[T]) RemoveFunc(match func(name string, item T) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for name, item := range r.items {
		if match(name, item) {
			delete(r.items, name)
			removed++
		}
	}
	return removed
}

// Has reports whether name is registered
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

// List returns all registered names in sorted order
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered items
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
