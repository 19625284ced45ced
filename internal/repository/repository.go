// Package repository provides the per-entity keyed stores behind the facade.
package repository

import "sync"

// Entity is what a repository can hold: something with a stable id, a
// last-update timestamp to refresh, and named attributes for lookups.
type Entity interface {
	ID() string
	Touch()
	Attribute(name string) (any, bool)
}

// Repository is a keyed store for one entity type. Absence is reported
// through the boolean results, never as an error; callers decide whether
// a missing id is an error.
type Repository[T Entity] interface {
	Add(entity T)
	Get(id string) (T, bool)
	GetAll() []T
	GetByAttribute(name string, value any) (T, bool)
	Update(id string, apply func(T) error) (T, bool, error)
	Delete(id string) bool
	Len() int
}

var _ Repository[Entity] = (*InMemory[Entity])(nil)

// InMemory is a map-backed Repository. One mutex guards each instance, so
// every operation is atomic with respect to concurrent callers.
type InMemory[T Entity] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewInMemory[T Entity]() *InMemory[T] {
	return &InMemory[T]{items: make(map[string]T)}
}

// Add stores entity under its id. Content is not checked for uniqueness.
func (r *InMemory[T]) Add(entity T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.ID()
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = entity
}

func (r *InMemory[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	return e, ok
}

// GetAll returns a snapshot of every entity in insertion order.
func (r *InMemory[T]) GetAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// GetByAttribute returns the first entity, in insertion order, whose named
// attribute equals value.
func (r *InMemory[T]) GetByAttribute(name string, value any) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		e := r.items[id]
		if v, ok := e.Attribute(name); ok && v == value {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Update runs apply against the stored entity and refreshes its timestamp
// if apply succeeds. An absent id is a no-op reported by the boolean.
func (r *InMemory[T]) Update(id string, apply func(T) error) (T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	if err := apply(e); err != nil {
		return e, true, err
	}
	e.Touch()
	return e, true, nil
}

func (r *InMemory[T]) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *InMemory[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
