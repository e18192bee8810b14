package persistence

import (
	"context"
	"sync"

	domainError "hbnb-api/internal/domain/error"
	"hbnb-api/internal/domain/repository"
)

// MemoryRepository keeps entities in a map and remembers insertion order.
// Stored values are the same pointers callers hold, so back-references on
// users and places always see the current entity.
type MemoryRepository[T repository.Entity] struct {
	resource string
	items    map[string]T
	order    []string
	mu       sync.RWMutex
}

// NewMemoryRepository creates an empty store. resource names the entity type
// in not-found errors ("User", "Place", ...).
func NewMemoryRepository[T repository.Entity](resource string) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		resource: resource,
		items:    make(map[string]T),
	}
}

func (r *MemoryRepository[T]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	if e == zero {
		return zero, domainError.NewInternalError("cannot store a nil "+r.resource, nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e.EnsureIdentity()
	if _, exists := r.items[e.ID()]; !exists {
		r.order = append(r.order, e.ID())
	}
	r.items[e.ID()] = e

	return e, nil
}

func (r *MemoryRepository[T]) Get(ctx context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.items[id]
	if !exists {
		return e, domainError.NewNotFoundError(r.resource, id)
	}
	return e, nil
}

func (r *MemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

func (r *MemoryRepository[T]) Update(ctx context.Context, id string, apply func(T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.items[id]
	if !exists {
		return e, domainError.NewNotFoundError(r.resource, id)
	}

	if apply != nil {
		if err := apply(e); err != nil {
			return e, err
		}
	}
	e.Touch()

	return e, nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.items[id]
	if !exists {
		return e, domainError.NewNotFoundError(r.resource, id)
	}

	delete(r.items, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return e, nil
}
