package repository

import (
	"context"

	"hbnb-api/internal/domain/entity"
)

// Entity is what a Repository can store: anything embedding entity.Base.
type Entity interface {
	comparable
	ID() string
	EnsureIdentity()
	Touch()
}

// Repository is a keyed store for one entity type.
type Repository[T Entity] interface {
	// Create assigns identity when the entity has none and stores it.
	// An entity whose id is already stored replaces the previous one.
	Create(ctx context.Context, e T) (T, error)
	// Get returns a NotFoundError when the id is unknown.
	Get(ctx context.Context, id string) (T, error)
	// List returns every entity in insertion order.
	List(ctx context.Context) ([]T, error)
	// Update runs apply on the stored entity and touches it if apply succeeds.
	// The repository performs no validation of its own.
	Update(ctx context.Context, id string, apply func(T) error) (T, error)
	// Delete removes and returns the entity.
	Delete(ctx context.Context, id string) (T, error)
}

type (
	UserRepository    = Repository[*entity.User]
	PlaceRepository   = Repository[*entity.Place]
	ReviewRepository  = Repository[*entity.Review]
	AmenityRepository = Repository[*entity.Amenity]
)
