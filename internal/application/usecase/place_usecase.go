package usecase

import (
	"context"

	"hbnb-api/internal/domain/entity"
	"hbnb-api/internal/domain/event"
	"hbnb-api/pkg/logger"
)

// CreatePlace stores a new place and links it to its owner
func (f *Facade) CreatePlace(
	ctx context.Context,
	title, description string,
	price float64,
	latitude, longitude *float64,
	ownerID string,
) (*entity.Place, error) {
	var place *entity.Place
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		owner, err := f.userRepo.Get(txCtx, ownerID)
		if err != nil {
			return f.lookupError(err, "Owner", ownerID, "failed to get owner")
		}

		newPlace, err := entity.NewPlace(title, description, price, latitude, longitude, ownerID)
		if err != nil {
			return err
		}

		place, err = f.placeRepo.Create(txCtx, newPlace)
		if err != nil {
			return f.handleRepositoryError(err, "failed to save place")
		}

		owner.AddPlace(place)
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("Place created",
		logger.String("place_id", place.ID()),
		logger.String("owner_id", ownerID),
	)
	f.publish(ctx, event.PlaceCreated, place.ID())
	return place, nil
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*entity.Place, error) {
	var place *entity.Place
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		place, err = f.placeRepo.Get(txCtx, id)
		return f.lookupError(err, "Place", id, "failed to get place")
	})
	if err != nil {
		return nil, err
	}
	return place, nil
}

func (f *Facade) ListPlaces(ctx context.Context) ([]*entity.Place, error) {
	var places []*entity.Place
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		places, err = f.placeRepo.List(txCtx)
		if err != nil {
			return f.handleRepositoryError(err, "failed to list places")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return places, nil
}

// UpdatePlace applies a partial update. Price and coordinates are validated
// the same way as on creation; a new owner must exist.
//
// When the owner changes, the place also moves between the two owners'
// back-reference lists.
func (f *Facade) UpdatePlace(
	ctx context.Context,
	id string,
	upd entity.PlaceUpdate,
) (*entity.Place, error) {
	var place *entity.Place
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := f.placeRepo.Get(txCtx, id)
		if err != nil {
			return f.lookupError(err, "Place", id, "failed to get place for update")
		}

		var newOwner *entity.User
		if upd.OwnerID != nil {
			newOwner, err = f.userRepo.Get(txCtx, *upd.OwnerID)
			if err != nil {
				return f.lookupError(err, "Owner", *upd.OwnerID, "failed to get owner")
			}
		}
		previousOwnerID := current.OwnerID()

		place, err = f.placeRepo.Update(txCtx, id, func(p *entity.Place) error {
			return p.Apply(upd)
		})
		if err != nil {
			return f.handleRepositoryError(err, "failed to update place")
		}

		if newOwner != nil && newOwner.ID() != previousOwnerID {
			if previous, err := f.userRepo.Get(txCtx, previousOwnerID); err == nil {
				previous.RemovePlace(place)
			}
			newOwner.AddPlace(place)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("Place updated", logger.String("place_id", place.ID()))
	f.publish(ctx, event.PlaceUpdated, place.ID())
	return place, nil
}

// AddAmenityToPlace links an existing amenity to a place. Linking the same
// amenity twice is a no-op.
func (f *Facade) AddAmenityToPlace(
	ctx context.Context,
	placeID, amenityID string,
) (*entity.Place, error) {
	var (
		place *entity.Place
		added bool
	)
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		place, err = f.placeRepo.Get(txCtx, placeID)
		if err != nil {
			return f.lookupError(err, "Place", placeID, "failed to get place")
		}

		amenity, err := f.amenityRepo.Get(txCtx, amenityID)
		if err != nil {
			return f.lookupError(err, "Amenity", amenityID, "failed to get amenity")
		}

		added = place.AddAmenity(amenity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if added {
		f.logger.Info("Amenity linked to place",
			logger.String("place_id", placeID),
			logger.String("amenity_id", amenityID),
		)
		f.publish(ctx, event.PlaceUpdated, placeID)
	}
	return place, nil
}
