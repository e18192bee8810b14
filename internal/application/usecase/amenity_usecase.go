package usecase

import (
	"context"

	"hbnb-api/internal/domain/entity"
	"hbnb-api/internal/domain/event"
	"hbnb-api/pkg/logger"
)

func (f *Facade) CreateAmenity(ctx context.Context, name, description string) (*entity.Amenity, error) {
	var amenity *entity.Amenity
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		newAmenity, err := entity.NewAmenity(name, description)
		if err != nil {
			return err
		}

		amenity, err = f.amenityRepo.Create(txCtx, newAmenity)
		return f.handleRepositoryError(err, "failed to save amenity")
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("Amenity created", logger.String("amenity_id", amenity.ID()))
	f.publish(ctx, event.AmenityCreated, amenity.ID())
	return amenity, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*entity.Amenity, error) {
	var amenity *entity.Amenity
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		amenity, err = f.amenityRepo.Get(txCtx, id)
		return f.lookupError(err, "Amenity", id, "failed to get amenity")
	})
	if err != nil {
		return nil, err
	}
	return amenity, nil
}

func (f *Facade) ListAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	var amenities []*entity.Amenity
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		amenities, err = f.amenityRepo.List(txCtx)
		return f.handleRepositoryError(err, "failed to list amenities")
	})
	if err != nil {
		return nil, err
	}
	return amenities, nil
}

// UpdateAmenity applies a partial update. The name goes through the same
// trim-and-require rule as on creation.
func (f *Facade) UpdateAmenity(
	ctx context.Context,
	id string,
	upd entity.AmenityUpdate,
) (*entity.Amenity, error) {
	var amenity *entity.Amenity
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		amenity, err = f.amenityRepo.Update(txCtx, id, func(a *entity.Amenity) error {
			return a.Apply(upd)
		})
		return f.lookupError(err, "Amenity", id, "failed to update amenity")
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("Amenity updated", logger.String("amenity_id", amenity.ID()))
	f.publish(ctx, event.AmenityUpdated, amenity.ID())
	return amenity, nil
}
