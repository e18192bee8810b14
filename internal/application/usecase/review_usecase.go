package usecase

import (
	"context"

	"hbnb-api/internal/domain/entity"
	domainError "hbnb-api/internal/domain/error"
	"hbnb-api/internal/domain/event"
	"hbnb-api/pkg/logger"
)

// CreateReview stores a review and links it to its author and place. Owners
// cannot review their own places.
func (f *Facade) CreateReview(
	ctx context.Context,
	rating int,
	comment, userID, placeID string,
) (*entity.Review, error) {
	var review *entity.Review
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := f.userRepo.Get(txCtx, userID)
		if err != nil {
			return f.lookupError(err, "User", userID, "failed to get user")
		}

		place, err := f.placeRepo.Get(txCtx, placeID)
		if err != nil {
			return f.lookupError(err, "Place", placeID, "failed to get place")
		}

		if place.OwnerID() == userID {
			return domainError.NewValidationError("user_id", "You cannot review your own place", userID)
		}

		newReview, err := entity.NewReview(rating, comment, userID, placeID)
		if err != nil {
			return err
		}

		review, err = f.reviewRepo.Create(txCtx, newReview)
		if err != nil {
			return f.handleRepositoryError(err, "failed to save review")
		}

		user.AddReview(review)
		place.AddReview(review)
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("Review created",
		logger.String("review_id", review.ID()),
		logger.String("place_id", placeID),
	)
	f.publish(ctx, event.ReviewCreated, review.ID())
	return review, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	var review *entity.Review
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		review, err = f.reviewRepo.Get(txCtx, id)
		return f.lookupError(err, "Review", id, "failed to get review")
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (f *Facade) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		reviews, err = f.reviewRepo.List(txCtx)
		if err != nil {
			return f.handleRepositoryError(err, "failed to list reviews")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetReviewsByPlace returns the place's reviews in the order they were added
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		place, err := f.placeRepo.Get(txCtx, placeID)
		if err != nil {
			return f.lookupError(err, "Place", placeID, "failed to get place")
		}
		reviews = place.Reviews()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReview re-validates rating and comment with the creation rules
func (f *Facade) UpdateReview(
	ctx context.Context,
	id string,
	upd entity.ReviewUpdate,
) (*entity.Review, error) {
	var review *entity.Review
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		review, err = f.reviewRepo.Update(txCtx, id, func(r *entity.Review) error {
			return r.Apply(upd)
		})
		return f.lookupError(err, "Review", id, "failed to update review")
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("Review updated", logger.String("review_id", review.ID()))
	f.publish(ctx, event.ReviewUpdated, review.ID())
	return review, nil
}

// DeleteReview unlinks the review from its author and place, then removes it.
// Missing back-references are tolerated.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		review, err := f.reviewRepo.Get(txCtx, id)
		if err != nil {
			return f.lookupError(err, "Review", id, "failed to get review for deletion")
		}

		if user, err := f.userRepo.Get(txCtx, review.UserID()); err == nil {
			user.RemoveReview(review)
		}
		if place, err := f.placeRepo.Get(txCtx, review.PlaceID()); err == nil {
			place.RemoveReview(review)
		}

		if _, err := f.reviewRepo.Delete(txCtx, id); err != nil {
			return f.lookupError(err, "Review", id, "failed to delete review")
		}
		return nil
	})
	if err != nil {
		return err
	}

	f.logger.Info("Review deleted", logger.String("review_id", id))
	f.publish(ctx, event.ReviewDeleted, id)
	return nil
}
