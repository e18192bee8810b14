package usecase

import (
	"context"

	domainError "hbnb-api/internal/domain/error"
	"hbnb-api/internal/domain/event"
	"hbnb-api/internal/domain/repository"
	domainService "hbnb-api/internal/domain/service"
	"hbnb-api/pkg/logger"
)

// Repositories groups the per-type stores the Facade coordinates.
type Repositories struct {
	Users     repository.UserRepository
	Places    repository.PlaceRepository
	Reviews   repository.ReviewRepository
	Amenities repository.AmenityRepository
}

// Facade is the single entry point into the business layer. Every
// cross-entity rule (owner exists, no self-review, unique email) is checked
// here before anything is written.
type Facade struct {
	userRepo           repository.UserRepository
	placeRepo          repository.PlaceRepository
	reviewRepo         repository.ReviewRepository
	amenityRepo        repository.AmenityRepository
	userDomainService  *domainService.UserDomainService
	transactionManager repository.TransactionManager
	publisher          event.Publisher
	logger             logger.Logger
}

// NewFacade creates a new Facade instance
func NewFacade(
	repos Repositories,
	transactionManager repository.TransactionManager,
	publisher event.Publisher,
	log logger.Logger,
) *Facade {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &Facade{
		userRepo:           repos.Users,
		placeRepo:          repos.Places,
		reviewRepo:         repos.Reviews,
		amenityRepo:        repos.Amenities,
		userDomainService:  domainService.NewUserDomainService(repos.Users),
		transactionManager: transactionManager,
		publisher:          publisher,
		logger:             log,
	}
}

// publish emits a change event once the enclosing write transaction, if any,
// has released the store. Failures are logged and otherwise ignored.
func (f *Facade) publish(ctx context.Context, t event.Type, entityID string) {
	evt := event.New(t, entityID)
	f.transactionManager.AfterCommit(ctx, func() {
		if err := f.publisher.Publish(ctx, evt); err != nil {
			f.logger.Warn("Failed to publish change event",
				logger.String("event", string(t)),
				logger.String("entity_id", entityID),
				logger.Error(err),
			)
		}
	})
}

// handleRepositoryError passes domain errors through untouched and marks
// anything else as an internal failure.
func (f *Facade) handleRepositoryError(err error, message string) error {
	if err == nil {
		return nil
	}
	if domainError.IsNotFoundError(err) ||
		domainError.IsValidationError(err) ||
		domainError.IsInternalError(err) {
		return err
	}
	return domainError.NewInternalError(message, err)
}

// lookupError turns a repository miss into the not-found error for the role
// the id plays in the request ("Owner", "User", "Place").
func (f *Facade) lookupError(err error, resource, id, message string) error {
	if domainError.IsNotFoundError(err) {
		return domainError.NewNotFoundError(resource, id)
	}
	return f.handleRepositoryError(err, message)
}
