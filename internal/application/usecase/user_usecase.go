package usecase

import (
	"context"

	"hbnb-api/internal/domain/entity"
	domainError "hbnb-api/internal/domain/error"
	"hbnb-api/internal/domain/event"
	"hbnb-api/pkg/logger"
)

const msgEmailRegistered = "Email already registered"

// CreateUser creates a new user after checking the email is not taken
func (f *Facade) CreateUser(
	ctx context.Context,
	firstName, lastName, email, password string,
) (*entity.User, error) {
	var user *entity.User
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		unique, err := f.userDomainService.IsEmailUnique(txCtx, email)
		if err != nil {
			return f.handleRepositoryError(err, "failed to validate email uniqueness")
		}
		if !unique {
			return domainError.NewValidationError("email", msgEmailRegistered, email)
		}

		newUser, err := entity.NewUser(firstName, lastName, email, password)
		if err != nil {
			return err
		}

		user, err = f.userRepo.Create(txCtx, newUser)
		if err != nil {
			return f.handleRepositoryError(err, "failed to save user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("User created", logger.String("user_id", user.ID()))
	f.publish(ctx, event.UserCreated, user.ID())
	return user, nil
}

// GetUser retrieves a user by ID
func (f *Facade) GetUser(ctx context.Context, id string) (*entity.User, error) {
	var user *entity.User
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = f.userRepo.Get(txCtx, id)
		return f.lookupError(err, "User", id, "failed to get user")
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns nil without error when nobody holds the email
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = f.userDomainService.FindByEmail(txCtx, email)
		if err != nil {
			return f.handleRepositoryError(err, "failed to get user by email")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (f *Facade) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := f.transactionManager.WithReadTransaction(ctx, func(txCtx context.Context) error {
		var err error
		users, err = f.userRepo.List(txCtx)
		if err != nil {
			return f.handleRepositoryError(err, "failed to list users")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial profile update. A changed email must not be
// held by another user.
func (f *Facade) UpdateUser(
	ctx context.Context,
	id string,
	upd entity.UserUpdate,
) (*entity.User, error) {
	var user *entity.User
	err := f.transactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = f.userRepo.Get(txCtx, id)
		if err != nil {
			return f.lookupError(err, "User", id, "failed to get user for update")
		}

		if upd.Email != nil && *upd.Email != user.Email() {
			canChange, err := f.userDomainService.CanChangeEmail(txCtx, id, *upd.Email)
			if err != nil {
				return f.handleRepositoryError(err, "failed to validate email change")
			}
			if !canChange {
				return domainError.NewValidationError("email", msgEmailRegistered, *upd.Email)
			}
		}

		return user.UpdateProfile(upd)
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("User updated", logger.String("user_id", user.ID()))
	f.publish(ctx, event.UserUpdated, user.ID())
	return user, nil
}
