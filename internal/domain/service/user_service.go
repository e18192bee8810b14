package service

import (
	"context"

	"hbnb-api/internal/domain/entity"
	"hbnb-api/internal/domain/repository"
)

// Domain services for hard buisness logic
type UserDomainService struct {
	userRepo repository.UserRepository
}

func NewUserDomainService(userRepo repository.UserRepository) *UserDomainService {
	return &UserDomainService{
		userRepo: userRepo,
	}
}

// FindByEmail scans every user. Returns nil when nobody holds the email.
func (s *UserDomainService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Email() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *UserDomainService) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// Is able to change email
func (s *UserDomainService) CanChangeEmail(
	ctx context.Context,
	userID string,
	newEmail string,
) (bool, error) {
	existingUser, err := s.FindByEmail(ctx, newEmail)
	if err != nil {
		return false, err
	}

	if existingUser != nil && existingUser.ID() != userID {
		return false, nil
	}

	return true, nil
}
