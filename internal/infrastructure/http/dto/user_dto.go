package dto

import (
	"time"

	"hbnb-api/internal/domain/entity"
)

// CreateUserRequest requires the name and email keys to be present. Empty
// values are left to the domain rules.
type CreateUserRequest struct {
	FirstName *string `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name"  binding:"required"`
	Email     *string `json:"email"      binding:"required"`
	Password  string  `json:"password"`
}

// UpdateUserRequest has no is_admin field: the flag is ignored on update.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
}

func (r *UpdateUserRequest) ToDomain() entity.UserUpdate {
	return entity.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// UserResponse never carries the password.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	Places    []string  `json:"places"`
	Reviews   []string  `json:"reviews"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(user *entity.User) *UserResponse {
	places := make([]string, 0)
	for _, p := range user.Places() {
		places = append(places, p.ID())
	}

	return &UserResponse{
		ID:        user.ID(),
		FirstName: user.FirstName(),
		LastName:  user.LastName(),
		Email:     user.Email(),
		IsAdmin:   user.IsAdmin(),
		Places:    places,
		Reviews:   reviewIDs(user.Reviews()),
		CreatedAt: user.CreatedAt(),
		UpdatedAt: user.UpdatedAt(),
	}
}

func NewUserResponses(users []*entity.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses
}
