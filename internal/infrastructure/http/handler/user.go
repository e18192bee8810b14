package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"hbnb-api/internal/application/usecase"
	"hbnb-api/internal/config"
	"hbnb-api/internal/domain/repository"
	"hbnb-api/internal/infrastructure/http/dto"
	"hbnb-api/pkg/logger"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	*BaseHandler
	facade *usecase.Facade
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(
	logger logger.Logger,
	config *config.Config,
	transactionManager repository.TransactionManager,
	facade *usecase.Facade,
) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger, config, transactionManager),
		facade:      facade,
	}
}

// CreateUser handles user creation
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid user creation request")
		return
	}

	var response *dto.UserResponse
	err := h.write(c, func(ctx context.Context) error {
		user, err := h.facade.CreateUser(ctx, *req.FirstName, *req.LastName, *req.Email, req.Password)
		if err != nil {
			return err
		}
		response = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to create user")
		return
	}

	h.created(c, response)
}

// GetUser handles user retrieval by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	var response *dto.UserResponse
	err := h.read(c, func(ctx context.Context) error {
		user, err := h.facade.GetUser(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		response = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve user")
		return
	}

	h.success(c, response)
}

// GetUsers handles user list retrieval
func (h *UserHandler) GetUsers(c *gin.Context) {
	var response []*dto.UserResponse
	err := h.read(c, func(ctx context.Context) error {
		users, err := h.facade.ListUsers(ctx)
		if err != nil {
			return err
		}
		response = dto.NewUserResponses(users)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve users")
		return
	}

	h.success(c, response)
}

// UpdateUser handles user update
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid user update request")
		return
	}

	var response *dto.UserResponse
	err := h.write(c, func(ctx context.Context) error {
		user, err := h.facade.UpdateUser(ctx, c.Param("id"), req.ToDomain())
		if err != nil {
			return err
		}
		response = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to update user")
		return
	}

	h.success(c, response)
}
