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

// AmenityHandler handles amenity-related HTTP requests
type AmenityHandler struct {
	*BaseHandler
	facade *usecase.Facade
}

func NewAmenityHandler(
	logger logger.Logger,
	config *config.Config,
	transactionManager repository.TransactionManager,
	facade *usecase.Facade,
) *AmenityHandler {
	return &AmenityHandler{
		BaseHandler: NewBaseHandler(logger, config, transactionManager),
		facade:      facade,
	}
}

func (h *AmenityHandler) CreateAmenity(c *gin.Context) {
	var req dto.CreateAmenityRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid amenity creation request")
		return
	}

	var response *dto.AmenityResponse
	err := h.write(c, func(ctx context.Context) error {
		amenity, err := h.facade.CreateAmenity(ctx, *req.Name, req.Description)
		if err != nil {
			return err
		}
		response = dto.NewAmenityResponse(amenity)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to create amenity")
		return
	}

	h.created(c, response)
}

func (h *AmenityHandler) GetAmenity(c *gin.Context) {
	var response *dto.AmenityResponse
	err := h.read(c, func(ctx context.Context) error {
		amenity, err := h.facade.GetAmenity(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		response = dto.NewAmenityResponse(amenity)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve amenity")
		return
	}

	h.success(c, response)
}

func (h *AmenityHandler) GetAmenities(c *gin.Context) {
	var response []*dto.AmenityResponse
	err := h.read(c, func(ctx context.Context) error {
		amenities, err := h.facade.ListAmenities(ctx)
		if err != nil {
			return err
		}
		response = dto.NewAmenityResponses(amenities)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve amenities")
		return
	}

	h.success(c, response)
}

func (h *AmenityHandler) UpdateAmenity(c *gin.Context) {
	var req dto.UpdateAmenityRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid amenity update request")
		return
	}

	var response *dto.AmenityResponse
	err := h.write(c, func(ctx context.Context) error {
		amenity, err := h.facade.UpdateAmenity(ctx, c.Param("id"), req.ToDomain())
		if err != nil {
			return err
		}
		response = dto.NewAmenityResponse(amenity)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to update amenity")
		return
	}

	h.success(c, response)
}
