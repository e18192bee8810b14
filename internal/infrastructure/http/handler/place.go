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

// PlaceHandler handles place-related HTTP requests
type PlaceHandler struct {
	*BaseHandler
	facade *usecase.Facade
}

func NewPlaceHandler(
	logger logger.Logger,
	config *config.Config,
	transactionManager repository.TransactionManager,
	facade *usecase.Facade,
) *PlaceHandler {
	return &PlaceHandler{
		BaseHandler: NewBaseHandler(logger, config, transactionManager),
		facade:      facade,
	}
}

func (h *PlaceHandler) CreatePlace(c *gin.Context) {
	var req dto.CreatePlaceRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid place creation request")
		return
	}

	var response *dto.PlaceResponse
	err := h.write(c, func(ctx context.Context) error {
		place, err := h.facade.CreatePlace(
			ctx,
			*req.Title,
			req.Description,
			*req.Price,
			req.Latitude,
			req.Longitude,
			*req.OwnerID,
		)
		if err != nil {
			return err
		}
		response = dto.NewPlaceResponse(place)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to create place")
		return
	}

	h.created(c, response)
}

func (h *PlaceHandler) GetPlace(c *gin.Context) {
	var response *dto.PlaceResponse
	err := h.read(c, func(ctx context.Context) error {
		place, err := h.facade.GetPlace(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		response = dto.NewPlaceResponse(place)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve place")
		return
	}

	h.success(c, response)
}

func (h *PlaceHandler) GetPlaces(c *gin.Context) {
	var response []*dto.PlaceResponse
	err := h.read(c, func(ctx context.Context) error {
		places, err := h.facade.ListPlaces(ctx)
		if err != nil {
			return err
		}
		response = dto.NewPlaceResponses(places)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve places")
		return
	}

	h.success(c, response)
}

func (h *PlaceHandler) UpdatePlace(c *gin.Context) {
	var req dto.UpdatePlaceRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid place update request")
		return
	}

	upd, err := req.ToDomain()
	if err != nil {
		h.fail(c, err, "Invalid place update request")
		return
	}

	var response *dto.PlaceResponse
	err = h.write(c, func(ctx context.Context) error {
		place, err := h.facade.UpdatePlace(ctx, c.Param("id"), upd)
		if err != nil {
			return err
		}
		response = dto.NewPlaceResponse(place)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to update place")
		return
	}

	h.success(c, response)
}

// GetPlaceReviews lists the reviews attached to one place
func (h *PlaceHandler) GetPlaceReviews(c *gin.Context) {
	var response []*dto.ReviewResponse
	err := h.read(c, func(ctx context.Context) error {
		reviews, err := h.facade.GetReviewsByPlace(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		response = dto.NewReviewResponses(reviews)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve place reviews")
		return
	}

	h.success(c, response)
}

// AddAmenity links an amenity to a place
func (h *PlaceHandler) AddAmenity(c *gin.Context) {
	var response *dto.PlaceResponse
	err := h.write(c, func(ctx context.Context) error {
		place, err := h.facade.AddAmenityToPlace(ctx, c.Param("id"), c.Param("amenity_id"))
		if err != nil {
			return err
		}
		response = dto.NewPlaceResponse(place)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to add amenity to place")
		return
	}

	h.success(c, response)
}
