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

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	*BaseHandler
	facade *usecase.Facade
}

func NewReviewHandler(
	logger logger.Logger,
	config *config.Config,
	transactionManager repository.TransactionManager,
	facade *usecase.Facade,
) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler: NewBaseHandler(logger, config, transactionManager),
		facade:      facade,
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid review creation request")
		return
	}

	rating, err := req.ParseRating()
	if err != nil {
		h.fail(c, err, "Invalid review creation request")
		return
	}

	var response *dto.ReviewResponse
	err = h.write(c, func(ctx context.Context) error {
		review, err := h.facade.CreateReview(ctx, rating, req.Comment, *req.UserID, *req.PlaceID)
		if err != nil {
			return err
		}
		response = dto.NewReviewResponse(review)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to create review")
		return
	}

	h.created(c, response)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	var response *dto.ReviewResponse
	err := h.read(c, func(ctx context.Context) error {
		review, err := h.facade.GetReview(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		response = dto.NewReviewResponse(review)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve review")
		return
	}

	h.success(c, response)
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	var response []*dto.ReviewResponse
	err := h.read(c, func(ctx context.Context) error {
		reviews, err := h.facade.ListReviews(ctx)
		if err != nil {
			return err
		}
		response = dto.NewReviewResponses(reviews)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to retrieve reviews")
		return
	}

	h.success(c, response)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := h.validateRequest(c, &req); err != nil {
		h.fail(c, err, "Invalid review update request")
		return
	}

	upd, err := req.ToDomain()
	if err != nil {
		h.fail(c, err, "Invalid review update request")
		return
	}

	var response *dto.ReviewResponse
	err = h.write(c, func(ctx context.Context) error {
		review, err := h.facade.UpdateReview(ctx, c.Param("id"), upd)
		if err != nil {
			return err
		}
		response = dto.NewReviewResponse(review)
		return nil
	})
	if err != nil {
		h.fail(c, err, "Failed to update review")
		return
	}

	h.success(c, response)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	err := h.write(c, func(ctx context.Context) error {
		return h.facade.DeleteReview(ctx, c.Param("id"))
	})
	if err != nil {
		h.fail(c, err, "Failed to delete review")
		return
	}

	h.noContent(c)
}
