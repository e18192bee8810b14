package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"hbnb-api/internal/domain/entity"
)

// CreateReviewRequest keeps the rating raw so that 3.5, "3" or true can be
// told apart from a real integer.
type CreateReviewRequest struct {
	Rating  json.RawMessage `json:"rating"`
	Comment string          `json:"comment"`
	UserID  *string         `json:"user_id"  binding:"required"`
	PlaceID *string         `json:"place_id" binding:"required"`
}

func (r *CreateReviewRequest) ParseRating() (int, error) {
	return decodeRating(r.Rating)
}

type UpdateReviewRequest struct {
	Rating  json.RawMessage `json:"rating,omitempty"`
	Comment *string         `json:"comment,omitempty"`
}

func (r *UpdateReviewRequest) ToDomain() (entity.ReviewUpdate, error) {
	upd := entity.ReviewUpdate{Comment: r.Comment}
	if len(r.Rating) > 0 {
		rating, err := decodeRating(r.Rating)
		if err != nil {
			return upd, err
		}
		upd.Rating = &rating
	}
	return upd, nil
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID(),
		Rating:    review.Rating(),
		Comment:   review.Comment(),
		UserID:    review.UserID(),
		PlaceID:   review.PlaceID(),
		CreatedAt: review.CreatedAt(),
		UpdatedAt: review.UpdatedAt(),
	}
}

func NewReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	responses := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, NewReviewResponse(r))
	}
	return responses
}

// decodeRating decodes numbers as json.Number and lets the entity rules decide.
func decodeRating(raw json.RawMessage) (int, error) {
	var value interface{}
	if len(raw) > 0 {
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()
		if err := decoder.Decode(&value); err != nil {
			value = nil
		}
	}
	return entity.ParseRating(value)
}

func reviewIDs(reviews []*entity.Review) []string {
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ID())
	}
	return ids
}
