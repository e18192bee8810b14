package dto

import (
	"time"

	"hbnb-api/internal/domain/entity"
)

type CreateAmenityRequest struct {
	Name        *string `json:"name" binding:"required"`
	Description string  `json:"description"`
}

type UpdateAmenityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateAmenityRequest) ToDomain() entity.AmenityUpdate {
	return entity.AmenityUpdate{
		Name:        r.Name,
		Description: r.Description,
	}
}

type AmenityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAmenityResponse(amenity *entity.Amenity) *AmenityResponse {
	return &AmenityResponse{
		ID:          amenity.ID(),
		Name:        amenity.Name(),
		Description: amenity.Description(),
		CreatedAt:   amenity.CreatedAt(),
		UpdatedAt:   amenity.UpdatedAt(),
	}
}

func NewAmenityResponses(amenities []*entity.Amenity) []*AmenityResponse {
	responses := make([]*AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		responses = append(responses, NewAmenityResponse(a))
	}
	return responses
}
