package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"hbnb-api/internal/domain/entity"
	domainError "hbnb-api/internal/domain/error"
)

type CreatePlaceRequest struct {
	Title       *string  `json:"title"    binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"    binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	OwnerID     *string  `json:"owner_id" binding:"required"`
}

// UpdatePlaceRequest keeps coordinates raw: an absent key leaves the value
// alone, an explicit null clears it.
type UpdatePlaceRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	Latitude    json.RawMessage `json:"latitude,omitempty"`
	Longitude   json.RawMessage `json:"longitude,omitempty"`
	OwnerID     *string         `json:"owner_id,omitempty"`
}

func (r *UpdatePlaceRequest) ToDomain() (entity.PlaceUpdate, error) {
	upd := entity.PlaceUpdate{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		OwnerID:     r.OwnerID,
	}

	var err error
	if upd.Latitude, err = decodeCoordinate("latitude", r.Latitude); err != nil {
		return upd, err
	}
	if upd.Longitude, err = decodeCoordinate("longitude", r.Longitude); err != nil {
		return upd, err
	}
	return upd, nil
}

type PlaceResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Latitude    *float64           `json:"latitude"`
	Longitude   *float64           `json:"longitude"`
	OwnerID     string             `json:"owner_id"`
	Reviews     []string           `json:"reviews"`
	Amenities   []*AmenityResponse `json:"amenities"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func NewPlaceResponse(place *entity.Place) *PlaceResponse {
	return &PlaceResponse{
		ID:          place.ID(),
		Title:       place.Title(),
		Description: place.Description(),
		Price:       place.Price(),
		Latitude:    place.Latitude(),
		Longitude:   place.Longitude(),
		OwnerID:     place.OwnerID(),
		Reviews:     reviewIDs(place.Reviews()),
		Amenities:   NewAmenityResponses(place.Amenities()),
		CreatedAt:   place.CreatedAt(),
		UpdatedAt:   place.UpdatedAt(),
	}
}

func NewPlaceResponses(places []*entity.Place) []*PlaceResponse {
	responses := make([]*PlaceResponse, 0, len(places))
	for _, p := range places {
		responses = append(responses, NewPlaceResponse(p))
	}
	return responses
}

func decodeCoordinate(field string, raw json.RawMessage) (entity.Coordinate, error) {
	if len(raw) == 0 {
		return entity.Coordinate{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return entity.Coordinate{Set: true}, nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return entity.Coordinate{}, domainError.NewValidationError(field, field+" must be a number", string(raw))
	}
	return entity.Coordinate{Set: true, Value: &value}, nil
}
