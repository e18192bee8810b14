package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbnb-api/internal/domain/entity"
	domainError "hbnb-api/internal/domain/error"
)

func TestUpdatePlaceRequest_Coordinates(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantNil bool
		want    float64
	}{
		{"absent", `{"title":"Loft"}`, false, true, 0},
		{"null clears", `{"latitude":null}`, true, true, 0},
		{"number sets", `{"latitude":45.5}`, true, false, 45.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdatePlaceRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			upd, err := req.ToDomain()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, upd.Latitude.Set)
			assert.False(t, upd.Longitude.Set)
			if tt.wantNil {
				assert.Nil(t, upd.Latitude.Value)
			} else {
				require.NotNil(t, upd.Latitude.Value)
				assert.Equal(t, tt.want, *upd.Latitude.Value)
			}
		})
	}
}

func TestUpdatePlaceRequest_NonNumericCoordinate(t *testing.T) {
	var req UpdatePlaceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"longitude":"east"}`), &req))

	_, err := req.ToDomain()
	assert.True(t, domainError.IsValidationError(err))
}

func TestCreateReviewRequest_ParseRating(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{"1", true},
		{"5", true},
		{"0", false},
		{"6", false},
		{"4.0", false},
		{"3.5", false},
		{`"3"`, false},
		{"true", false},
		{"null", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var req CreateReviewRequest
			require.NoError(t, json.Unmarshal([]byte(`{"rating":`+tt.raw+`}`), &req))

			_, err := req.ParseRating()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, domainError.IsValidationError(err))
			}
		})
	}

	var missing CreateReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"comment":"hi"}`), &missing))
	_, err := missing.ParseRating()
	assert.True(t, domainError.IsValidationError(err))
}

func TestUpdateReviewRequest_ToDomain(t *testing.T) {
	var req UpdateReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"comment":"better"}`), &req))
	upd, err := req.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, upd.Rating)
	assert.Equal(t, "better", *upd.Comment)

	req = UpdateReviewRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"rating":4}`), &req))
	upd, err = req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, 4, *upd.Rating)
}

func TestUserResponse_OmitsPassword(t *testing.T) {
	user, err := entity.NewUser("John", "Doe", "john@example.com", "secret")
	require.NoError(t, err)

	payload, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "secret")
	assert.NotContains(t, string(payload), "password")
	assert.Contains(t, string(payload), `"places":[]`)
	assert.Contains(t, string(payload), `"reviews":[]`)
}

func TestPlaceResponse_EmbedsAmenities(t *testing.T) {
	place, err := entity.NewPlace("Loft", "", 50, nil, nil, "owner")
	require.NoError(t, err)
	wifi, err := entity.NewAmenity("WiFi", "")
	require.NoError(t, err)
	place.AddAmenity(wifi)

	resp := NewPlaceResponse(place)
	require.Len(t, resp.Amenities, 1)
	assert.Equal(t, wifi.ID(), resp.Amenities[0].ID)
	assert.Equal(t, "WiFi", resp.Amenities[0].Name)
	assert.Nil(t, resp.Latitude)
	assert.Empty(t, resp.Reviews)
}
