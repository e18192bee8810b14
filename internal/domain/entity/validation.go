package entity

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	domainError "hbnb-api/internal/domain/error"
)

const (
	msgInvalidEmail     = "Invalid email format"
	msgInvalidPrice     = "Price must be a positive number"
	msgInvalidLatitude  = "Latitude must be between -90 and 90"
	msgInvalidLongitude = "Longitude must be between -180 and 180"
	msgInvalidRating    = "Rating must be an integer between 1 and 5"
	msgEmptyComment     = "Comment cannot be empty"
	msgEmptyAmenityName = "Amenity name cannot be empty"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return domainError.NewValidationError("email", msgInvalidEmail, email)
	}
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || price < 0 {
		return domainError.NewValidationError("price", msgInvalidPrice, price)
	}
	return nil
}

func validateLatitude(lat *float64) error {
	if lat == nil {
		return nil
	}
	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		return domainError.NewValidationError("latitude", msgInvalidLatitude, *lat)
	}
	return nil
}

func validateLongitude(lon *float64) error {
	if lon == nil {
		return nil
	}
	if math.IsNaN(*lon) || *lon < -180 || *lon > 180 {
		return domainError.NewValidationError("longitude", msgInvalidLongitude, *lon)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return domainError.NewValidationError("rating", msgInvalidRating, rating)
	}
	return nil
}

// trimRequired returns the trimmed value, or a validation error when nothing
// is left after trimming.
func trimRequired(field, value, message string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domainError.NewValidationError(field, message, value)
	}
	return trimmed, nil
}

// ParseRating converts a loosely typed rating (as decoded from a request) into
// a validated int. Only true integers are accepted: floats, numeric strings and
// booleans fail with the same message as an out-of-range value.
func ParseRating(v interface{}) (int, error) {
	invalid := domainError.NewValidationError("rating", msgInvalidRating, v)

	var rating int64
	switch r := v.(type) {
	case int:
		rating = int64(r)
	case int32:
		rating = int64(r)
	case int64:
		rating = r
	case json.Number:
		n, err := strconv.ParseInt(r.String(), 10, 64)
		if err != nil {
			return 0, invalid
		}
		rating = n
	default:
		return 0, invalid
	}

	if rating < 1 || rating > 5 {
		return 0, invalid
	}
	return int(rating), nil
}
