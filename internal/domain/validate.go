package domain

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength        = 50
	MaxAmenityNameLength = 100
	MaxPlaceTitleLength  = 100
	MinRating            = 1
	MaxRating            = 5
	MinLatitude          = -90.0
	MaxLatitude          = 90.0
	MinLongitude         = -180.0
	MaxLongitude         = 180.0
)

// Each field has exactly one validation function; constructors, setters
// and patches all go through it.

func validatePersonName(field, v string) (string, error) {
	if utf8.RuneCountInString(v) > MaxNameLength {
		return "", NewValidationError(field, "%s must be %d characters or less", field, MaxNameLength)
	}
	if v == "" {
		return "", NewValidationError(field, "%s cannot be empty", field)
	}
	return v, nil
}

func validateEmail(v string) (string, error) {
	if !strings.Contains(v, "@") || !strings.Contains(v, ".") {
		return "", NewValidationError("email", "email must be a valid email address")
	}
	return v, nil
}

func validateAmenityName(v string) (string, error) {
	if utf8.RuneCountInString(v) > MaxAmenityNameLength {
		return "", NewValidationError("name", "name must be %d characters or less", MaxAmenityNameLength)
	}
	if v == "" {
		return "", NewValidationError("name", "name cannot be empty")
	}
	return v, nil
}

func validateTitle(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", NewValidationError("title", "title cannot be empty")
	}
	if utf8.RuneCountInString(v) > MaxPlaceTitleLength {
		return "", NewValidationError("title", "title cannot exceed %d characters", MaxPlaceTitleLength)
	}
	return v, nil
}

// validateDescription never fails; blank input collapses to "".
func validateDescription(v string) (string, error) {
	return strings.TrimSpace(v), nil
}

func validatePrice(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, NewValidationError("price", "price must be a number")
	}
	if v < 0 {
		return 0, NewValidationError("price", "price cannot be negative")
	}
	return v, nil
}

func validateLatitude(v float64) (float64, error) {
	if math.IsNaN(v) || v < MinLatitude || v > MaxLatitude {
		return 0, NewValidationError("latitude", "latitude must be between -90 and 90")
	}
	return v, nil
}

func validateLongitude(v float64) (float64, error) {
	if math.IsNaN(v) || v < MinLongitude || v > MaxLongitude {
		return 0, NewValidationError("longitude", "longitude must be between -180 and 180")
	}
	return v, nil
}

func validateReviewText(v string) (string, error) {
	if v == "" {
		return "", NewValidationError("text", "text cannot be empty")
	}
	return v, nil
}

func validateRating(v int) (int, error) {
	if v < MinRating || v > MaxRating {
		return 0, NewValidationError("rating", "rating must be between %d and %d", MinRating, MaxRating)
	}
	return v, nil
}
