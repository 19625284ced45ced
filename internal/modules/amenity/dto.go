package amenity

import (
	"time"

	"hbnb/internal/domain"
)

type CreateAmenityRequest struct {
	Name *string `json:"name" validate:"required"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name,omitempty"`
}

type AmenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityListResponse wraps the collection under an "amenities" key.
type AmenityListResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
}

func NewAmenityResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}
