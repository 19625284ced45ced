package amenity

import (
	"context"

	"hbnb/internal/domain"
)

type AmenityService interface {
	CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error)
	GetAmenity(ctx context.Context, id string) (*domain.Amenity, error)
	GetAllAmenities(ctx context.Context) []*domain.Amenity
	UpdateAmenity(ctx context.Context, id string, patch domain.AmenityPatch) (*domain.Amenity, error)
}
