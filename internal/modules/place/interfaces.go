package place

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

type PlaceService interface {
	CreatePlace(ctx context.Context, in facade.PlaceInput) (*domain.Place, error)
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	GetAllPlaces(ctx context.Context) []*domain.Place
	UpdatePlace(ctx context.Context, id string, in facade.PlaceUpdate) (*domain.Place, error)
	GetReviewsByPlace(ctx context.Context, placeID string) ([]*domain.Review, error)
}
