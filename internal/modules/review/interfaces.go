package review

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

type ReviewService interface {
	CreateReview(ctx context.Context, in facade.ReviewInput) (*domain.Review, error)
	GetReview(ctx context.Context, id string) (*domain.Review, error)
	GetAllReviews(ctx context.Context) []*domain.Review
	UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error)
	DeleteReview(ctx context.Context, id string) error
}
