package facade

import (
	"context"

	"github.com/rs/zerolog"

	"hbnb/internal/domain"
	"hbnb/internal/metrics"
)

type ReviewInput struct {
	Text    string
	Rating  int
	UserID  string
	PlaceID string
}

// CreateReview stores a review of an existing place by an existing user.
// References are checked before the review's own fields.
func (f *Facade) CreateReview(ctx context.Context, in ReviewInput) (*domain.Review, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	user, ok := f.users.Get(in.UserID)
	if !ok {
		return nil, domain.NewReferenceError("user_id", in.UserID, "user does not exist")
	}
	place, ok := f.places.Get(in.PlaceID)
	if !ok {
		return nil, domain.NewReferenceError("place_id", in.PlaceID, "place does not exist")
	}

	r, err := domain.NewReview(in.Text, in.Rating, place, user)
	if err != nil {
		return nil, err
	}

	f.reviews.Add(r)
	place.AddReview(r)
	f.record(domain.KindReview, metrics.OpCreate, f.reviews.Len())
	zerolog.Ctx(ctx).Info().
		Str("review_id", r.ID()).
		Str("place_id", place.ID()).
		Str("user_id", user.ID()).
		Msg("review created")
	return r, nil
}

func (f *Facade) GetReview(_ context.Context, id string) (*domain.Review, error) {
	r, ok := f.reviews.Get(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.KindReview, id)
	}
	return r, nil
}

func (f *Facade) GetAllReviews(_ context.Context) []*domain.Review {
	return f.reviews.GetAll()
}

// GetReviewsByPlace returns the reviews of placeID in creation order.
func (f *Facade) GetReviewsByPlace(_ context.Context, placeID string) ([]*domain.Review, error) {
	if _, ok := f.places.Get(placeID); !ok {
		return nil, domain.NewNotFoundError(domain.KindPlace, placeID)
	}

	out := make([]*domain.Review, 0)
	for _, r := range f.reviews.GetAll() {
		if r.Place().ID() == placeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// UpdateReview changes a review's text and rating. Its place and author are fixed.
func (f *Facade) UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	r, ok, err := f.reviews.Update(id, func(r *domain.Review) error {
		return r.Update(patch)
	})
	if !ok {
		return nil, domain.NewNotFoundError(domain.KindReview, id)
	}
	if err != nil {
		return nil, err
	}
	f.record(domain.KindReview, metrics.OpUpdate, f.reviews.Len())
	zerolog.Ctx(ctx).Info().Str("review_id", id).Msg("review updated")
	return r, nil
}

func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	r, ok := f.reviews.Get(id)
	if !ok {
		return domain.NewNotFoundError(domain.KindReview, id)
	}

	f.reviews.Delete(id)
	r.Place().RemoveReview(id)
	f.record(domain.KindReview, metrics.OpDelete, f.reviews.Len())
	zerolog.Ctx(ctx).Info().Str("review_id", id).Msg("review deleted")
	return nil
}
