package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

// Target is the part of the facade a fixture is applied to.
type Target interface {
	CreateUser(ctx context.Context, in facade.UserInput) (*domain.User, error)
	CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error)
	CreatePlace(ctx context.Context, in facade.PlaceInput) (*domain.Place, error)
	CreateReview(ctx context.Context, in facade.ReviewInput) (*domain.Review, error)
}

type Summary struct {
	Users     int
	Amenities int
	Places    int
	Reviews   int
}

// Apply creates the fixture's entities in dependency order. It stops at the
// first rejected entity; entities created before it are kept.
func Apply(ctx context.Context, target Target, fx *Fixture) (Summary, error) {
	var sum Summary
	if err := fx.Check(); err != nil {
		return sum, err
	}

	userIDs := make(map[string]string, len(fx.Users))
	for i, u := range fx.Users {
		created, err := target.CreateUser(ctx, facade.UserInput{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
		})
		if err != nil {
			return sum, fmt.Errorf("users[%d] (%s): %w", i, u.Key, err)
		}
		userIDs[u.Key] = created.ID()
		sum.Users++
	}

	amenityIDs := make(map[string]string, len(fx.Amenities))
	for i, a := range fx.Amenities {
		created, err := target.CreateAmenity(ctx, a.Name)
		if err != nil {
			return sum, fmt.Errorf("amenities[%d] (%s): %w", i, a.Key, err)
		}
		amenityIDs[a.Key] = created.ID()
		sum.Amenities++
	}

	placeIDs := make(map[string]string, len(fx.Places))
	for i, p := range fx.Places {
		ids := make([]string, 0, len(p.Amenities))
		for _, key := range p.Amenities {
			ids = append(ids, amenityIDs[key])
		}
		created, err := target.CreatePlace(ctx, facade.PlaceInput{
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			OwnerID:     userIDs[p.Owner],
			AmenityIDs:  ids,
		})
		if err != nil {
			return sum, fmt.Errorf("places[%d] (%s): %w", i, p.Key, err)
		}
		placeIDs[p.Key] = created.ID()
		sum.Places++
	}

	for i, r := range fx.Reviews {
		if _, err := target.CreateReview(ctx, facade.ReviewInput{
			Text:    r.Text,
			Rating:  r.Rating,
			UserID:  userIDs[r.User],
			PlaceID: placeIDs[r.Place],
		}); err != nil {
			return sum, fmt.Errorf("reviews[%d]: %w", i, err)
		}
		sum.Reviews++
	}

	zerolog.Ctx(ctx).Info().
		Int("users", sum.Users).
		Int("amenities", sum.Amenities).
		Int("places", sum.Places).
		Int("reviews", sum.Reviews).
		Msg("fixture applied")
	return sum, nil
}
