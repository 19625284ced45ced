package facade

import (
	"context"

	"github.com/rs/zerolog"

	"hbnb/internal/domain"
	"hbnb/internal/metrics"
)

type PlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// PlaceUpdate carries only the supplied fields. AmenityIDs are attached to
// the amenities already on the place; ids already attached are skipped.
type PlaceUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *string
	AmenityIDs  []string
}

// CreatePlace stores a new place owned by an existing user. Unknown owner or
// amenity ids fail with a ReferenceError and nothing is stored.
func (f *Facade) CreatePlace(ctx context.Context, in PlaceInput) (*domain.Place, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	owner, ok := f.users.Get(in.OwnerID)
	if !ok {
		return nil, errOwnerMissing(in.OwnerID)
	}
	amenities, err := f.resolveAmenities(in.AmenityIDs)
	if err != nil {
		return nil, err
	}

	p, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, owner)
	if err != nil {
		return nil, err
	}
	for _, a := range amenities {
		p.AddAmenity(a)
	}

	f.places.Add(p)
	f.record(domain.KindPlace, metrics.OpCreate, f.places.Len())
	zerolog.Ctx(ctx).Info().
		Str("place_id", p.ID()).
		Str("owner_id", owner.ID()).
		Int("amenities", len(amenities)).
		Msg("place created")
	return p, nil
}

func (f *Facade) GetPlace(_ context.Context, id string) (*domain.Place, error) {
	p, ok := f.places.Get(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.KindPlace, id)
	}
	return p, nil
}

func (f *Facade) GetAllPlaces(_ context.Context) []*domain.Place {
	return f.places.GetAll()
}

func (f *Facade) UpdatePlace(ctx context.Context, id string, in PlaceUpdate) (*domain.Place, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if _, ok := f.places.Get(id); !ok {
		return nil, domain.NewNotFoundError(domain.KindPlace, id)
	}

	patch := domain.PlacePatch{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}
	if in.OwnerID != nil {
		owner, ok := f.users.Get(*in.OwnerID)
		if !ok {
			return nil, errOwnerMissing(*in.OwnerID)
		}
		patch.Owner = owner
	}
	amenities, err := f.resolveAmenities(in.AmenityIDs)
	if err != nil {
		return nil, err
	}
	patch.Amenities = amenities

	p, _, err := f.places.Update(id, func(p *domain.Place) error {
		return p.Update(patch)
	})
	if err != nil {
		return nil, err
	}
	f.record(domain.KindPlace, metrics.OpUpdate, f.places.Len())
	zerolog.Ctx(ctx).Info().Str("place_id", id).Msg("place updated")
	return p, nil
}

func errOwnerMissing(id string) error {
	return domain.NewReferenceError("owner_id", id, "owner does not exist")
}
