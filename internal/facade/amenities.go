package facade

import (
	"context"

	"github.com/rs/zerolog"

	"hbnb/internal/domain"
	"hbnb/internal/metrics"
)

func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	a, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	f.amenities.Add(a)
	f.record(domain.KindAmenity, metrics.OpCreate, f.amenities.Len())
	zerolog.Ctx(ctx).Info().Str("amenity_id", a.ID()).Msg("amenity created")
	return a, nil
}

func (f *Facade) GetAmenity(_ context.Context, id string) (*domain.Amenity, error) {
	a, ok := f.amenities.Get(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.KindAmenity, id)
	}
	return a, nil
}

func (f *Facade) GetAllAmenities(_ context.Context) []*domain.Amenity {
	return f.amenities.GetAll()
}

func (f *Facade) UpdateAmenity(ctx context.Context, id string, patch domain.AmenityPatch) (*domain.Amenity, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	a, ok, err := f.amenities.Update(id, func(a *domain.Amenity) error {
		return a.Update(patch)
	})
	if !ok {
		return nil, domain.NewNotFoundError(domain.KindAmenity, id)
	}
	if err != nil {
		return nil, err
	}
	f.record(domain.KindAmenity, metrics.OpUpdate, f.amenities.Len())
	zerolog.Ctx(ctx).Info().Str("amenity_id", id).Msg("amenity updated")
	return a, nil
}

// resolveAmenities looks up every id, failing on the first that does not exist.
func (f *Facade) resolveAmenities(ids []string) ([]*domain.Amenity, error) {
	out := make([]*domain.Amenity, 0, len(ids))
	for _, id := range ids {
		a, ok := f.amenities.Get(id)
		if !ok {
			return nil, domain.NewReferenceError("amenities", id, "amenity "+id+" does not exist")
		}
		out = append(out, a)
	}
	return out, nil
}
