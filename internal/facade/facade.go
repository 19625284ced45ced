// Package facade is the single coordination point between the HTTP layer and
// the entity repositories. It resolves cross-entity references before any
// entity is constructed or mutated, so a failed call never leaves a partial
// write behind.
package facade

import (
	"sync"

	"hbnb/internal/domain"
	"hbnb/internal/repository"
)

// Recorder receives a notification after every successful write.
type Recorder interface {
	RecordEntityOp(kind, op string, count int)
}

type Option func(*Facade)

// WithRecorder reports entity writes to r.
func WithRecorder(r Recorder) Option {
	return func(f *Facade) { f.recorder = r }
}

// WithRepositories swaps the default in-memory stores. Nil arguments keep the default.
func WithRepositories(
	users repository.Repository[*domain.User],
	amenities repository.Repository[*domain.Amenity],
	places repository.Repository[*domain.Place],
	reviews repository.Repository[*domain.Review],
) Option {
	return func(f *Facade) {
		if users != nil {
			f.users = users
		}
		if amenities != nil {
			f.amenities = amenities
		}
		if places != nil {
			f.places = places
		}
		if reviews != nil {
			f.reviews = reviews
		}
	}
}

type Facade struct {
	// writeMu makes each write a single step: the reference checks and the
	// insert or update they guard cannot interleave with another write.
	writeMu sync.Mutex

	users     repository.Repository[*domain.User]
	amenities repository.Repository[*domain.Amenity]
	places    repository.Repository[*domain.Place]
	reviews   repository.Repository[*domain.Review]

	recorder Recorder
}

func New(opts ...Option) *Facade {
	f := &Facade{
		users:     repository.NewInMemory[*domain.User](),
		amenities: repository.NewInMemory[*domain.Amenity](),
		places:    repository.NewInMemory[*domain.Place](),
		reviews:   repository.NewInMemory[*domain.Review](),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Facade) record(kind, op string, count int) {
	if f.recorder != nil {
		f.recorder.RecordEntityOp(kind, op, count)
	}
}
