package facade

import (
	"context"

	"github.com/rs/zerolog"

	"hbnb/internal/domain"
	"hbnb/internal/metrics"
)

type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// CreateUser validates and stores a new user. The email must not belong to
// another user.
func (f *Facade) CreateUser(ctx context.Context, in UserInput) (*domain.User, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	u, err := domain.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}
	if _, taken := f.users.GetByAttribute("email", u.Email()); taken {
		return nil, errEmailTaken()
	}

	f.users.Add(u)
	f.record(domain.KindUser, metrics.OpCreate, f.users.Len())
	zerolog.Ctx(ctx).Info().Str("user_id", u.ID()).Msg("user created")
	return u, nil
}

func (f *Facade) GetUser(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users.Get(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.KindUser, id)
	}
	return u, nil
}

// GetUserByEmail returns the user registered with email.
func (f *Facade) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users.GetByAttribute("email", email)
	if !ok {
		return nil, domain.NewNotFoundError(domain.KindUser, email)
	}
	return u, nil
}

func (f *Facade) GetAllUsers(_ context.Context) []*domain.User {
	return f.users.GetAll()
}

// UpdateUser applies patch to an existing user. A new email must not belong
// to any other user.
func (f *Facade) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if _, ok := f.users.Get(id); !ok {
		return nil, domain.NewNotFoundError(domain.KindUser, id)
	}
	if patch.Email != nil {
		if other, taken := f.users.GetByAttribute("email", *patch.Email); taken && other.ID() != id {
			return nil, errEmailTaken()
		}
	}

	u, _, err := f.users.Update(id, func(u *domain.User) error {
		return u.Update(patch)
	})
	if err != nil {
		return nil, err
	}
	f.record(domain.KindUser, metrics.OpUpdate, f.users.Len())
	zerolog.Ctx(ctx).Info().Str("user_id", id).Msg("user updated")
	return u, nil
}

func errEmailTaken() error {
	return domain.NewValidationError("email", "email already registered")
}
