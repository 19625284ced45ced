package user

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

// UserService is the part of the facade the user handler needs.
type UserService interface {
	CreateUser(ctx context.Context, in facade.UserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetAllUsers(ctx context.Context) []*domain.User
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
}
