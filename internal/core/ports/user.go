package ports

import (
	"context"

	"github.com/bluecart/logistics-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

// CreateUserInput carries the fields needed to register a user.
// Role accepts either role vocabulary; it is normalized to the canonical enum.
type CreateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Role     string
	HubID    string
	Password string
}

// UpdateUserInput is a patch of mutable user fields.
type UpdateUserInput struct {
	Name  *string
	Phone *string
	Role  *string
	HubID *string
}

// UserService defines use-case operations for users.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, patch UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// AuthService authenticates users and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
