package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
)

// CredentialStore is the read-only lookup the gateway needs. Both methods
// return (nil, nil) when no user matches.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByLoginName(ctx context.Context, name string) (*domain.User, error)
}

type UserRepository interface {
	CredentialStore
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
}
