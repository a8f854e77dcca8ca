package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/blog/internal/core/domain"
)

// PasswordHasher hashes and verifies passwords with a slow salted hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

// TokenManager mints and verifies signed, time-limited access tokens.
type TokenManager interface {
	Issue(subject string, now time.Time) (string, time.Time, error)
	Parse(token string, now time.Time) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.AccessToken, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
