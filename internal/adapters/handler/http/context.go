package http

import (
	"context"

	"github.com/vncsmyrnk/blog/internal/core/domain"
)

type contextKey string

const (
	UserKey   contextKey = "user"
	APIKeyKey contextKey = "api_key"
)

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// UserFromContext returns the user set by BearerGuard.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}

func withAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, APIKeyKey, key)
}

func APIKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(APIKeyKey).(string)
	return key, ok
}
