package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type AuthService struct {
	users  ports.CredentialStore
	hasher ports.PasswordHasher
	tokens ports.TokenManager
	logger *slog.Logger
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

type AuthOption func(*AuthService)

// WithClock overrides the time source used to issue and check tokens.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

func WithAuthLogger(logger *slog.Logger) AuthOption {
	return func(s *AuthService) {
		s.logger = logger
	}
}

func NewAuthService(users ports.CredentialStore, hasher ports.PasswordHasher, tokens ports.TokenManager, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks username (email or login name) and password and issues an
// access token. Unknown users and wrong passwords both yield
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AccessToken, error) {
	user, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Keep the response time close to the found-user path.
		s.burnComparison(password)
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.ErrorContext(ctx, "stored password hash is unusable", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	signed, expiresAt, err := s.tokens.Issue(user.Email, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return &domain.AccessToken{
		AccessToken: signed,
		TokenType:   domain.TokenTypeBearer,
		UserID:      user.ID,
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate resolves a bearer token to its user. Every failure, including
// an unknown or inactive subject, is reported as domain.ErrUnauthorized;
// store errors are returned as-is.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.tokens.Parse(token, s.now())
	if err != nil {
		s.logger.DebugContext(ctx, "bearer token rejected", "reason", err.Error())
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		s.logger.DebugContext(ctx, "bearer token rejected", "reason", "unknown or inactive subject")
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

func (s *AuthService) lookup(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, nil
	}

	user, err := s.users.FindByEmail(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.users.FindByLoginName(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *AuthService) burnComparison(password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("blog-dummy-password")
		if err != nil {
			s.logger.Warn("failed to prepare dummy password hash", "error", err)
			return
		}
		s.dummyHash = hash
	})
	if s.dummyHash == "" {
		return
	}
	_, _ = s.hasher.Verify(password, s.dummyHash)
}

// IsAuthError reports whether err is one of the credential failures that
// must be answered with 401.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidCredentials)
}
