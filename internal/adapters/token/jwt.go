package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrMissingSubject  = errors.New("token has no subject")
	ErrUnsupportedAlgo = errors.New("unsupported signing algorithm")
	ErrEmptySecret     = errors.New("signing secret is empty")
	ErrNonPositiveTTL  = errors.New("token ttl must be positive")
)

var supportedAlgorithms = map[string]jwt.SigningMethod{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
}

// Manager signs and verifies HMAC access tokens whose subject is the user's email.
type Manager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewManager(secret []byte, algorithm string, ttl time.Duration) (ports.TokenManager, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, ErrNonPositiveTTL
	}
	method, ok := supportedAlgorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgo, algorithm)
	}
	return &Manager{secret: secret, method: method, ttl: ttl}, nil
}

func (m *Manager) Issue(subject string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and expiry of tokenString as seen at now and
// returns its subject.
func (m *Manager) Parse(tokenString string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
