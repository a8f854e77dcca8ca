package http

import (
	"net/http"
	"strings"

	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/core/services"
)

type BearerGuard struct {
	auth ports.AuthService
}

func NewBearerGuard(auth ports.AuthService) *BearerGuard {
	return &BearerGuard{auth: auth}
}

// Check resolves the bearer token to an active user and stores it in the
// request context. Every rejection looks the same to the caller.
func (g *BearerGuard) Check(r *http.Request) (*http.Request, error) {
	token, ok := bearerToken(r)
	if !ok {
		return nil, bearerDenial("missing bearer token")
	}

	user, err := g.auth.Authenticate(r.Context(), token)
	if err != nil {
		if services.IsAuthError(err) {
			return nil, bearerDenial(err.Error())
		}
		return nil, err
	}

	return r.WithContext(withUser(r.Context(), user)), nil
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func bearerDenial(reason string) *Denial {
	return &Denial{
		Status:    http.StatusUnauthorized,
		Challenge: "Bearer",
		Detail:    "Could not validate credentials",
		Reason:    reason,
	}
}
