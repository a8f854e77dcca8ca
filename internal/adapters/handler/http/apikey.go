package http

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const (
	APIKeyHeader = "X-API-KEY"

	// docsRefererMarker flags requests sent from the Swagger UI. The Referer
	// header is client controlled, so anyone can claim to be the docs page.
	docsRefererMarker = "/docs"
)

type APIKeyGuard struct {
	key []byte
}

func NewAPIKeyGuard(key string) *APIKeyGuard {
	return &APIKeyGuard{key: []byte(key)}
}

// Check accepts requests whose X-API-KEY matches the configured key. Requests
// whose Referer points at the docs UI skip the comparison entirely.
func (g *APIKeyGuard) Check(r *http.Request) (*http.Request, error) {
	if strings.Contains(r.Header.Get("Referer"), docsRefererMarker) {
		return r.WithContext(withAPIKey(r.Context(), string(g.key))), nil
	}

	presented := r.Header.Get(APIKeyHeader)
	if presented == "" {
		return nil, apiKeyDenial("missing api key")
	}
	if subtle.ConstantTimeCompare([]byte(presented), g.key) != 1 {
		return nil, apiKeyDenial("api key mismatch")
	}

	return r.WithContext(withAPIKey(r.Context(), presented)), nil
}

func apiKeyDenial(reason string) *Denial {
	return &Denial{
		Status:    http.StatusUnauthorized,
		Challenge: "APIKey",
		Detail:    "Could not validate API key",
		Reason:    reason,
	}
}
