package http

import (
	"errors"
	"log/slog"
	"net/http"
)

// Guard decides whether a request may reach the handler. On success it
// returns the request to pass on, possibly carrying extra context values.
type Guard interface {
	Check(r *http.Request) (*http.Request, error)
}

type GuardFunc func(r *http.Request) (*http.Request, error)

func (f GuardFunc) Check(r *http.Request) (*http.Request, error) {
	return f(r)
}

// Denial is the error a guard returns to short-circuit a request.
type Denial struct {
	Status    int
	Challenge string
	Detail    string
	Reason    string
}

func (d *Denial) Error() string {
	return d.Detail
}

// Require runs guards in order and stops at the first denial. Errors that
// are not a *Denial are answered with 500.
func Require(guards ...Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, g := range guards {
				checked, err := g.Check(r)
				if err != nil {
					deny(w, r, err)
					return
				}
				r = checked
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, err error) {
	var d *Denial
	if !errors.As(err, &d) {
		slog.ErrorContext(r.Context(), "guard failed", "path", r.URL.Path, "error", err)
		writeDetail(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}

	slog.DebugContext(r.Context(), "request denied", "path", r.URL.Path, "status", d.Status, "reason", d.Reason)
	if d.Challenge != "" {
		w.Header().Set("WWW-Authenticate", d.Challenge)
	}
	writeDetail(w, d.Status, d.Detail)
}
