package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/services"
)

const internalErrorDetail = "internal server error"

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeError maps service errors to status codes. Unknown errors are logged
// and hidden behind a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
	case errors.Is(err, domain.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, domain.ErrEmailTaken):
		writeDetail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, domain.ErrNameTaken):
		writeDetail(w, http.StatusBadRequest, "Name already registered")
	case services.IsInputError(err):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		writeDetail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrPostNotFound):
		writeDetail(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, domain.ErrTagNotFound):
		writeDetail(w, http.StatusNotFound, "Tag not found")
	case errors.Is(err, domain.ErrSlugTaken):
		writeDetail(w, http.StatusConflict, "Slug already used for this user")
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeDetail(w, http.StatusInternalServerError, internalErrorDetail)
	}
}

// intQuery reads an integer query parameter, falling back to def when absent.
func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}
