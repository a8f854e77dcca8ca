package http

import (
	"net/http"

	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type validateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Login godoc
// @Summary      Issues an access token
// @Description  Exchanges a username (email or login name) and password for a bearer token.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Email or login name"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  domain.AccessToken
// @Failure      401
// @Security     APIKeyHeader
// @Router       /token [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeDetail(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// Validate godoc
// @Summary      Checks the API key
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      401
// @Security     APIKeyHeader
// @Router       /validate [get]
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, validateResponse{
		Status:  "success",
		Message: "API key is valid.",
	})
}
