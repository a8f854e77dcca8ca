package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser godoc
// @Summary      Registers a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body  createUserRequest  true  "New user"
// @Success      201  {object}  domain.User
// @Failure      400
// @Security     APIKeyHeader
// @Router       /users/ [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Create(r.Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// ListUsers godoc
// @Summary      Lists users
// @Tags         users
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size (max 100)"
// @Success      200  {array}  domain.User
// @Security     APIKeyHeader
// @Router       /users/ [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, err := intQuery(r, "skip", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUser godoc
// @Summary      Gets a user
// @Tags         users
// @Produce      json
// @Param        user_id  path  string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404
// @Security     APIKeyHeader
// @Router       /users/{user_id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
