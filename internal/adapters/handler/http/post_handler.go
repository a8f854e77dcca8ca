package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{
		service: service,
	}
}

type createPostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Summary  string   `json:"summary"`
	Category string   `json:"category"`
	Slug     string   `json:"slug"`
	Tags     []string `json:"tags"`
}

// CreatePost godoc
// @Summary      Publishes a post
// @Description  The author is the user the bearer token belongs to.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post  body  createPostRequest  true  "New post"
// @Success      201  {object}  domain.Post
// @Failure      400
// @Failure      401
// @Failure      409
// @Security     APIKeyHeader
// @Security     BearerAuth
// @Router       /posts/ [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	author, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrUnauthorized)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.service.Create(r.Context(), author, ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		Category: req.Category,
		Slug:     req.Slug,
		Tags:     req.Tags,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// ListPosts godoc
// @Summary      Lists posts, newest first
// @Tags         posts
// @Produce      json
// @Param        category  query  string  false  "Category meta title"
// @Param        keyword   query  string  false  "Matches title or content"
// @Param        tag_id    query  string  false  "Tag id"
// @Param        skip      query  int     false  "Offset"
// @Param        limit     query  int     false  "Page size (max 100)"
// @Success      200  {array}  domain.Post
// @Failure      400
// @Security     APIKeyHeader
// @Router       /posts/ [get]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
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

	q := r.URL.Query()
	posts, err := h.service.List(r.Context(), ports.PostFilter{
		Skip:     skip,
		Limit:    limit,
		Category: q.Get("category"),
		Keyword:  q.Get("keyword"),
		TagID:    q.Get("tag_id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Gets a post by author and slug
// @Tags         posts
// @Produce      json
// @Param        username  path  string  true  "Author login name"
// @Param        slug      path  string  true  "Post slug"
// @Success      200  {object}  domain.Post
// @Failure      404
// @Security     APIKeyHeader
// @Router       /posts/{username}/{slug} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.Get(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Deletes one of the caller's posts
// @Tags         posts
// @Param        post_id  path  string  true  "Post id"
// @Success      204
// @Failure      401
// @Failure      404
// @Security     APIKeyHeader
// @Security     BearerAuth
// @Router       /posts/{post_id} [delete]
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	author, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), author, chi.URLParam(r, "post_id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
