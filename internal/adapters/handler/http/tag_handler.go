package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type TagHandler struct {
	service ports.TagService
}

func NewTagHandler(service ports.TagService) *TagHandler {
	return &TagHandler{
		service: service,
	}
}

// ListTags godoc
// @Summary      Lists tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}  domain.Tag
// @Security     APIKeyHeader
// @Router       /tags/ [get]
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// GetTag godoc
// @Summary      Gets a tag
// @Tags         tags
// @Produce      json
// @Param        tag_id  path  string  true  "Tag id"
// @Success      200  {object}  domain.Tag
// @Failure      404
// @Security     APIKeyHeader
// @Router       /tags/{tag_id} [get]
func (h *TagHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.service.GetTag(r.Context(), chi.URLParam(r, "tag_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// ListCategories godoc
// @Summary      Lists categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Security     APIKeyHeader
// @Router       /categories/ [get]
func (h *TagHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
