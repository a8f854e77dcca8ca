package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary,omitempty"`
	Category  string    `json:"category"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	TagURLs   []TagURL  `json:"tag_urls"`
}

type TagURL struct {
	TagName string `json:"tag_name"`
	URL     string `json:"url"`
}

type Tag struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MetaTitle    string `json:"meta_title"`
	IconImageURL string `json:"icon_image_url,omitempty"`
}

type Category struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	MetaTitle string `json:"meta_title"`
	Context   string `json:"context,omitempty"`
}
