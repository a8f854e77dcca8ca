package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
)

type PostFilter struct {
	Skip     int
	Limit    int
	Category string
	Keyword  string
	TagID    string
}

type PostRepository interface {
	Save(ctx context.Context, post *domain.Post, tagIDs []string) error
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, error)
	GetByUserAndSlug(ctx context.Context, username, slug string) (*domain.Post, error)
	Delete(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

type CreatePostInput struct {
	Title    string
	Content  string
	Summary  string
	Category string
	Slug     string
	Tags     []string
}

type PostService interface {
	Create(ctx context.Context, author *domain.User, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, error)
	Get(ctx context.Context, username, slug string) (*domain.Post, error)
	Delete(ctx context.Context, author *domain.User, postID string) error
}
