package ports

import (
	"context"

	"github.com/vncsmyrnk/blog/internal/core/domain"
)

type TagRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	GetAll(ctx context.Context) ([]*domain.Tag, error)
	FindByMetaTitles(ctx context.Context, metaTitles []string) ([]*domain.Tag, error)
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*domain.Category, error)
	GetByMetaTitle(ctx context.Context, metaTitle string) (*domain.Category, error)
}

type TagService interface {
	GetTag(ctx context.Context, id string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}
