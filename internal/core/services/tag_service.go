package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type tagService struct {
	tags       ports.TagRepository
	categories ports.CategoryRepository
}

func NewTagService(tags ports.TagRepository, categories ports.CategoryRepository) ports.TagService {
	return &tagService{
		tags:       tags,
		categories: categories,
	}
}

func (s *tagService) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	if tag == nil {
		return nil, domain.ErrTagNotFound
	}
	return tag, nil
}

func (s *tagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.tags.GetAll(ctx)
}

func (s *tagService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.GetAll(ctx)
}
