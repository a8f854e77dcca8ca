package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type postService struct {
	posts      ports.PostRepository
	tags       ports.TagRepository
	categories ports.CategoryRepository
}

func NewPostService(posts ports.PostRepository, tags ports.TagRepository, categories ports.CategoryRepository) ports.PostService {
	return &postService{
		posts:      posts,
		tags:       tags,
		categories: categories,
	}
}

func (s *postService) Create(ctx context.Context, author *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
	if author == nil {
		return nil, domain.ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	category, err := s.categories.GetByMetaTitle(ctx, strings.TrimSpace(input.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrInvalidCategory
	}

	postSlug := slug.Make(input.Slug)
	if postSlug == "" {
		postSlug = slug.Make(title)
	}
	if postSlug == "" {
		return nil, fmt.Errorf("%w: slug cannot be derived from title", domain.ErrInvalidInput)
	}

	// Unknown tags are ignored.
	tags, err := s.tags.FindByMetaTitles(ctx, dedupe(input.Tags))
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	post := &domain.Post{
		ID:        uuid.New(),
		UserID:    author.ID,
		Username:  author.Name,
		Title:     title,
		Content:   input.Content,
		Summary:   input.Summary,
		Category:  category.MetaTitle,
		Slug:      postSlug,
		CreatedAt: time.Now(),
		TagURLs:   []domain.TagURL{},
	}

	tagIDs := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID)
		post.TagURLs = append(post.TagURLs, domain.TagURL{TagName: tag.Title, URL: tag.IconImageURL})
	}

	if err := s.posts.Save(ctx, post, tagIDs); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) List(ctx context.Context, filter ports.PostFilter) ([]*domain.Post, error) {
	skip, limit, err := normalizePage(filter.Skip, filter.Limit)
	if err != nil {
		return nil, err
	}
	filter.Skip, filter.Limit = skip, limit
	filter.Keyword = strings.TrimSpace(filter.Keyword)

	if filter.Category != "" {
		category, err := s.categories.GetByMetaTitle(ctx, filter.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
		if category == nil {
			return nil, domain.ErrInvalidCategory
		}
	}

	return s.posts.List(ctx, filter)
}

func (s *postService) Get(ctx context.Context, username, postSlug string) (*domain.Post, error) {
	post, err := s.posts.GetByUserAndSlug(ctx, username, postSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, author *domain.User, postID string) error {
	if author == nil {
		return domain.ErrUnauthorized
	}

	id, err := uuid.Parse(postID)
	if err != nil {
		return fmt.Errorf("%w: invalid post id", domain.ErrInvalidInput)
	}

	deleted, err := s.posts.Delete(ctx, id, author.ID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		return domain.ErrPostNotFound
	}
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// IsInputError reports whether err should be answered with 400.
func IsInputError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidCategory) ||
		errors.Is(err, domain.ErrEmailTaken) ||
		errors.Is(err, domain.ErrNameTaken)
}
