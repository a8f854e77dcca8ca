package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type tagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) ports.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	query := `SELECT id, title, meta_title, icon_image_url FROM tag WHERE id = $1`
	tag := &domain.Tag{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&tag.ID, &tag.Title, &tag.MetaTitle, &tag.IconImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]*domain.Tag, error) {
	query := `SELECT id, title, meta_title, icon_image_url FROM tag ORDER BY title`
	return r.queryTags(ctx, query)
}

func (r *tagRepository) FindByMetaTitles(ctx context.Context, metaTitles []string) ([]*domain.Tag, error) {
	if len(metaTitles) == 0 {
		return nil, nil
	}
	query := `SELECT id, title, meta_title, icon_image_url FROM tag WHERE meta_title = ANY($1) ORDER BY title`
	return r.queryTags(ctx, query, pq.Array(metaTitles))
}

func (r *tagRepository) queryTags(ctx context.Context, query string, args ...any) ([]*domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := []*domain.Tag{}
	for rows.Next() {
		tag := &domain.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Title, &tag.MetaTitle, &tag.IconImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}
	return tags, nil
}
