package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

const postColumns = `p.post_id, p.user_id, u.name, p.title, p.content, p.summary, p.category, p.slug, p.created_at`

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) ports.PostRepository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Save(ctx context.Context, post *domain.Post, tagIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPost := `
		INSERT INTO posts (post_id, user_id, title, slug, content, summary, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, queryPost,
		post.ID, post.UserID, post.Title, post.Slug, post.Content, post.Summary, post.Category, post.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	if len(tagIDs) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO post_tag (post_id, tag_id) VALUES ($1, $2)`)
		if err != nil {
			return fmt.Errorf("failed to prepare post tag statement: %w", err)
		}
		defer stmt.Close()

		for _, tagID := range tagIDs {
			if _, err := stmt.ExecContext(ctx, post.ID, tagID); err != nil {
				return fmt.Errorf("failed to insert post tag: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *postRepository) List(ctx context.Context, filter ports.PostFilter) ([]*domain.Post, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		conditions = append(conditions, "p.category = "+arg(filter.Category))
	}
	if filter.Keyword != "" {
		pattern := arg("%" + escapeLike(filter.Keyword) + "%")
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE %s OR p.content ILIKE %s)", pattern, pattern))
	}
	if filter.TagID != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM post_tag pt WHERE pt.post_id = p.post_id AND pt.tag_id = "+arg(filter.TagID)+")")
	}

	query := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.user_id = p.user_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.post_id LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		post := &domain.Post{}
		if err := scanPost(rows, post); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	for _, post := range posts {
		if post.TagURLs, err = r.fetchTagURLs(ctx, post.ID); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (r *postRepository) GetByUserAndSlug(ctx context.Context, username, slug string) (*domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.user_id
		WHERE u.name = $1 AND p.slug = $2
	`

	post := &domain.Post{}
	err := scanPost(r.db.QueryRowContext(ctx, query, username, slug), post)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if post.TagURLs, err = r.fetchTagURLs(ctx, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *postRepository) fetchTagURLs(ctx context.Context, postID uuid.UUID) ([]domain.TagURL, error) {
	query := `
		SELECT t.title, t.icon_image_url
		FROM post_tag pt
		JOIN tag t ON t.id = pt.tag_id
		WHERE pt.post_id = $1
		ORDER BY t.title
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post tags: %w", err)
	}
	defer rows.Close()

	tagURLs := []domain.TagURL{}
	for rows.Next() {
		var t domain.TagURL
		if err := rows.Scan(&t.TagName, &t.URL); err != nil {
			return nil, fmt.Errorf("failed to scan post tag: %w", err)
		}
		tagURLs = append(tagURLs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post tags: %w", err)
	}
	return tagURLs, nil
}

func scanPost(s scanner, post *domain.Post) error {
	return s.Scan(&post.ID, &post.UserID, &post.Username, &post.Title, &post.Content,
		&post.Summary, &post.Category, &post.Slug, &post.CreatedAt)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
