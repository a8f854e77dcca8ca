package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vncsmyrnk/blog/internal/core/domain"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

// setupDB starts a throwaway postgres, applies the embedded migrations and
// registers cleanup on t.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, dsn, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, Migrate(ctx, db, logger))

	return db
}

func createUser(t *testing.T, db *sql.DB, name string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplaceho",
		IsActive:     true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedTaxonomy(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO categories (id, title, meta_title, context) VALUES
			('c1', 'Go', 'golang', 'Go articles'),
			('c2', 'Life', 'life', '');
		INSERT INTO tag (id, title, meta_title, icon_image_url) VALUES
			('t1', 'Web', 'web', 'https://cdn.example.com/web.png'),
			('t2', 'Database', 'db', '');
	`)
	require.NoError(t, err)
}
