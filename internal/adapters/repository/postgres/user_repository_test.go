package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/blog/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	assert.False(t, alice.CreatedAt.IsZero())

	t.Run("find by email", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.ID, got.ID)
		assert.Equal(t, alice.PasswordHash, got.PasswordHash)
	})

	t.Run("find by login name", func(t *testing.T) {
		got, err := repo.FindByLoginName(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.Email, got.Email)
	})

	t.Run("missing user is nil", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate email and name", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{ID: uuid.New(), Name: "other", Email: "alice@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)

		err = repo.Create(ctx, &domain.User{ID: uuid.New(), Name: "alice", Email: "other@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, domain.ErrNameTaken)
	})

	t.Run("list pages", func(t *testing.T) {
		createUser(t, db, "bob")

		users, err := repo.List(ctx, 0, 1)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		users, err = repo.List(ctx, 0, 100)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}
