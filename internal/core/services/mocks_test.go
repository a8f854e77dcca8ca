package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByLoginName(ctx context.Context, name string) (*domain.User, error) {
	args := m.Called(ctx, name)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, skip, limit)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Save(ctx context.Context, post *domain.Post, tagIDs []string) error {
	return m.Called(ctx, post, tagIDs).Error(0)
}

func (m *mockPostRepository) List(ctx context.Context, filter ports.PostFilter) ([]*domain.Post, error) {
	args := m.Called(ctx, filter)
	posts, _ := args.Get(0).([]*domain.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepository) GetByUserAndSlug(ctx context.Context, username, slug string) (*domain.Post, error) {
	args := m.Called(ctx, username, slug)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *mockPostRepository) Delete(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	tag, _ := args.Get(0).(*domain.Tag)
	return tag, args.Error(1)
}

func (m *mockTagRepository) GetAll(ctx context.Context) ([]*domain.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]*domain.Tag)
	return tags, args.Error(1)
}

func (m *mockTagRepository) FindByMetaTitles(ctx context.Context, metaTitles []string) ([]*domain.Tag, error) {
	args := m.Called(ctx, metaTitles)
	tags, _ := args.Get(0).([]*domain.Tag)
	return tags, args.Error(1)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*domain.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepository) GetByMetaTitle(ctx context.Context, metaTitle string) (*domain.Category, error) {
	args := m.Called(ctx, metaTitle)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}
