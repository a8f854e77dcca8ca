package http

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
)

// memoryUsers is an in-memory ports.UserRepository.
type memoryUsers struct {
	mu    sync.RWMutex
	users []*domain.User
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Email == email }), nil
}

func (m *memoryUsers) FindByLoginName(ctx context.Context, name string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Name == name }), nil
}

func (m *memoryUsers) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.ID == id }), nil
}

func (m *memoryUsers) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if skip >= len(m.users) {
		return []*domain.User{}, nil
	}
	end := min(skip+limit, len(m.users))
	return append([]*domain.User(nil), m.users[skip:end]...), nil
}

func (m *memoryUsers) Create(ctx context.Context, user *domain.User) error {
	if m.find(func(u *domain.User) bool { return u.Email == user.Email }) != nil {
		return domain.ErrEmailTaken
	}
	if m.find(func(u *domain.User) bool { return u.Name == user.Name }) != nil {
		return domain.ErrNameTaken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, user)
	return nil
}

func (m *memoryUsers) find(match func(*domain.User) bool) *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if match(u) {
			return u
		}
	}
	return nil
}

type mockPostService struct {
	mock.Mock
}

func (m *mockPostService) Create(ctx context.Context, author *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
	args := m.Called(ctx, author, input)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *mockPostService) List(ctx context.Context, filter ports.PostFilter) ([]*domain.Post, error) {
	args := m.Called(ctx, filter)
	posts, _ := args.Get(0).([]*domain.Post)
	return posts, args.Error(1)
}

func (m *mockPostService) Get(ctx context.Context, username, slug string) (*domain.Post, error) {
	args := m.Called(ctx, username, slug)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *mockPostService) Delete(ctx context.Context, author *domain.User, postID string) error {
	return m.Called(ctx, author, postID).Error(0)
}

type mockTagService struct {
	mock.Mock
}

func (m *mockTagService) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	tag, _ := args.Get(0).(*domain.Tag)
	return tag, args.Error(1)
}

func (m *mockTagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]*domain.Tag)
	return tags, args.Error(1)
}

func (m *mockTagService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*domain.Category)
	return categories, args.Error(1)
}
