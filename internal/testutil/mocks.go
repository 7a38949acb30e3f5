package testutil

import (
	"context"

	authdomain "posts-backend/internal/auth/domain"
	postdomain "posts-backend/internal/post/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *authdomain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*authdomain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, update authdomain.UserUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *postdomain.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Get(ctx context.Context, id string) (*postdomain.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*postdomain.Post)
	return post, args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id string, update postdomain.PostUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID string) ([]*postdomain.Post, error) {
	args := m.Called(ctx, userID)
	posts, _ := args.Get(0).([]*postdomain.Post)
	return posts, args.Error(1)
}

func (m *MockPostRepository) ApplyRating(ctx context.Context, raterID, postID string, event postdomain.RateEvent) (*postdomain.Post, error) {
	args := m.Called(ctx, raterID, postID, event)
	post, _ := args.Get(0).(*postdomain.Post)
	return post, args.Error(1)
}
