package usecase

import (
	"context"

	authdomain "posts-backend/internal/auth/domain"
	postdomain "posts-backend/internal/post/domain"
)

// UserUsecase defines profile and per-user listing logic
type UserUsecase interface {
	UpdateUserInfo(ctx context.Context, userID string, update authdomain.UserUpdate) error
	GetUserPosts(ctx context.Context, userID string) ([]*postdomain.Post, error)
}
