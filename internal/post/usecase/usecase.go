package usecase

import (
	"context"

	"posts-backend/internal/post/domain"
)

// PostUsecase defines the post business logic
type PostUsecase interface {
	CreatePost(ctx context.Context, ownerID, text string) (*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	// UpdatePost applies update and returns the stored post.
	UpdatePost(ctx context.Context, id string, update domain.PostUpdate) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
	RatePost(ctx context.Context, raterID, postID string, event domain.RateEvent) (*domain.Post, error)
}
