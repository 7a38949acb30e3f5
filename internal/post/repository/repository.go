package repository

import (
	"context"

	"posts-backend/internal/post/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create assigns an ID, timestamps and zero counters. Fails with
	// ErrNotFound when the owner does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// Get finds a post by its ID
	Get(ctx context.Context, id string) (*domain.Post, error)

	// Update applies the set fields of update
	Update(ctx context.Context, id string, update domain.PostUpdate) error

	// Delete deletes a post by ID
	Delete(ctx context.Context, id string) error

	// ListByUser returns the user's posts, oldest first
	ListByUser(ctx context.Context, userID string) ([]*domain.Post, error)

	// ApplyRating adjusts the post's counters for event inside one
	// transaction and returns the committed post. Fails with ErrNotFound
	// before ErrSelfRateRejected.
	ApplyRating(ctx context.Context, raterID, postID string, event domain.RateEvent) (*domain.Post, error)
}
