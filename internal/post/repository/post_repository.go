package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"posts-backend/internal/common/apperror"
	"posts-backend/internal/post/domain"
	"posts-backend/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of postRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now()
	post.ID = uuid.New().String()
	post.Likes = 0
	post.Dislikes = 0
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := r.db.WithContext(ctx).Omit("Owner").Create(post).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.ErrNotFound
		}
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, id string, update domain.PostUpdate) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", id).
		Updates(update.Columns(time.Now()))
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Post{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) ApplyRating(ctx context.Context, raterID, postID string, event domain.RateEvent) (*domain.Post, error) {
	column, delta, err := event.Counter()
	if err != nil {
		return nil, err
	}

	var rated domain.Post
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row lock keeps the owner check and the increment on the same
		// snapshot. SQLite has no row locks and serializes writers instead.
		var current domain.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "user_id").
			Where("id = ?", postID).
			Take(&current).Error; err != nil {
			return err
		}
		if current.UserID == raterID {
			return apperror.ErrSelfRateRejected
		}

		if err := incrementCounter(tx, postID, column, delta, time.Now()).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", postID).Take(&rated).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperror.ErrNotFound
		case errors.Is(err, apperror.ErrSelfRateRejected):
			return nil, err
		default:
			return nil, fmt.Errorf("failed to rate post: %w", err)
		}
	}
	return &rated, nil
}

// incrementCounter adds delta to column in SQL. The counter value is never
// read into Go and written back.
func incrementCounter(tx *gorm.DB, postID, column string, delta int, now time.Time) *gorm.DB {
	return tx.Model(&domain.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", delta),
			"updated_at": now,
		})
}
