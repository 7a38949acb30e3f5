package usecase

import (
	"context"
	"errors"

	"posts-backend/internal/common/apperror"
	"posts-backend/internal/post/domain"
	"posts-backend/internal/post/repository"
	"posts-backend/pkg/logger"
	"posts-backend/pkg/metrics"
)

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo repository.PostRepository
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, ownerID, text string) (*domain.Post, error) {
	post := &domain.Post{
		UserID: ownerID,
		Text:   text,
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			logger.Info().Str("user_id", ownerID).Msg("post owner does not exist")
		}
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := u.postRepo.Get(ctx, id)
	if err != nil {
		logNotFound(err, id)
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) UpdatePost(ctx context.Context, id string, update domain.PostUpdate) (*domain.Post, error) {
	if err := u.postRepo.Update(ctx, id, update); err != nil {
		logNotFound(err, id)
		return nil, err
	}
	return u.GetPost(ctx, id)
}

func (u *postUsecase) DeletePost(ctx context.Context, id string) error {
	if err := u.postRepo.Delete(ctx, id); err != nil {
		logNotFound(err, id)
		return err
	}
	return nil
}

func (u *postUsecase) RatePost(ctx context.Context, raterID, postID string, event domain.RateEvent) (*domain.Post, error) {
	post, err := u.postRepo.ApplyRating(ctx, raterID, postID, event)
	if err != nil {
		outcome := "error"
		switch {
		case errors.Is(err, apperror.ErrSelfRateRejected):
			outcome = "self_rate"
			logger.Info().Str("user_id", raterID).Str("post_id", postID).Str("event", string(event)).Msg("self-rating rejected")
		case errors.Is(err, apperror.ErrNotFound):
			outcome = "not_found"
			logNotFound(err, postID)
		case errors.Is(err, apperror.ErrInvalidRateEvent):
			outcome = "invalid"
		}
		metrics.RecordRatingEvent(string(event), outcome)
		return nil, err
	}

	metrics.RecordRatingEvent(string(event), "applied")
	return post, nil
}

func logNotFound(err error, postID string) {
	if errors.Is(err, apperror.ErrNotFound) {
		logger.Info().Str("post_id", postID).Msg("post not found")
	}
}
