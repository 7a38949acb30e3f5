package usecase

import (
	"context"
	"errors"

	authdomain "posts-backend/internal/auth/domain"
	authrepo "posts-backend/internal/auth/repository"
	"posts-backend/internal/common/apperror"
	postdomain "posts-backend/internal/post/domain"
	postrepo "posts-backend/internal/post/repository"
	"posts-backend/pkg/logger"
)

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo authrepo.UserRepository
	postRepo postrepo.PostRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo authrepo.UserRepository, postRepo postrepo.PostRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (u *userUsecase) UpdateUserInfo(ctx context.Context, userID string, update authdomain.UserUpdate) error {
	err := u.userRepo.Update(ctx, userID, update)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		logger.Info().Str("user_id", userID).Msg("user not found")
	case errors.Is(err, apperror.ErrUniqueConflict):
		logger.Info().Str("user_id", userID).Msg("profile update rejected: email already taken")
	}
	return err
}

// GetUserPosts lists posts oldest first. An unknown user has no posts.
func (u *userUsecase) GetUserPosts(ctx context.Context, userID string) ([]*postdomain.Post, error) {
	return u.postRepo.ListByUser(ctx, userID)
}
