package usecase

import (
	"context"
	"errors"

	"posts-backend/internal/auth/credential"
	authdomain "posts-backend/internal/auth/domain"
	authdto "posts-backend/internal/auth/dto"
	"posts-backend/internal/auth/repository"
	"posts-backend/internal/common/apperror"
	"posts-backend/pkg/logger"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *credential.Hasher
	tokens   *credential.TokenManager
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher *credential.Hasher, tokens *credential.TokenManager) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.SignUpRequest) (*authdomain.User, error) {
	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrUniqueConflict) {
			logger.Info().Str("email", req.Email).Msg("signup rejected: email already registered")
		}
		return nil, err
	}

	logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			logger.Info().Str("email", req.Email).Msg("login rejected: unknown email")
		}
		return nil, err
	}

	if !u.hasher.Verify(req.Password, user.Password) {
		logger.Info().Str("user_id", user.ID).Msg("login rejected: wrong password")
		return nil, apperror.ErrInvalidPassword
	}

	pair, err := u.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}
	return toTokenResponse(pair), nil
}

func (u *authUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	pair, err := u.tokens.Refresh(refreshToken)
	if err != nil {
		logger.Info().Err(err).Msg("refresh rejected")
		return nil, err
	}
	return toTokenResponse(pair), nil
}

func (u *authUsecase) ValidateToken(token string) (string, error) {
	return u.tokens.Decode(token)
}

func toTokenResponse(pair credential.TokenPair) *authdto.TokenResponse {
	return &authdto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
