package usecase

import (
	"context"

	authdomain "posts-backend/internal/auth/domain"
	authdto "posts-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.SignUpRequest) (*authdomain.User, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	// ValidateToken returns the user ID carried by a valid, unexpired token.
	ValidateToken(token string) (string, error)
}
