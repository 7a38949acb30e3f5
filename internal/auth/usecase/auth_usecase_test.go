package usecase_test

import (
	"context"
	"testing"
	"time"

	"posts-backend/internal/auth/credential"
	authdomain "posts-backend/internal/auth/domain"
	authdto "posts-backend/internal/auth/dto"
	"posts-backend/internal/auth/usecase"
	"posts-backend/internal/common/apperror"
	"posts-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(repo *testutil.MockUserRepository) (usecase.AuthUsecase, *credential.Hasher, *credential.TokenManager) {
	hasher := credential.NewHasher(bcrypt.MinCost)
	tokens := credential.NewTokenManager("test-secret", 10*time.Minute, 10*time.Hour)
	return usecase.NewAuthUsecase(repo, hasher, tokens), hasher, tokens
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	uc, hasher, _ := newAuthUsecase(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*authdomain.User).ID = "user-1"
		}).
		Return(nil)

	user, err := uc.Register(context.Background(), &authdto.SignUpRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.True(t, hasher.Verify("s3cret", user.Password))
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	uc, _, _ := newAuthUsecase(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(apperror.ErrUniqueConflict)

	_, err := uc.Register(context.Background(), &authdto.SignUpRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, apperror.ErrUniqueConflict)
}

func TestLogin(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	uc, hasher, tokens := newAuthUsecase(repo)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&authdomain.User{ID: "user-1", Email: "alice@example.com", Password: hash}, nil)

	resp, err := uc.Login(context.Background(), &authdto.LoginRequest{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	sub, err := tokens.Decode(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	sub, err = tokens.Decode(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	uc, hasher, _ := newAuthUsecase(repo)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&authdomain.User{ID: "user-1", Password: hash}, nil)

	_, err = uc.Login(context.Background(), &authdto.LoginRequest{Email: "alice@example.com", Password: "nope"})
	assert.ErrorIs(t, err, apperror.ErrInvalidPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	uc, _, _ := newAuthUsecase(repo)

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, apperror.ErrNotFound)

	_, err := uc.Login(context.Background(), &authdto.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRefreshToken(t *testing.T) {
	repo := new(testutil.MockUserRepository)
	uc, _, tokens := newAuthUsecase(repo)

	refresh, err := tokens.IssueRefreshToken("user-1")
	require.NoError(t, err)

	resp, err := uc.RefreshToken(refresh)
	require.NoError(t, err)
	sub, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	access, err := tokens.IssueAccessToken("user-1")
	require.NoError(t, err)
	_, err = uc.RefreshToken(access)
	assert.ErrorIs(t, err, apperror.ErrInvalidScope)

	_, err = uc.RefreshToken("garbage")
	assert.ErrorIs(t, err, apperror.ErrTokenInvalid)
}

func TestValidateToken_Invalid(t *testing.T) {
	uc, _, _ := newAuthUsecase(new(testutil.MockUserRepository))

	_, err := uc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperror.ErrTokenInvalid)
}
