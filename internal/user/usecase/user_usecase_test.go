package usecase_test

import (
	"context"
	"testing"

	authdomain "posts-backend/internal/auth/domain"
	"posts-backend/internal/common/apperror"
	postdomain "posts-backend/internal/post/domain"
	"posts-backend/internal/testutil"
	"posts-backend/internal/user/usecase"
	"posts-backend/pkg/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserInfo(t *testing.T) {
	users := new(testutil.MockUserRepository)
	uc := usecase.NewUserUsecase(users, new(testutil.MockPostRepository))
	update := authdomain.UserUpdate{Username: optional.Some("alicia")}

	users.On("Update", mock.Anything, "user-1", update).Return(nil)
	users.On("Update", mock.Anything, "missing", update).Return(apperror.ErrNotFound)
	users.On("Update", mock.Anything, "user-2", update).Return(apperror.ErrUniqueConflict)

	assert.NoError(t, uc.UpdateUserInfo(context.Background(), "user-1", update))
	assert.ErrorIs(t, uc.UpdateUserInfo(context.Background(), "missing", update), apperror.ErrNotFound)
	assert.ErrorIs(t, uc.UpdateUserInfo(context.Background(), "user-2", update), apperror.ErrUniqueConflict)
	users.AssertExpectations(t)
}

func TestGetUserPosts(t *testing.T) {
	posts := new(testutil.MockPostRepository)
	uc := usecase.NewUserUsecase(new(testutil.MockUserRepository), posts)

	want := []*postdomain.Post{{ID: "p1"}, {ID: "p2"}}
	posts.On("ListByUser", mock.Anything, "user-1").Return(want, nil)

	got, err := uc.GetUserPosts(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
