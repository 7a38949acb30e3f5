package repository

import (
	"context"

	authdomain "posts-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access.
// Implementations return apperror sentinels, never driver errors.
type UserRepository interface {
	// Create assigns an ID and timestamps. Fails with ErrUniqueConflict on a duplicate email.
	Create(ctx context.Context, user *authdomain.User) error

	// GetByEmail fails with ErrNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*authdomain.User, error)

	// GetByID fails with ErrNotFound when the user does not exist.
	GetByID(ctx context.Context, id string) (*authdomain.User, error)

	// Update applies the set fields of update. Fails with ErrNotFound when no
	// row matches id and with ErrUniqueConflict when the new email is taken.
	Update(ctx context.Context, id string, update authdomain.UserUpdate) error
}
