// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	authdomain "posts-backend/internal/auth/domain"
	postdomain "posts-backend/internal/post/domain"
	"posts-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated SQLite database in a temp dir that is closed when
// the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &authdomain.User{}, &postdomain.Post{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// PostgresDSNEnv names the variable holding a disposable Postgres DSN. Tests
// that need real row locks skip when it is unset.
const PostgresDSNEnv = "POSTS_TEST_POSTGRES_DSN"

// NewPostgresTestDB opens the database named by PostgresDSNEnv and recreates
// the users and posts tables in it.
func NewPostgresTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(PostgresDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", PostgresDSNEnv)
	}

	db, err := database.OpenPostgres(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Reset(db, &authdomain.User{}, &postdomain.Post{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, db *gorm.DB, username string) *authdomain.User {
	t.Helper()

	now := time.Now()
	user := &authdomain.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     username + "-" + uuid.New().String()[:8] + "@example.com",
		Password:  "not-a-real-hash",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)
	return user
}
