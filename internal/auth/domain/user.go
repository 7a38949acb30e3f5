package domain

import (
	"time"

	"posts-backend/pkg/optional"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Username  string    `json:"username" gorm:"size:150;not null;index"`
	Email     string    `json:"email" gorm:"size:150;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:150;not null"` // bcrypt hash, never returned in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate lists the profile fields a caller may change. Unset fields are
// left untouched.
type UserUpdate struct {
	Username optional.Option[string]
	Email    optional.Option[string]
}

// Columns returns the column assignments for the set fields plus updated_at.
func (u UserUpdate) Columns(now time.Time) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": now}
	if v, ok := u.Username.Get(); ok {
		columns["username"] = v
	}
	if v, ok := u.Email.Get(); ok {
		columns["email"] = v
	}
	return columns
}
