package domain

import (
	"time"

	authdomain "posts-backend/internal/auth/domain"
	"posts-backend/pkg/optional"
)

// Post is a text entry owned by a user. UserID never changes after creation;
// Likes and Dislikes change only through rating.
type Post struct {
	ID        string           `json:"id" gorm:"primaryKey;size:36"`
	UserID    string           `json:"user_id" gorm:"size:36;not null;index"`
	Owner     *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Text      string           `json:"text" gorm:"type:text;not null"`
	Likes     int              `json:"likes" gorm:"not null;default:0"`
	Dislikes  int              `json:"dislikes" gorm:"not null;default:0"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PostUpdate lists the fields an update may change. Unset fields are left untouched.
type PostUpdate struct {
	Text optional.Option[string]
}

func (u PostUpdate) Columns(now time.Time) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": now}
	if v, ok := u.Text.Get(); ok {
		columns["text"] = v
	}
	return columns
}
