package dto

import "posts-backend/pkg/optional"

// CreatePostRequest requires the text key; an empty string is accepted, as on update.
type CreatePostRequest struct {
	Text *string `json:"text" binding:"required"`
}

// UpdatePostRequest leaves the text untouched when the key is absent or null.
type UpdatePostRequest struct {
	Text optional.Option[string] `json:"text"`
}
