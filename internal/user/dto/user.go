package dto

import (
	"posts-backend/pkg/optional"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UserUpdateRequest carries the optional profile fields. Absent or null keys
// leave the stored value untouched.
type UserUpdateRequest struct {
	Username optional.Option[string] `json:"username"`
	Email    optional.Option[string] `json:"email"`
}

// Validate checks the fields that are set.
func (r UserUpdateRequest) Validate() error {
	if email, ok := r.Email.Get(); ok {
		if err := validate.Var(email, "required,email,max=150"); err != nil {
			return err
		}
	}
	if username, ok := r.Username.Get(); ok {
		if err := validate.Var(username, "required,max=150"); err != nil {
			return err
		}
	}
	return nil
}
