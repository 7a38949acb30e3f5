// Package apperror holds the domain error taxonomy shared by repositories,
// usecases and HTTP delivery.
package apperror

import "errors"

var (
	ErrNotFound         = errors.New("entity not found")
	ErrUniqueConflict   = errors.New("entity with specified unique fields already exists")
	ErrSelfRateRejected = errors.New("users cannot rate their own posts")
	ErrInvalidRateEvent = errors.New("unknown rate event")
	ErrInvalidPassword  = errors.New("wrong password")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrInvalidScope     = errors.New("invalid scope for token")
	ErrUnauthorized     = errors.New("unauthorized")
)
