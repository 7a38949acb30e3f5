// Package httputil maps domain errors onto HTTP responses for the gin handlers.
package httputil

import (
	"errors"
	"net/http"

	"posts-backend/internal/common/apperror"
	"posts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusFor returns the HTTP status for a domain error. Errors outside the
// taxonomy map to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrUniqueConflict),
		errors.Is(err, apperror.ErrSelfRateRejected),
		errors.Is(err, apperror.ErrInvalidPassword),
		errors.Is(err, apperror.ErrInvalidRateEvent):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrTokenExpired),
		errors.Is(err, apperror.ErrTokenInvalid),
		errors.Is(err, apperror.ErrInvalidScope),
		errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err with its mapped status and aborts the chain. Internal
// errors are logged and replaced by a generic message.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.AbortWithStatusJSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: publicMessage(err)})
}

// publicMessage hides token parser details behind the sentinel text.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrTokenExpired):
		return apperror.ErrTokenExpired.Error()
	case errors.Is(err, apperror.ErrTokenInvalid):
		return apperror.ErrTokenInvalid.Error()
	case errors.Is(err, apperror.ErrInvalidScope):
		return apperror.ErrInvalidScope.Error()
	default:
		return err.Error()
	}
}

// BadRequest aborts with 400 and the given message.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// ParseID reads a UUID path parameter, responding 400 when it is malformed.
func ParseID(c *gin.Context, name string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		BadRequest(c, "invalid "+name+": must be a UUID")
		return "", false
	}
	return id.String(), true
}
