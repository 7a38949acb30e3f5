package delivery

import (
	"fmt"
	"strings"

	"posts-backend/internal/auth/usecase"
	"posts-backend/internal/common/apperror"
	"posts-backend/internal/common/httputil"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user's ID.
const UserIDKey = "userID"

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.Error(c, fmt.Errorf("%w: authorization header required", apperror.ErrUnauthorized))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			httputil.Error(c, fmt.Errorf("%w: invalid authorization header format", apperror.ErrUnauthorized))
			return
		}

		userID, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			httputil.Error(c, fmt.Errorf("%w: %w", apperror.ErrUnauthorized, err))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the user ID stored by AuthMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
