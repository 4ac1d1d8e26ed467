// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"errors"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/user"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/auth"
	"github.com/beammart/backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates JWT authentication middleware. The token subject is
// re-checked against the users table so tokens of deleted or deactivated
// accounts stop working immediately.
func AuthMiddleware(cfg *config.Config, userService *user.Service) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperr.Unauthorized(apperr.CodeNoToken, "Authentication required"))
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			response.Error(c, apperr.Unauthorized(apperr.CodeInvalidToken, "Invalid authorization header format"))
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Error(c, apperr.Unauthorized(apperr.CodeTokenExpired, "Token has expired"))
				return
			}
			response.Error(c, apperr.Unauthorized(apperr.CodeInvalidToken, "Invalid token"))
			return
		}

		u, err := userService.GetByID(claims.UserID)
		if err != nil || !u.IsActive {
			response.Error(c, apperr.Unauthorized(apperr.CodeInvalidToken, "Invalid token"))
			return
		}

		// Admin flag comes from the database, not the token, so a role
		// change does not require re-login
		c.Set("user_id", u.ID)
		c.Set("user_email", u.Email)
		c.Set("is_admin", u.IsAdmin)

		c.Next()
	}
}

// AdminMiddleware ensures the authenticated user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			response.Error(c, apperr.Unauthorized(apperr.CodeNoToken, "Authentication required"))
			return
		}

		if !isAdmin.(bool) {
			response.Error(c, apperr.Forbidden(apperr.CodeAdminRequired, "Admin access required"))
			return
		}

		c.Next()
	}
}

// GetUserIDFromContext extracts user ID from gin context
func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// IsAdminFromContext checks if user is admin from gin context
func IsAdminFromContext(c *gin.Context) bool {
	isAdmin, exists := c.Get("is_admin")
	if !exists {
		return false
	}
	return isAdmin.(bool)
}
