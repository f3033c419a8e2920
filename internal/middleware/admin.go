package middleware

import (
	"rpg_backend/internal/domain"

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnly requires an authenticated user holding the admin role. It must run
// after JWTAuth, which reloads the user from the database on each request.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c) // Get user from context
		if !ok {
			abort(c, domain.ErrMissingToken)
			return
		}
		// Check if user role is admin
		if user.Role != domain.RoleAdmin {
			abort(c, domain.ErrAdminRequired)
			return
		}
		c.Next()
	}
}
