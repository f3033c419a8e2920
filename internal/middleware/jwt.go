package middleware

import (
	"context"
	"strings" // String manipulation

	"rpg_backend/internal/domain"

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextUser   = "user"
)

// Authenticator resolves a bearer token to the account it was issued for
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization") // Get Authorization header
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// JWTAuth validates the bearer token and stores the user in the context
func JWTAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abort(c, domain.ErrMissingToken)
			return
		}
		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, err)
			return
		}
		setUser(c, user)
		c.Next() // Proceed to the next handler
	}
}

// OptionalJWTAuth authenticates the request when a token is present. Requests
// without an Authorization header pass through anonymously; a bad token is
// still rejected.
func OptionalJWTAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		token, ok := bearerToken(c)
		if !ok {
			abort(c, domain.ErrMissingToken)
			return
		}
		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, err)
			return
		}
		setUser(c, user)
		c.Next()
	}
}

// UserID returns the authenticated user's id, or 0 for anonymous requests
func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

// CurrentUser returns the authenticated user, if any
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

func setUser(c *gin.Context, user *domain.User) {
	c.Set(ContextUserID, user.ID) // Store userID in context
	c.Set(ContextUser, user)
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
