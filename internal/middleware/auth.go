package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sajid-dev/doctors-portal-api/internal/auth"
	"github.com/sajid-dev/doctors-portal-api/internal/store"
)

// EmailKey is the gin context key under which RequireAuth stores the
// verified email claim.
const EmailKey = "userEmail"

// ClaimEmail returns the verified email set by RequireAuth.
func ClaimEmail(c *gin.Context) string {
	email, _ := c.Get(EmailKey)
	s, _ := email.(string)
	return s
}

// RequireAuth verifies the bearer token and stores its email claim in
// the context. No header is 401; a present but invalid or expired
// token is 403.
func RequireAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tm.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// RequireAdmin loads the user for the verified email claim and aborts
// unless their role is admin. Must be chained after RequireAuth.
func RequireAdmin(users store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.ByEmail(c.Request.Context(), ClaimEmail(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to look up user"})
			return
		}
		if user == nil || !user.Role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
