package middleware

import (
	"net/http"

	userRepo "trackcare/database/repository/user"

	"github.com/gin-gonic/gin"
)

// RequireRole allows only accounts holding one of the given roles. Must run
// after JWTAuthMiddleware.
func RequireRole(users userRepo.UserRepository, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		u, err := users.GetByID(userID)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}
		for _, role := range roles {
			if u.Role == role {
				c.Set("role", u.Role)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
