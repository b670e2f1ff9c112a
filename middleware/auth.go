package middleware

import (
	"context"
	"net/http"
	"strings"

	"trackcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// JWTAuthMiddleware validates the bearer token and checks that its hash is
// still present in the auth cache, so logout revokes tokens before they
// expire. Sets "userID" and "username" on the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		authKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		userID, err := utils.GetAuthCacheClient().Get(context.Background(), authKey).Result()
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or expired"})
			return
		}

		username := ""
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			username, _ = claims["username"].(string)
		}

		c.Set("userID", userID)
		c.Set("username", username)
		c.Set("token", tokenString)
		c.Next()
	}
}
