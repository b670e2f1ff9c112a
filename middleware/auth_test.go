package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trackcare/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuth(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		utils.AuthCacheClient.Close()
		utils.AuthCacheClient = prev
	})
	return mr
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"username": c.GetString("username"),
		})
	})
	return r
}

func issueToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("u1", "amina", time.Hour)
	require.NoError(t, err)
	key := utils.AuthCachePrefix + utils.HashToken(token)
	require.NoError(t, utils.AuthCacheClient.Set(context.Background(), key, "u1", utils.AuthCacheTTL).Err())
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	setupAuth(t)
	r := authRouter()
	token := issueToken(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
	assert.Contains(t, w.Body.String(), `"username":"amina"`)
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	setupAuth(t)
	r := authRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareGarbageToken(t *testing.T) {
	setupAuth(t)
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareRevokedToken(t *testing.T) {
	mr := setupAuth(t)
	r := authRouter()
	token := issueToken(t)

	// Logout removes the hash from the auth cache; the still-valid JWT no
	// longer passes.
	mr.FlushAll()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
