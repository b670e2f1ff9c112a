package handlers

import (
	"net/http"

	"trackcare/models"
	userSvc "trackcare/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignupHandler registers a parent account.
func SignupHandler(svc *userSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		u, err := svc.Signup(req)
		if err != nil {
			logger.Warn("Signup failed", zap.Error(err))
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// SigninHandler authenticates and opens the profile session.
func SigninHandler(svc *userSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.SigninRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Signin(req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler revokes the presented token.
func LogoutHandler(svc *userSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.Logout(c.GetString("userID"), c.GetString("token")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// SessionHandler returns the signed-in profile session.
func SessionHandler(svc *userSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		session, err := svc.Session(c.GetString("userID"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if session == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
