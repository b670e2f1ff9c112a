package handlers

import (
	"trackcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request-scoped logger with the route attached.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.GetLogger().With(zap.String("path", c.FullPath()))
}
