package handlers

import (
	"net/http"

	"trackcare/models"
	screeningSvc "trackcare/services/screening"

	"github.com/gin-gonic/gin"
)

// SubmitScreeningHandler runs the questionnaire through the model service
// and stores the verdict.
func SubmitScreeningHandler(svc *screeningSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.ScreeningRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		record, err := svc.Submit(c.GetString("username"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// ScreeningHistoryHandler lists the caller's past screenings.
func ScreeningHistoryHandler(svc *screeningSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		records, err := svc.History(c.GetString("username"), queryLimit(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// RecentScreeningsHandler lists the latest screenings across all users.
func RecentScreeningsHandler(svc *screeningSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		records, err := svc.Recent(queryLimit(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
