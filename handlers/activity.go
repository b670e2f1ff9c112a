package handlers

import (
	"net/http"
	"strconv"

	"trackcare/models"
	activitySvc "trackcare/services/activity"
	"trackcare/services/analytics"

	"github.com/gin-gonic/gin"
)

// SaveActivityHandler records one finished attempt and returns the
// refreshed history for its type, with performance percentages recomputed
// against the updated population.
func SaveActivityHandler(svc *activitySvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.ActivityResultCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		saved, history, err := svc.SaveAndHistory(c.GetString("username"), req, queryLimit(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"result":  saved,
			"history": analytics.WithPerformance(history),
		})
	}
}

// ActivityHistoryHandler lists past attempts with performance percentages.
// Optional query parameters: type, limit.
func ActivityHistoryHandler(svc *activitySvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		history, err := svc.History(c.GetString("username"), c.Query("type"), queryLimit(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, analytics.WithPerformance(history))
	}
}

// ActivitySummaryHandler returns per-type aggregates for the dashboard.
func ActivitySummaryHandler(svc *activitySvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		history, err := svc.History(c.GetString("username"), "", activitySvc.MaxHistoryLimit)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, analytics.Summaries(history))
	}
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}
