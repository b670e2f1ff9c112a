package handlers

import (
	"net/http"

	"trackcare/models"
	therapistSvc "trackcare/services/therapist"

	"github.com/gin-gonic/gin"
)

// ListTherapistsHandler returns directory cards for all therapists.
func ListTherapistsHandler(svc *therapistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		cards, err := svc.ListCards()
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cards)
	}
}

// GetTherapistHandler returns one therapist's profile with availability.
func GetTherapistHandler(svc *therapistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		profile, err := svc.GetProfile(c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateTherapistSettingsHandler updates the signed-in therapist's price
// and weekly availability.
func UpdateTherapistSettingsHandler(svc *therapistSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.UpdateTherapistSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		profile, err := svc.UpdateSettings(c.GetString("userID"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
