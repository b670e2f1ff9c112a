package handlers

import (
	"net/http"

	"trackcare/models"
	paymentSvc "trackcare/services/payment"

	"github.com/gin-gonic/gin"
)

// CreateDepositHandler opens a payment intent for a session deposit.
func CreateDepositHandler(svc *paymentSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.DepositRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		intent, err := svc.CreateDeposit(c.GetString("userID"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, intent)
	}
}
