package handlers

import (
	"errors"
	"net/http"

	activitySvc "trackcare/services/activity"
	adminSvc "trackcare/services/admin"
	bookingSvc "trackcare/services/booking"
	paymentSvc "trackcare/services/payment"
	screeningSvc "trackcare/services/screening"
	therapistSvc "trackcare/services/therapist"
	userSvc "trackcare/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP statuses and hides internals
// behind a generic message for anything unexpected.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case bookingSvc.IsValidation(err),
		errors.Is(err, activitySvc.ErrInvalidType),
		errors.Is(err, activitySvc.ErrInvalidScore),
		errors.Is(err, screeningSvc.ErrNoFeatures),
		errors.Is(err, paymentSvc.ErrInvalidAmount):
		return http.StatusBadRequest

	case errors.Is(err, userSvc.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, therapistSvc.ErrNotTherapist):
		return http.StatusForbidden

	case errors.Is(err, bookingSvc.ErrSessionNotFound),
		errors.Is(err, bookingSvc.ErrBookingNotFound),
		errors.Is(err, therapistSvc.ErrNotFound),
		errors.Is(err, adminSvc.ErrApplicationNotFound):
		return http.StatusNotFound

	case bookingSvc.IsConflict(err),
		bookingSvc.IsUnavailable(err),
		bookingSvc.IsState(err),
		errors.Is(err, userSvc.ErrEmailTaken),
		errors.Is(err, userSvc.ErrUsernameTaken),
		errors.Is(err, adminSvc.ErrPendingExists),
		errors.Is(err, adminSvc.ErrAlreadyDecided),
		errors.Is(err, adminSvc.ErrAlreadyTherapist):
		return http.StatusConflict

	case errors.Is(err, screeningSvc.ErrModelUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
