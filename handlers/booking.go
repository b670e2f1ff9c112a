package handlers

import (
	"net/http"

	"trackcare/models"
	bookingSvc "trackcare/services/booking"

	"github.com/gin-gonic/gin"
)

// OpenSessionHandler starts a booking dialog session for a therapist.
func OpenSessionHandler(svc *bookingSvc.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			TherapistID string `json:"therapistId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.Open(c.Request.Context(), c.GetString("userID"), req.TherapistID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// GetSessionHandler returns the caller's session state.
func GetSessionHandler(svc *bookingSvc.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		session, err := svc.Get(c.Request.Context(), c.GetString("userID"), c.Param("sessionID"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SelectDateHandler picks a date and loads its open slots.
func SelectDateHandler(svc *bookingSvc.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Date string `json:"date" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.LoadSlots(c.Request.Context(), c.GetString("userID"), c.Param("sessionID"), req.Date)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// SelectTimeHandler picks a start time from the loaded slots.
func SelectTimeHandler(svc *bookingSvc.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Time string `json:"time" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.SelectTime(c.Request.Context(), c.GetString("userID"), c.Param("sessionID"), req.Time)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// ConfirmSessionHandler turns the draft into a booking.
func ConfirmSessionHandler(svc *bookingSvc.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			PaymentRef string `json:"paymentRef,omitempty"`
		}
		// Body is optional.
		_ = c.ShouldBindJSON(&req)

		b, err := svc.Confirm(c.Request.Context(), c.GetString("userID"), c.Param("sessionID"), req.PaymentRef)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// CloseSessionHandler abandons the dialog.
func CloseSessionHandler(svc *bookingSvc.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.Close(c.Request.Context(), c.GetString("userID"), c.Param("sessionID")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
	}
}

// CreateBookingHandler books a slot directly, without a dialog session.
func CreateBookingHandler(svc *bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		b, err := svc.Create(c.GetString("userID"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// MyBookingsHandler lists the caller's bookings.
func MyBookingsHandler(svc *bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		list, err := svc.MyBookings(c.GetString("userID"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// RescheduleBookingHandler moves a booking to a new slot.
func RescheduleBookingHandler(svc *bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.RescheduleBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		b, err := svc.Reschedule(c.GetString("userID"), c.Param("id"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// CancelBookingHandler cancels a booking.
func CancelBookingHandler(svc *bookingSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.Cancel(c.GetString("userID"), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
	}
}

// TherapistSlotsHandler returns open slots for a therapist on a date,
// outside any dialog session.
func TherapistSlotsHandler(slots bookingSvc.SlotSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
			return
		}

		open, err := slots.SlotsFor(c.Param("id"), date)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "slots": open})
	}
}
