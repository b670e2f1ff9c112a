package handlers

import (
	"net/http"

	"trackcare/models"
	adminSvc "trackcare/services/admin"

	"github.com/gin-gonic/gin"
)

// ApplyTherapistHandler submits a therapist application for the signed-in
// account.
func ApplyTherapistHandler(svc *adminSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.TherapistApplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		app, err := svc.Apply(c.GetString("username"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, app)
	}
}

// MyApplicationHandler returns the caller's latest application.
func MyApplicationHandler(svc *adminSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		app, err := svc.MyApplication(c.GetString("username"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if app == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No application found"})
			return
		}
		c.JSON(http.StatusOK, app)
	}
}

// ListApplicationsHandler lists applications awaiting review.
func ListApplicationsHandler(svc *adminSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		apps, err := svc.ListPending()
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, apps)
	}
}

// ApplicationDetailsHandler returns one application with its documents.
func ApplicationDetailsHandler(svc *adminSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		app, docs, err := svc.Details(c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"application": app, "documents": docs})
	}
}

type decisionRequest struct {
	Note string `json:"note,omitempty"`
}

// ApproveApplicationHandler approves and promotes the applicant.
func ApproveApplicationHandler(svc *adminSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req decisionRequest
		_ = c.ShouldBindJSON(&req)

		app, err := svc.Approve(c.Param("id"), req.Note)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, app)
	}
}

// RejectApplicationHandler rejects the application.
func RejectApplicationHandler(svc *adminSvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req decisionRequest
		_ = c.ShouldBindJSON(&req)

		app, err := svc.Reject(c.Param("id"), req.Note)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, app)
	}
}
