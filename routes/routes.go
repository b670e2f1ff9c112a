package routes

import (
	"net/http"
	"time"

	"trackcare/handlers"
	"trackcare/middleware"
	"trackcare/models"
	"trackcare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, signin, and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Signup)
		api.POST("/signin", hb.Signin)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", hb.Logout)
		api.GET("/session", hb.Session)
	}
}

// RegisterTherapistRoutes registers the directory and therapist settings.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListTherapists)
		api.GET("/:id", hb.GetTherapist)
		api.GET("/:id/slots", hb.TherapistSlots)

		settings := api.Group("")
		settings.Use(middleware.RequireRole(hb.UserRepo, models.RoleTherapist))
		settings.PUT("/me/settings", hb.UpdateTherapistSettings)
	}
}

// RegisterBookingRoutes registers the dialog session and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthMiddleware())

		api.POST("/session", hb.OpenBookingSession)
		api.GET("/session/:sessionID", hb.GetBookingSession)
		api.PUT("/session/:sessionID/date", hb.SelectDate)
		api.PUT("/session/:sessionID/time", hb.SelectTime)
		api.POST("/session/:sessionID/confirm", hb.ConfirmSession)
		api.DELETE("/session/:sessionID", hb.CloseBookingSession)

		api.POST("", hb.CreateBooking)
		api.GET("/mine", hb.MyBookings)
		api.PUT("/:id", hb.RescheduleBooking)
		api.DELETE("/:id", hb.CancelBooking)
	}
}

// RegisterActivityRoutes registers activity results and analytics.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activities")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/results", hb.SaveActivity)
		api.GET("/results", hb.ActivityHistory)
		api.GET("/summary", hb.ActivitySummary)
	}
}

// RegisterScreeningRoutes registers questionnaire screening endpoints.
func RegisterScreeningRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/screening")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.SubmitScreening)
		api.GET("/history", hb.ScreeningHistory)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
		admin.GET("/recent", hb.RecentScreenings)
	}
}

// RegisterApplicationRoutes registers therapist application submission and
// admin review.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/applications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.ApplyTherapist)
		api.GET("/mine", hb.MyApplication)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
		admin.GET("", hb.ListApplications)
		admin.GET("/:id", hb.ApplicationDetails)
		admin.PUT("/:id/approve", hb.ApproveApplication)
		admin.PUT("/:id/reject", hb.RejectApplication)
	}
}

// RegisterPaymentRoutes registers deposit endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/deposit", hb.CreateDeposit)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm TrackCare",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterScreeningRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
