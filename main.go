// File: trackcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackcare/config"
	"trackcare/cron"
	"trackcare/database"
	activityRepoPkg "trackcare/database/repository/activity"
	applicationRepoPkg "trackcare/database/repository/application"
	bookingRepoPkg "trackcare/database/repository/booking"
	questionnaireRepoPkg "trackcare/database/repository/questionnaire"
	timeslotRepoPkg "trackcare/database/repository/timeslot"
	userRepoPkg "trackcare/database/repository/user"
	"trackcare/handlers"
	"trackcare/routes"
	"trackcare/services/activity"
	"trackcare/services/admin"
	"trackcare/services/booking"
	"trackcare/services/notification"
	"trackcare/services/payment"
	"trackcare/services/screening"
	"trackcare/services/therapist"
	"trackcare/services/user"
	"trackcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	timeslotRepo := timeslotRepoPkg.NewMongoTimeSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	applicationRepo := applicationRepoPkg.NewMongoApplicationRepo()
	questionnaireRepo := questionnaireRepoPkg.NewMongoQuestionnaireRepo()

	// services.
	emailService := notification.NewEmailService()
	reminderQueue := cron.NewReminderQueue()
	defer reminderQueue.Close()

	userService := user.NewService(userRepo, utils.GetAuthCacheClient(), utils.GetSessionCacheClient())
	therapistService := therapist.NewService(userRepo, timeslotRepo)
	slotService := booking.NewSlotService(timeslotRepo, bookingRepo)
	bookingService := booking.NewService(bookingRepo, userRepo, timeslotRepo, emailService, reminderQueue)
	sessionService := booking.NewSessionService(utils.GetSessionCacheClient(), slotService, userRepo, bookingService)
	activityService := activity.NewService(activityRepo)
	adminService := admin.NewService(applicationRepo, userRepo, emailService)
	modelClient := screening.NewHTTPModelClient(config.AppConfig.ModelServiceURL, config.AppConfig.ModelServiceKey)
	screeningService := screening.NewService(modelClient, questionnaireRepo)
	paymentService := payment.NewService()

	// Deliver queued session reminders in the background.
	go cron.StartWorker(emailService)

	// Periodic dependency health checks, surfaced on /health.
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetSessionCacheClient(),
	}, database.MongoClient)

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		UserRepo:  userRepo,
		Users:     userService,
		Therapist: therapistService,
		Slots:     slotService,
		Sessions:  sessionService,
		Bookings:  bookingService,
		Activity:  activityService,
		Screening: screeningService,
		Admin:     adminService,
		Payments:  paymentService,
	})

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8081"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
