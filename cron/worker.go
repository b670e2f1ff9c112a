package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"trackcare/models"
	"trackcare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderMailer delivers the reminder email.
type ReminderMailer interface {
	SendBookingReminder(payload models.ReminderPayload) error
}

// HandleReminderTask decodes and delivers one reminder. Exposed so the
// handler is testable without a running asynq server.
func HandleReminderTask(mailer ReminderMailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := mailer.SendBookingReminder(payload); err != nil {
			return fmt.Errorf("failed to deliver reminder for booking %s: %w", payload.BookingID, err)
		}
		utils.GetLogger().Info("reminder delivered",
			zap.String("bookingId", payload.BookingID), zap.String("email", payload.Email))
		return nil
	}
}

// StartWorker runs the asynq server until the process exits. Call from a
// goroutine at startup.
func StartWorker(mailer ReminderMailer) {
	srv := asynq.NewServer(redisOpt(), asynq.Config{
		Concurrency: 5,
	})

	mux := asynq.NewServeMux()
	mux.Handle(TypeBookingReminder, HandleReminderTask(mailer))

	if err := srv.Run(mux); err != nil {
		utils.GetLogger().Fatal("reminder worker stopped", zap.Error(err))
	}
}
