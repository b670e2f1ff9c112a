// Package cron runs background jobs: reminder emails are enqueued at
// booking time and delivered ahead of the session by an asynq worker.
package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"trackcare/config"
	"trackcare/models"

	"github.com/hibiken/asynq"
)

// TypeBookingReminder is the asynq task type for session reminders.
const TypeBookingReminder = "booking:reminder"

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// NewReminderTask packs a reminder payload into an asynq task.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	return asynq.NewTask(TypeBookingReminder, data), nil
}

// ReminderQueue enqueues reminder tasks for future delivery.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue creates a queue client on the configured Redis DB.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpt())}
}

// ScheduleBookingReminder enqueues the reminder to run at the given time.
func (q *ReminderQueue) ScheduleBookingReminder(payload models.ReminderPayload, at time.Time) error {
	task, err := NewReminderTask(payload)
	if err != nil {
		return err
	}
	if _, err := q.client.Enqueue(task, asynq.ProcessAt(at), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
