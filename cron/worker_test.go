package cron

import (
	"context"
	"errors"
	"sync"
	"testing"

	"trackcare/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu        sync.Mutex
	delivered []models.ReminderPayload
	err       error
}

func (m *recordingMailer) SendBookingReminder(payload models.ReminderPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.delivered = append(m.delivered, payload)
	return nil
}

func TestHandleReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		BookingID: "b1", Email: "amina@trackcare.test", Name: "Amina",
		TherapistName: "Asha Rivers", Date: "2026-09-04", Time: "10:00",
	}
	task, err := NewReminderTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingReminder, task.Type())

	mailer := &recordingMailer{}
	require.NoError(t, HandleReminderTask(mailer)(context.Background(), task))
	require.Len(t, mailer.delivered, 1)
	assert.Equal(t, payload, mailer.delivered[0])
}

func TestHandleReminderTaskDeliveryFailureRetries(t *testing.T) {
	task, err := NewReminderTask(models.ReminderPayload{BookingID: "b1"})
	require.NoError(t, err)

	mailer := &recordingMailer{err: errors.New("smtp down")}
	err = HandleReminderTask(mailer)(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleReminderTaskBadPayloadSkipsRetry(t *testing.T) {
	task := asynq.NewTask(TypeBookingReminder, []byte("not-json"))

	err := HandleReminderTask(&recordingMailer{})(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
