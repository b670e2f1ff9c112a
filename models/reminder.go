package models

// ReminderPayload is the queued payload for a session reminder email.
type ReminderPayload struct {
	BookingID     string `json:"bookingId"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	TherapistName string `json:"therapistName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
