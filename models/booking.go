package models

import "time"

// Booking statuses.
const (
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

// Booking represents a confirmed therapy session reservation.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	TherapistID string    `bson:"therapistId" json:"therapistId"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string    `bson:"time" json:"time"` // "HH:MM"
	Status      string    `bson:"status" json:"status"`
	PaymentRef  string    `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateBookingRequest is the submit payload for a new booking.
type CreateBookingRequest struct {
	TherapistID string `json:"therapistId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	PaymentRef  string `json:"paymentRef,omitempty"`
}

// RescheduleBookingRequest moves an existing booking to a new slot.
type RescheduleBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// BookingResponse is the booking enriched with therapist display fields.
type BookingResponse struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Status              string `json:"status"`
	TherapistID         string `json:"therapistId"`
	TherapistName       string `json:"therapistName"`
	TherapistEmail      string `json:"therapistEmail,omitempty"`
	TherapistPhone      string `json:"therapistPhone,omitempty"`
	TherapistPictureURL string `json:"therapistProfilePictureUrl,omitempty"`
}
