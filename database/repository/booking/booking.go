package bookingRepo

import "trackcare/models"

// BookingRepository persists confirmed session reservations.
type BookingRepository interface {
	Create(b *models.Booking) error
	Update(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)

	// ExistsAt reports whether a non-cancelled booking already occupies the
	// (therapist, date, time) slot.
	ExistsAt(therapistID, date, timeOfDay string) (bool, error)

	AllByUser(userID string) ([]models.Booking, error)
	AllByTherapistAndDate(therapistID, date string) ([]models.Booking, error)
}
