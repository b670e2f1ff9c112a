package timeslotRepo

import "trackcare/models"

// TimeSlotRepository persists therapists' recurring weekly openings.
type TimeSlotRepository interface {
	// ReplaceForTherapist atomically swaps a therapist's whole weekly
	// schedule: existing slots are removed, then the given set inserted.
	ReplaceForTherapist(therapistID string, slots []models.TherapistTimeSlot) error
	GetByTherapistAndDay(therapistID, day string) ([]models.TherapistTimeSlot, error)
	GetAllByTherapist(therapistID string) ([]models.TherapistTimeSlot, error)
	DeleteAllByTherapist(therapistID string) error
}
