package models

import "time"

// Booking session states. A session only exists between opening the booking
// dialog and confirming or closing it; "closed" is the absence of a session.
const (
	SessionTherapistSelected = "THERAPIST_SELECTED"
	SessionDateSelected      = "DATE_SELECTED"
	SessionSlotsLoading      = "SLOTS_LOADING"
	SessionSlotsReady        = "SLOTS_READY"
	SessionTimeSelected      = "TIME_SELECTED"
)

// BookingSession holds the in-progress draft between opening the booking
// dialog and confirmation. It lives in Redis with a short TTL and is the
// only writer-owned state of the workflow.
type BookingSession struct {
	SessionID     string `json:"sessionId"`
	UserID        string `json:"userId"`
	TherapistID   string `json:"therapistId"`
	TherapistName string `json:"therapistName,omitempty"`
	State         string `json:"state"`

	Date string `json:"date,omitempty"`
	// SlotGeneration increments on every date change; slot query results
	// carry the generation they were issued under and are discarded when it
	// no longer matches (last-write-wins).
	SlotGeneration int64 `json:"slotGeneration"`
	// Slots is nil while no result has been applied for the current date;
	// an allocated empty slice means "loaded, no openings".
	Slots        []string `json:"slots,omitempty"`
	SlotsLoaded  bool     `json:"slotsLoaded"`
	SelectedTime string   `json:"selectedTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotSet returns the current slot list and whether a result has been
// applied for the currently selected date.
func (s *BookingSession) SlotSet() ([]string, bool) {
	if !s.SlotsLoaded {
		return nil, false
	}
	return s.Slots, true
}

// HasSlot reports membership of t in the loaded slot set.
func (s *BookingSession) HasSlot(t string) bool {
	if !s.SlotsLoaded {
		return false
	}
	for _, slot := range s.Slots {
		if slot == t {
			return true
		}
	}
	return false
}
