package booking

import (
	"fmt"
	"sort"

	bookingRepo "trackcare/database/repository/booking"
	timeslotRepo "trackcare/database/repository/timeslot"
)

// SlotSource produces the bookable start times for one therapist on one
// calendar date. The booking-session workflow depends on this interface so
// slot queries can be substituted in tests.
type SlotSource interface {
	SlotsFor(therapistID, date string) ([]string, error)
}

// SlotService computes open slots from the therapist's recurring weekly
// schedule minus the bookings already confirmed for the date. For today it
// also drops start times that have passed.
type SlotService struct {
	timeslots timeslotRepo.TimeSlotRepository
	bookings  bookingRepo.BookingRepository
}

// NewSlotService creates a SlotService.
func NewSlotService(ts timeslotRepo.TimeSlotRepository, b bookingRepo.BookingRepository) *SlotService {
	return &SlotService{timeslots: ts, bookings: b}
}

// SlotsFor returns the open "HH:MM" start times, sorted and deduplicated.
// An empty result means the therapist has no openings that day; it is never
// nil so callers can distinguish "no openings" from "not computed".
func (s *SlotService) SlotsFor(therapistID, date string) ([]string, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	day := WeekdayOf(date)

	weekly, err := s.timeslots.GetByTherapistAndDay(therapistID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly slots: %w", err)
	}

	booked, err := s.bookings.AllByTherapistAndDate(therapistID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b.Time] = true
	}

	now := timeNow()
	seen := make(map[string]bool, len(weekly))
	open := make([]string, 0, len(weekly))
	for _, slot := range weekly {
		if seen[slot.Time] || taken[slot.Time] {
			continue
		}
		if slotInPast(date, slot.Time, now) {
			continue
		}
		seen[slot.Time] = true
		open = append(open, slot.Time)
	}
	sort.Strings(open)
	return open, nil
}

// DefaultDaySlots is the full grid of session start times used when a
// therapist saves availability by day without picking individual times.
func DefaultDaySlots() []string {
	slots := make([]string, 0, (dayClose-dayOpen)/slotStride)
	for m := dayOpen; m < dayClose; m += slotStride {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}
