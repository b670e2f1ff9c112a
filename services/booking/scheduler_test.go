package booking

import (
	"testing"
	"time"

	"trackcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsForSubtractsBookedTimes(t *testing.T) {
	date, day := futureDate(7)
	timeslots := newFakeTimeslotRepo()
	timeslots.offer("t1", day, "10:00", "09:00", "11:00")
	bookings := newFakeBookingRepo()
	require.NoError(t, bookings.Create(&models.Booking{
		ID: "b1", UserID: "u1", TherapistID: "t1",
		Date: date, Time: "10:00", Status: models.BookingConfirmed,
	}))

	svc := NewSlotService(timeslots, bookings)
	open, err := svc.SlotsFor("t1", date)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, open)
}

func TestSlotsForIgnoresCancelledBookings(t *testing.T) {
	date, day := futureDate(7)
	timeslots := newFakeTimeslotRepo()
	timeslots.offer("t1", day, "09:00")
	bookings := newFakeBookingRepo()
	require.NoError(t, bookings.Create(&models.Booking{
		ID: "b1", UserID: "u1", TherapistID: "t1",
		Date: date, Time: "09:00", Status: models.BookingCancelled,
	}))

	svc := NewSlotService(timeslots, bookings)
	open, err := svc.SlotsFor("t1", date)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, open)
}

func TestSlotsForDeduplicatesAndSorts(t *testing.T) {
	date, day := futureDate(7)
	timeslots := newFakeTimeslotRepo()
	timeslots.offer("t1", day, "11:00", "09:30", "11:00", "09:30", "10:00")

	svc := NewSlotService(timeslots, newFakeBookingRepo())
	open, err := svc.SlotsFor("t1", date)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "10:00", "11:00"}, open)
}

func TestSlotsForEmptyDayIsEmptyNotNil(t *testing.T) {
	date, _ := futureDate(7)
	svc := NewSlotService(newFakeTimeslotRepo(), newFakeBookingRepo())
	open, err := svc.SlotsFor("t1", date)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Empty(t, open)
}

func TestSlotsForDropsPassedTimesToday(t *testing.T) {
	orig := timeNow
	defer func() { timeNow = orig }()
	now := time.Date(2026, 8, 28, 11, 10, 0, 0, time.UTC) // a Friday
	timeNow = func() time.Time { return now }

	timeslots := newFakeTimeslotRepo()
	timeslots.offer("t1", "Friday", "09:00", "11:00", "11:30", "15:00")

	svc := NewSlotService(timeslots, newFakeBookingRepo())
	open, err := svc.SlotsFor("t1", "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, []string{"11:30", "15:00"}, open)
}

func TestSlotsForRejectsPastDate(t *testing.T) {
	svc := NewSlotService(newFakeTimeslotRepo(), newFakeBookingRepo())
	_, err := svc.SlotsFor("t1", time.Now().AddDate(0, 0, -1).Format(dateLayout))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
