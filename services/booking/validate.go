package booking

import (
	"time"

	"trackcare/models"
)

// Working hours: sessions start on the half hour between 09:00 and 17:30,
// so the last session ends at 18:00.
const (
	dayOpen    = 9 * 60
	dayClose   = 18 * 60
	slotStride = 30
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// ValidateTime checks the "HH:MM" format and that the time is a valid
// session start inside working hours. The length check keeps time.Parse from
// accepting unpadded forms like "9:00", which would never match a stored
// slot.
func ValidateTime(t string) error {
	parsed, err := time.Parse(timeLayout, t)
	if len(t) != len(timeLayout) || err != nil {
		return &ValidationError{Field: "time", Reason: "must be in HH:MM format"}
	}
	minutes := parsed.Hour()*60 + parsed.Minute()
	if minutes < dayOpen || minutes >= dayClose {
		return &ValidationError{Field: "time", Reason: "outside working hours (09:00-18:00)"}
	}
	if minutes%slotStride != 0 {
		return &ValidationError{Field: "time", Reason: "sessions start on the half hour"}
	}
	return nil
}

// ValidateDate checks the "YYYY-MM-DD" format and rejects past dates.
func ValidateDate(date string) error {
	parsed, err := time.Parse(dateLayout, date)
	if len(date) != len(dateLayout) || err != nil {
		return &ValidationError{Field: "date", Reason: "must be in YYYY-MM-DD format"}
	}
	now := timeNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return &ValidationError{Field: "date", Reason: "cannot book a past date"}
	}
	return nil
}

// ValidateSlot validates date and time together and rejects slots that have
// already started today.
func ValidateSlot(date, t string) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if err := ValidateTime(t); err != nil {
		return err
	}
	if slotInPast(date, t, timeNow()) {
		return &ValidationError{Field: "time", Reason: "slot has already passed"}
	}
	return nil
}

// WeekdayOf returns the canonical weekday name for a date already known to
// be well-formed.
func WeekdayOf(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return models.DayOfDate(parsed)
}

func slotInPast(date, t string, now time.Time) bool {
	if date != now.Format(dateLayout) {
		return false
	}
	parsed, err := time.Parse(timeLayout, t)
	if err != nil {
		return false
	}
	minutes := parsed.Hour()*60 + parsed.Minute()
	return minutes <= now.Hour()*60+now.Minute()
}
