package models

import (
	"strings"
	"time"
)

// Weekday names as stored on timeslot records.
var WeekDays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TherapistTimeSlot is one recurring weekly opening: a therapist offers
// "Time" on every "Day".
type TherapistTimeSlot struct {
	ID          string    `bson:"id" json:"id"`
	TherapistID string    `bson:"therapistId" json:"therapistId"`
	Day         string    `bson:"day" json:"day"`   // e.g. "Monday"
	Time        string    `bson:"time" json:"time"` // "HH:MM"
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ParseDay maps any casing of a weekday name ("MONDAY", "monday") to the
// canonical form, or "" when unrecognized.
func ParseDay(s string) string {
	for _, d := range WeekDays {
		if strings.EqualFold(strings.TrimSpace(s), d) {
			return d
		}
	}
	return ""
}

// DayOfDate returns the canonical weekday name for a calendar date.
func DayOfDate(date time.Time) string {
	return WeekDays[int(date.Weekday())]
}
