// Package availability collapses the heterogeneous therapist-availability
// snapshots that upstream records carry into a single boolean signal and a
// canonical shape. Ambiguous or malformed payloads resolve to "available"
// so a half-filled record never blocks booking.
package availability

import "trackcare/models"

// Unavailable resolves a snapshot to one boolean via a strict precedence
// chain; the first field that carries a signal wins:
//
//  1. available / isAvailable booleans
//  2. totalSlots / slotCount counters
//  3. availableDays list (present-but-empty means unavailable)
//  4. availability day→times map (no keys means no signal; keys with zero
//     total times means unavailable)
//
// No recognizable signal at all resolves to available. Pure function: the
// snapshot is never mutated.
func Unavailable(t models.TherapistAvailability) bool {
	if t.Available != nil {
		return !*t.Available
	}
	if t.IsAvailable != nil {
		return !*t.IsAvailable
	}
	if t.TotalSlots != nil {
		return *t.TotalSlots == 0
	}
	if t.SlotCount != nil {
		return *t.SlotCount == 0
	}
	if t.AvailableDays != nil {
		return len(t.AvailableDays) == 0
	}
	if t.Availability != nil {
		if len(t.Availability) == 0 {
			return false
		}
		total := 0
		for _, times := range t.Availability {
			total += len(times)
		}
		return total == 0
	}
	return false
}

// Canonical maps any snapshot shape into the one form the rest of the
// system consumes.
func Canonical(t models.TherapistAvailability) models.CanonicalAvailability {
	out := models.CanonicalAvailability{
		Available: !Unavailable(t),
	}

	if t.Availability != nil {
		out.Days = make(map[string][]string, len(t.Availability))
		for day, times := range t.Availability {
			copied := make([]string, len(times))
			copy(copied, times)
			out.Days[day] = copied
			out.TotalSlots += len(times)
		}
		return out
	}

	if t.TotalSlots != nil {
		out.TotalSlots = *t.TotalSlots
	} else if t.SlotCount != nil {
		out.TotalSlots = *t.SlotCount
	}
	if t.AvailableDays != nil {
		out.Days = make(map[string][]string, len(t.AvailableDays))
		for _, day := range t.AvailableDays {
			out.Days[day] = nil
		}
	}
	return out
}

// FromUser derives a snapshot for one of our own therapist records, where
// availableDays is the authoritative field.
func FromUser(u models.User) models.TherapistAvailability {
	days := u.AvailableDays
	if days == nil {
		days = []string{}
	}
	return models.TherapistAvailability{AvailableDays: days}
}
