package models

import (
	"bytes"
	"encoding/json"
)

// TherapistAvailability is the heterogeneous availability snapshot as it
// arrives from upstream records. Older records express availability five
// different ways; all of them decode into this one value at the boundary so
// nothing past it has to care which shape was on the wire.
//
// nil means "field absent"; an allocated empty slice or map means "field
// present and empty", and the two are semantically different (see the
// unavailability predicate).
type TherapistAvailability struct {
	Available     *bool               `json:"available,omitempty"`
	IsAvailable   *bool               `json:"isAvailable,omitempty"`
	TotalSlots    *int                `json:"totalSlots,omitempty"`
	SlotCount     *int                `json:"slotCount,omitempty"`
	AvailableDays []string            `json:"availableDays,omitempty"`
	Availability  map[string][]string `json:"availability,omitempty"`
}

// UnmarshalJSON decodes the snapshot tolerantly: wrong-typed fields are
// dropped rather than failing the whole payload, so a malformed record
// degrades to "no signal" instead of an error.
func (t *TherapistAvailability) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = TherapistAvailability{}

	if v, ok := raw["available"]; ok {
		var b bool
		if json.Unmarshal(v, &b) == nil {
			t.Available = &b
		}
	}
	if v, ok := raw["isAvailable"]; ok {
		var b bool
		if json.Unmarshal(v, &b) == nil {
			t.IsAvailable = &b
		}
	}
	if v, ok := raw["totalSlots"]; ok {
		var n int
		if json.Unmarshal(v, &n) == nil {
			t.TotalSlots = &n
		}
	}
	if v, ok := raw["slotCount"]; ok {
		var n int
		if json.Unmarshal(v, &n) == nil {
			t.SlotCount = &n
		}
	}
	if v, ok := raw["availableDays"]; ok {
		var days []string
		if json.Unmarshal(v, &days) == nil {
			if days == nil {
				days = []string{}
			}
			t.AvailableDays = days
		}
	}
	if v, ok := raw["availability"]; ok && !startsWithBracket(v) {
		var m map[string][]string
		if json.Unmarshal(v, &m) == nil && m != nil {
			t.Availability = m
		}
	}

	return nil
}

// startsWithBracket reports whether the raw JSON value is an array. Some
// legacy records send "availability" as an array; the day→times map rules
// only apply to objects.
func startsWithBracket(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// CanonicalAvailability is the single shape the rest of the system sees.
type CanonicalAvailability struct {
	Available  bool                `json:"available"`
	Days       map[string][]string `json:"days,omitempty"`
	TotalSlots int                 `json:"totalSlots"`
}
