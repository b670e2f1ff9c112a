package booking

import "errors"

// ErrSessionNotFound covers both an expired booking session and a session
// that does not belong to the requesting user.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrBookingNotFound is returned when a booking id resolves to nothing the
// caller owns.
var ErrBookingNotFound = errors.New("booking not found")

// ValidationError rejects malformed or out-of-policy input (bad date or
// time format, past dates, times outside working hours).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ConflictError signals that the requested slot is already taken.
type ConflictError struct {
	TherapistID string
	Date        string
	Time        string
}

func (e *ConflictError) Error() string {
	return "slot " + e.Date + " " + e.Time + " is already booked"
}

// UnavailableError signals that the therapist is not accepting bookings at
// all, as opposed to a single slot being taken.
type UnavailableError struct {
	TherapistID string
}

func (e *UnavailableError) Error() string {
	return "therapist is not available for booking"
}

// StateError rejects a session operation that does not fit the session's
// current state, e.g. selecting a time before slots have loaded.
type StateError struct {
	State  string
	Reason string
}

func (e *StateError) Error() string {
	return e.Reason + " (state " + e.State + ")"
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsUnavailable reports whether err is an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

// IsState reports whether err is a StateError.
func IsState(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
