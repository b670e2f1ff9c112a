package handlers

import (
	"errors"
	"net/http"
	"testing"

	adminSvc "trackcare/services/admin"
	bookingSvc "trackcare/services/booking"
	screeningSvc "trackcare/services/screening"
	userSvc "trackcare/services/user"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &bookingSvc.ValidationError{Field: "time", Reason: "bad"}, http.StatusBadRequest},
		{"credentials", userSvc.ErrInvalidCredentials, http.StatusUnauthorized},
		{"session missing", bookingSvc.ErrSessionNotFound, http.StatusNotFound},
		{"booking missing", bookingSvc.ErrBookingNotFound, http.StatusNotFound},
		{"slot conflict", &bookingSvc.ConflictError{Date: "2026-09-04", Time: "10:00"}, http.StatusConflict},
		{"therapist unavailable", &bookingSvc.UnavailableError{}, http.StatusConflict},
		{"bad session state", &bookingSvc.StateError{State: "SLOTS_LOADING", Reason: "no time selected"}, http.StatusConflict},
		{"duplicate email", userSvc.ErrEmailTaken, http.StatusConflict},
		{"pending application", adminSvc.ErrPendingExists, http.StatusConflict},
		{"model down", screeningSvc.ErrModelUnavailable, http.StatusBadGateway},
		{"wrapped model down", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusFor(tc.err))
		})
	}
}

func TestStatusForWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), bookingSvc.ErrSessionNotFound)
	assert.Equal(t, http.StatusNotFound, statusFor(wrapped))
}
