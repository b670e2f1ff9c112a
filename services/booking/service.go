// Package booking implements the reservation workflow: the Redis-backed
// dialog session, open-slot computation, and the booking records behind
// them.
package booking

import (
	"fmt"
	"time"

	bookingRepo "trackcare/database/repository/booking"
	timeslotRepo "trackcare/database/repository/timeslot"
	userRepo "trackcare/database/repository/user"
	"trackcare/models"
	"trackcare/services/availability"
	"trackcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmationNotifier sends the booking-confirmed email. Failures are
// logged, never surfaced: the booking stands whether or not the email goes
// out.
type ConfirmationNotifier interface {
	SendBookingConfirmation(user, therapist *models.User, b *models.Booking) error
}

// ReminderScheduler enqueues a reminder to be delivered before the session.
type ReminderScheduler interface {
	ScheduleBookingReminder(payload models.ReminderPayload, at time.Time) error
}

// Service manages booking records.
type Service struct {
	bookings  bookingRepo.BookingRepository
	users     userRepo.UserRepository
	timeslots timeslotRepo.TimeSlotRepository
	notifier  ConfirmationNotifier
	reminders ReminderScheduler
}

// NewService creates a booking Service. notifier and reminders may be nil;
// the corresponding side effects are then skipped.
func NewService(b bookingRepo.BookingRepository, u userRepo.UserRepository, ts timeslotRepo.TimeSlotRepository, n ConfirmationNotifier, r ReminderScheduler) *Service {
	return &Service{bookings: b, users: u, timeslots: ts, notifier: n, reminders: r}
}

// Create validates and persists a new booking. The slot must be one the
// therapist actually offers on that weekday and must still be free; a taken
// slot is a ConflictError so callers can distinguish it from bad input.
func (s *Service) Create(userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	if err := ValidateSlot(req.Date, req.Time); err != nil {
		return nil, err
	}

	therapist, err := s.users.GetByID(req.TherapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapist: %w", err)
	}
	if therapist == nil || therapist.Role != models.RoleTherapist {
		return nil, &ValidationError{Field: "therapistId", Reason: "unknown therapist"}
	}
	if availability.Unavailable(availability.FromUser(*therapist)) {
		return nil, &UnavailableError{TherapistID: req.TherapistID}
	}

	if err := s.checkOffered(req.TherapistID, req.Date, req.Time); err != nil {
		return nil, err
	}

	taken, err := s.bookings.ExistsAt(req.TherapistID, req.Date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken {
		return nil, &ConflictError{TherapistID: req.TherapistID, Date: req.Date, Time: req.Time}
	}

	now := timeNow()
	b := &models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		TherapistID: req.TherapistID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.BookingConfirmed,
		PaymentRef:  req.PaymentRef,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.bookings.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterConfirm(b, therapist)
	return b, nil
}

// Reschedule moves a booking the caller owns to a new slot. Keeping the
// current slot is allowed, so resubmitting the same date and time is not a
// conflict.
func (s *Service) Reschedule(userID, bookingID string, req models.RescheduleBookingRequest) (*models.Booking, error) {
	b, err := s.owned(userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingCancelled {
		return nil, &StateError{State: b.Status, Reason: "cannot reschedule a cancelled booking"}
	}
	if err := ValidateSlot(req.Date, req.Time); err != nil {
		return nil, err
	}
	if err := s.checkOffered(b.TherapistID, req.Date, req.Time); err != nil {
		return nil, err
	}

	sameSlot := b.Date == req.Date && b.Time == req.Time
	if !sameSlot {
		taken, err := s.bookings.ExistsAt(b.TherapistID, req.Date, req.Time)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot: %w", err)
		}
		if taken {
			return nil, &ConflictError{TherapistID: b.TherapistID, Date: req.Date, Time: req.Time}
		}
	}

	b.Date = req.Date
	b.Time = req.Time
	b.UpdatedAt = timeNow()
	if err := s.bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return b, nil
}

// Cancel marks a booking cancelled. Cancelling twice is a no-op.
func (s *Service) Cancel(userID, bookingID string) error {
	b, err := s.owned(userID, bookingID)
	if err != nil {
		return err
	}
	if b.Status == models.BookingCancelled {
		return nil
	}

	b.Status = models.BookingCancelled
	b.UpdatedAt = timeNow()
	if err := s.bookings.Update(b); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

// MyBookings lists the caller's bookings, newest first, with therapist
// display fields attached.
func (s *Service) MyBookings(userID string) ([]models.BookingResponse, error) {
	bookings, err := s.bookings.AllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	therapists := make(map[string]*models.User)
	out := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp := models.BookingResponse{
			ID:          b.ID,
			Date:        b.Date,
			Time:        b.Time,
			Status:      b.Status,
			TherapistID: b.TherapistID,
		}

		therapist, ok := therapists[b.TherapistID]
		if !ok {
			therapist, err = s.users.GetByID(b.TherapistID)
			if err != nil {
				return nil, fmt.Errorf("failed to load therapist: %w", err)
			}
			therapists[b.TherapistID] = therapist
		}
		if therapist != nil {
			resp.TherapistName = therapist.FullName()
			resp.TherapistEmail = therapist.Email
			resp.TherapistPhone = therapist.PhoneNumber
			resp.TherapistPictureURL = therapist.ProfilePictureURL
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *Service) owned(userID, bookingID string) (*models.Booking, error) {
	b, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil || b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *Service) checkOffered(therapistID, date, t string) error {
	day := WeekdayOf(date)
	weekly, err := s.timeslots.GetByTherapistAndDay(therapistID, day)
	if err != nil {
		return fmt.Errorf("failed to load weekly slots: %w", err)
	}
	for _, slot := range weekly {
		if slot.Time == t {
			return nil
		}
	}
	return &ValidationError{Field: "time", Reason: "therapist does not offer this slot on " + day}
}

func (s *Service) afterConfirm(b *models.Booking, therapist *models.User) {
	logger := utils.GetLogger()

	user, err := s.users.GetByID(b.UserID)
	if err != nil || user == nil {
		logger.Warn("failed to load user for booking notifications",
			zap.String("bookingId", b.ID), zap.Error(err))
		return
	}

	if s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(user, therapist, b); err != nil {
			logger.Warn("failed to send booking confirmation",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	if s.reminders != nil {
		if at, ok := reminderTime(b); ok {
			payload := models.ReminderPayload{
				BookingID:     b.ID,
				Email:         user.Email,
				Name:          user.FullName(),
				TherapistName: therapist.FullName(),
				Date:          b.Date,
				Time:          b.Time,
			}
			if err := s.reminders.ScheduleBookingReminder(payload, at); err != nil {
				logger.Warn("failed to schedule booking reminder",
					zap.String("bookingId", b.ID), zap.Error(err))
			}
		}
	}
}

// reminderTime is 24 hours before the session, or not at all when the
// session is sooner than that.
func reminderTime(b *models.Booking) (time.Time, bool) {
	start, err := time.Parse(dateLayout+" "+timeLayout, b.Date+" "+b.Time)
	if err != nil {
		return time.Time{}, false
	}
	at := start.Add(-24 * time.Hour)
	if at.Before(timeNow()) {
		return time.Time{}, false
	}
	return at, true
}
