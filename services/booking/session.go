package booking

import (
	"context"
	"encoding/json"
	"fmt"

	userRepo "trackcare/database/repository/user"
	"trackcare/models"
	"trackcare/services/availability"
	"trackcare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService drives the booking dialog workflow. One session tracks a
// user's in-progress draft from picking a therapist to confirming a time;
// the draft lives in Redis under a short TTL, so an abandoned dialog simply
// expires.
//
// Slot queries are decoupled from date selection: SelectDate marks the
// session loading and returns a generation number, and ApplySlots attaches
// a query result only if its generation still matches. A result from a
// date the user has already navigated away from is discarded, so the last
// selected date always wins regardless of response order.
type SessionService struct {
	cache    *redis.Client
	slots    SlotSource
	users    userRepo.UserRepository
	bookings *Service
}

// NewSessionService creates a SessionService.
func NewSessionService(cache *redis.Client, slots SlotSource, users userRepo.UserRepository, bookings *Service) *SessionService {
	return &SessionService{cache: cache, slots: slots, users: users, bookings: bookings}
}

// Open starts a booking session for a therapist. Therapists that are not
// accepting bookings are rejected here, before any dialog state exists.
func (s *SessionService) Open(ctx context.Context, userID, therapistID string) (*models.BookingSession, error) {
	therapist, err := s.users.GetByID(therapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapist: %w", err)
	}
	if therapist == nil || therapist.Role != models.RoleTherapist {
		return nil, &ValidationError{Field: "therapistId", Reason: "unknown therapist"}
	}
	if availability.Unavailable(availability.FromUser(*therapist)) {
		return nil, &UnavailableError{TherapistID: therapistID}
	}

	now := timeNow()
	session := &models.BookingSession{
		SessionID:     uuid.NewString(),
		UserID:        userID,
		TherapistID:   therapistID,
		TherapistName: therapist.FullName(),
		State:         models.SessionTherapistSelected,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads the caller's session.
func (s *SessionService) Get(ctx context.Context, userID, sessionID string) (*models.BookingSession, error) {
	return s.load(ctx, userID, sessionID)
}

// SelectDate records the chosen date and marks the session loading. The
// returned generation must accompany the eventual ApplySlots call. Any
// previously loaded slots and selected time are dropped, since they belong
// to the old date.
func (s *SessionService) SelectDate(ctx context.Context, userID, sessionID, date string) (*models.BookingSession, int64, error) {
	if err := ValidateDate(date); err != nil {
		return nil, 0, err
	}
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, 0, err
	}

	session.Date = date
	session.SlotGeneration++
	session.Slots = nil
	session.SlotsLoaded = false
	session.SelectedTime = ""
	session.State = models.SessionSlotsLoading
	if err := s.save(ctx, session); err != nil {
		return nil, 0, err
	}
	return session, session.SlotGeneration, nil
}

// ApplySlots attaches a slot-query result to the session. Results whose
// generation no longer matches the session's are stale and ignored; applied
// reports whether the result took effect.
func (s *SessionService) ApplySlots(ctx context.Context, userID, sessionID string, generation int64, slots []string) (*models.BookingSession, bool, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, false, err
	}
	if session.SlotGeneration != generation || session.State != models.SessionSlotsLoading {
		return session, false, nil
	}

	if slots == nil {
		slots = []string{}
	}
	session.Slots = slots
	session.SlotsLoaded = true
	session.State = models.SessionSlotsReady
	if err := s.save(ctx, session); err != nil {
		return nil, false, err
	}
	return session, true, nil
}

// LoadSlots runs SelectDate and the slot query in one call. Handlers use
// this; the split halves exist so interleaved date changes stay testable.
// When the slot query fails the session keeps its date but drops out of the
// loading state, so the caller can retry by selecting a date again.
func (s *SessionService) LoadSlots(ctx context.Context, userID, sessionID, date string) (*models.BookingSession, error) {
	session, generation, err := s.SelectDate(ctx, userID, sessionID, date)
	if err != nil {
		return nil, err
	}
	open, err := s.slots.SlotsFor(session.TherapistID, date)
	if err != nil {
		session.State = models.SessionDateSelected
		if saveErr := s.save(ctx, session); saveErr != nil {
			utils.GetLogger().Warn("failed to store session after slot query failure",
				zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to load open slots: %w", err)
	}
	session, _, err = s.ApplySlots(ctx, userID, sessionID, generation, open)
	return session, err
}

// SelectTime picks a start time from the loaded slot set.
func (s *SessionService) SelectTime(ctx context.Context, userID, sessionID, t string) (*models.BookingSession, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.SlotsLoaded {
		return nil, &StateError{State: session.State, Reason: "slots not loaded yet"}
	}
	if !session.HasSlot(t) {
		return nil, &ValidationError{Field: "time", Reason: "not an open slot for this date"}
	}

	session.SelectedTime = t
	session.State = models.SessionTimeSelected
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm turns the draft into a booking. The slot is re-validated against
// current data at submit time, since another user may have taken it while
// the dialog was open; on conflict the session drops back to a refreshed
// slot list and the conflict is reported.
func (s *SessionService) Confirm(ctx context.Context, userID, sessionID, paymentRef string) (*models.Booking, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionTimeSelected || session.SelectedTime == "" {
		return nil, &StateError{State: session.State, Reason: "no time selected"}
	}

	booked, err := s.bookings.Create(userID, models.CreateBookingRequest{
		TherapistID: session.TherapistID,
		Date:        session.Date,
		Time:        session.SelectedTime,
		PaymentRef:  paymentRef,
	})
	if err != nil {
		if IsConflict(err) {
			if refreshErr := s.refreshAfterConflict(ctx, session); refreshErr != nil {
				utils.GetLogger().Warn("failed to refresh session after conflict",
					zap.String("sessionId", sessionID), zap.Error(refreshErr))
			}
		}
		return nil, err
	}

	if err := s.Close(ctx, userID, sessionID); err != nil {
		utils.GetLogger().Warn("failed to close session after confirm",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return booked, nil
}

// Close ends the dialog. Closing an already-expired session is a no-op.
func (s *SessionService) Close(ctx context.Context, userID, sessionID string) error {
	session, err := s.load(ctx, userID, sessionID)
	if err == ErrSessionNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.cache.Del(ctx, sessionKey(session.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *SessionService) refreshAfterConflict(ctx context.Context, session *models.BookingSession) error {
	open, err := s.slots.SlotsFor(session.TherapistID, session.Date)
	if err != nil {
		return err
	}
	session.SlotGeneration++
	session.Slots = open
	session.SlotsLoaded = true
	session.SelectedTime = ""
	session.State = models.SessionSlotsReady
	return s.save(ctx, session)
}

func (s *SessionService) load(ctx context.Context, userID, sessionID string) (*models.BookingSession, error) {
	raw, err := s.cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode booking session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionService) save(ctx context.Context, session *models.BookingSession) error {
	session.UpdatedAt = timeNow()
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode booking session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKey(session.SessionID), raw, utils.BookingSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return utils.BookingSessionPrefix + sessionID
}
