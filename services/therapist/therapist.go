// Package therapist serves the public therapist directory and the
// therapist's own settings.
package therapist

import (
	"errors"
	"fmt"
	"sort"

	timeslotRepo "trackcare/database/repository/timeslot"
	userRepo "trackcare/database/repository/user"
	"trackcare/models"
	"trackcare/services/availability"
	bookingSvc "trackcare/services/booking"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned for ids that do not resolve to a therapist.
var ErrNotFound = errors.New("therapist not found")

// ErrNotTherapist rejects settings updates from accounts that have not been
// approved as therapists.
var ErrNotTherapist = errors.New("account is not a therapist")

// Service reads and updates therapist records.
type Service struct {
	users     userRepo.UserRepository
	timeslots timeslotRepo.TimeSlotRepository
}

// NewService creates a therapist Service.
func NewService(u userRepo.UserRepository, ts timeslotRepo.TimeSlotRepository) *Service {
	return &Service{users: u, timeslots: ts}
}

// ListCards returns directory cards for every therapist, ordered by surname
// then first name.
func (s *Service) ListCards() ([]models.TherapistCard, error) {
	therapists, err := s.users.GetAllByRole(models.RoleTherapist)
	if err != nil {
		return nil, fmt.Errorf("failed to list therapists: %w", err)
	}

	sort.Slice(therapists, func(i, j int) bool {
		if therapists[i].LastName != therapists[j].LastName {
			return therapists[i].LastName < therapists[j].LastName
		}
		return therapists[i].FirstName < therapists[j].FirstName
	})

	cards := make([]models.TherapistCard, 0, len(therapists))
	for _, t := range therapists {
		cards = append(cards, card(t))
	}
	return cards, nil
}

// GetProfile returns the detail view with the canonical availability built
// from the therapist's stored weekly schedule.
func (s *Service) GetProfile(therapistID string) (*models.TherapistProfile, error) {
	t, err := s.therapist(therapistID)
	if err != nil {
		return nil, err
	}

	slots, err := s.timeslots.GetAllByTherapist(therapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly slots: %w", err)
	}

	return &models.TherapistProfile{
		TherapistCard: card(*t),
		Availability:  availability.Canonical(snapshotFromSlots(*t, slots)),
	}, nil
}

// UpdateSettings replaces the therapist's price and weekly schedule. The
// availability map is normalized first: day names canonicalized, times
// validated against working hours, duplicates dropped, times sorted. A day
// whose list ends up empty offers nothing; a therapist whose whole map ends
// up empty becomes unavailable in the directory.
func (s *Service) UpdateSettings(therapistID string, req models.UpdateTherapistSettingsRequest) (*models.TherapistProfile, error) {
	t, err := s.therapist(therapistID)
	if err != nil {
		return nil, err
	}
	if req.PricePerSession < 0 {
		return nil, fmt.Errorf("pricePerSession cannot be negative")
	}

	normalized := NormalizeAvailability(req.Availability)

	slots := make([]models.TherapistTimeSlot, 0)
	days := make([]string, 0, len(normalized))
	for _, day := range models.WeekDays {
		times, ok := normalized[day]
		if !ok || len(times) == 0 {
			continue
		}
		days = append(days, day)
		for _, tm := range times {
			slots = append(slots, models.TherapistTimeSlot{
				ID:          uuid.NewString(),
				TherapistID: therapistID,
				Day:         day,
				Time:        tm,
			})
		}
	}

	if err := s.timeslots.ReplaceForTherapist(therapistID, slots); err != nil {
		return nil, fmt.Errorf("failed to replace weekly slots: %w", err)
	}
	if err := s.users.UpdateSetDocument(therapistID, bson.M{
		"pricePerSession": req.PricePerSession,
		"availableDays":   days,
	}); err != nil {
		return nil, fmt.Errorf("failed to update therapist: %w", err)
	}

	t.PricePerSession = req.PricePerSession
	t.AvailableDays = days
	return &models.TherapistProfile{
		TherapistCard: card(*t),
		Availability:  availability.Canonical(models.TherapistAvailability{Availability: normalized}),
	}, nil
}

// NormalizeAvailability canonicalizes a raw day→times map: unknown day
// names and malformed times are dropped, duplicates removed, times sorted.
// Days mapped to empty lists are kept as empty, since "listed but no times"
// is an explicit statement of unavailability for that day.
func NormalizeAvailability(raw map[string][]string) map[string][]string {
	normalized := make(map[string][]string, len(raw))
	for rawDay, rawTimes := range raw {
		day := models.ParseDay(rawDay)
		if day == "" {
			continue
		}

		seen := make(map[string]bool, len(rawTimes))
		times := make([]string, 0, len(rawTimes))
		for _, tm := range rawTimes {
			if bookingSvc.ValidateTime(tm) != nil || seen[tm] {
				continue
			}
			seen[tm] = true
			times = append(times, tm)
		}
		sort.Strings(times)

		// A later alias of the same day ("monday" after "Monday") merges.
		if existing, ok := normalized[day]; ok {
			times = mergeSorted(existing, times)
		}
		normalized[day] = times
	}
	return normalized
}

func mergeSorted(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, t := range append(append([]string{}, a...), b...) {
		if !seen[t] {
			seen[t] = true
			merged = append(merged, t)
		}
	}
	sort.Strings(merged)
	return merged
}

func (s *Service) therapist(id string) (*models.User, error) {
	t, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapist: %w", err)
	}
	if t == nil {
		return nil, ErrNotFound
	}
	if t.Role != models.RoleTherapist {
		return nil, ErrNotTherapist
	}
	return t, nil
}

func card(t models.User) models.TherapistCard {
	return models.TherapistCard{
		ID:                t.ID,
		Name:              t.FullName(),
		Qualification:     t.Qualification,
		Specialization:    t.Specialization,
		PricePerSession:   t.PricePerSession,
		ProfilePictureURL: t.ProfilePictureURL,
		Rating:            t.Rating,
		ReviewsCount:      t.ReviewsCount,
	}
}

// snapshotFromSlots prefers the stored weekly schedule; a therapist with no
// stored slots falls back to the availableDays field on the account.
func snapshotFromSlots(t models.User, slots []models.TherapistTimeSlot) models.TherapistAvailability {
	if len(slots) == 0 {
		return availability.FromUser(t)
	}
	byDay := make(map[string][]string)
	for _, s := range slots {
		byDay[s.Day] = append(byDay[s.Day], s.Time)
	}
	for day := range byDay {
		sort.Strings(byDay[day])
	}
	return models.TherapistAvailability{Availability: byDay}
}
