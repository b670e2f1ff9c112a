// Package activity records finished activity attempts and serves score
// history for the dashboard.
package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	activityRepo "trackcare/database/repository/activity"
	"trackcare/models"

	"github.com/google/uuid"
)

// History limits. Requests outside the range are clamped, not rejected.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ErrInvalidType rejects save and history requests naming an unknown
// activity type.
var ErrInvalidType = errors.New("unknown activity type")

// ErrInvalidScore rejects scores that are missing or not finite numbers.
var ErrInvalidScore = errors.New("score must be a finite number")

// Service stores and lists activity results.
type Service struct {
	results activityRepo.ActivityRepository
}

// NewService creates an activity Service.
func NewService(r activityRepo.ActivityRepository) *Service {
	return &Service{results: r}
}

// SaveResult validates and persists one attempt. The optional details map
// is stored as opaque JSON alongside the score.
func (s *Service) SaveResult(username string, req models.ActivityResultCreateRequest) (*models.ActivityResult, error) {
	activityType := models.ParseActivityType(req.Type)
	if activityType == "" {
		return nil, ErrInvalidType
	}
	if req.Score == nil || math.IsNaN(*req.Score) || math.IsInf(*req.Score, 0) {
		return nil, ErrInvalidScore
	}

	result := &models.ActivityResult{
		ID:       uuid.NewString(),
		Username: username,
		Type:     activityType,
		Score:    *req.Score,
	}
	if len(req.Details) > 0 {
		raw, err := json.Marshal(req.Details)
		if err != nil {
			return nil, fmt.Errorf("failed to encode details: %w", err)
		}
		result.DetailsJSON = string(raw)
	}

	if err := s.results.Insert(result); err != nil {
		return nil, fmt.Errorf("failed to save activity result: %w", err)
	}
	return result, nil
}

// History lists the user's results most-recent-first. activityType may be
// empty to span all types; unknown types are rejected. limit is clamped to
// 1..MaxHistoryLimit, with zero and negatives falling back to the default.
func (s *Service) History(username, activityType string, limit int) ([]models.ActivityResult, error) {
	if activityType != "" {
		activityType = models.ParseActivityType(activityType)
		if activityType == "" {
			return nil, ErrInvalidType
		}
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	results, err := s.results.History(username, activityType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity history: %w", err)
	}
	if results == nil {
		results = []models.ActivityResult{}
	}
	return results, nil
}

// SaveAndHistory persists a result and returns the refreshed history for
// its type in one round trip. The dashboard refetches after every save so
// percentages reflect the new population; the history read always follows
// the write, never races it.
func (s *Service) SaveAndHistory(username string, req models.ActivityResultCreateRequest, limit int) (*models.ActivityResult, []models.ActivityResult, error) {
	saved, err := s.SaveResult(username, req)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.History(username, saved.Type, limit)
	if err != nil {
		return saved, nil, err
	}
	return saved, history, nil
}
