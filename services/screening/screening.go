package screening

import (
	"errors"
	"fmt"

	questionnaireRepo "trackcare/database/repository/questionnaire"
	"trackcare/models"

	"github.com/google/uuid"
)

// ErrNoFeatures rejects submissions with an empty feature set.
var ErrNoFeatures = errors.New("questionnaire has no features")

// Service runs screenings and keeps their history.
type Service struct {
	model   ModelClient
	records questionnaireRepo.QuestionnaireRepository
}

// NewService creates a screening Service.
func NewService(model ModelClient, records questionnaireRepo.QuestionnaireRepository) *Service {
	return &Service{model: model, records: records}
}

// Submit sends the questionnaire to the model and stores the verdict with
// the cleaned feature set.
func (s *Service) Submit(username string, req models.ScreeningRequest) (*models.QuestionnaireRecord, error) {
	features := StripLeakage(req.Features)
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}

	prediction, err := s.model.Predict(features)
	if err != nil {
		return nil, err
	}

	record := &models.QuestionnaireRecord{
		ID:          uuid.NewString(),
		Username:    username,
		ChildName:   req.ChildName,
		Features:    features,
		RiskLabel:   prediction.Label,
		Probability: prediction.Probability,
	}
	if err := s.records.Insert(record); err != nil {
		return nil, fmt.Errorf("failed to store screening record: %w", err)
	}
	return record, nil
}

// History lists the user's screening records, newest first.
func (s *Service) History(username string, limit int) ([]models.QuestionnaireRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	records, err := s.records.ListByUser(username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load screening history: %w", err)
	}
	if records == nil {
		records = []models.QuestionnaireRecord{}
	}
	return records, nil
}

// Recent lists the latest screening records across all users, newest first.
func (s *Service) Recent(limit int) ([]models.QuestionnaireRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	records, err := s.records.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent screenings: %w", err)
	}
	if records == nil {
		records = []models.QuestionnaireRecord{}
	}
	return records, nil
}
