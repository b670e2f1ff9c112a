// Package admin implements the therapist application workflow: submission
// by parents, review and decision by admins.
package admin

import (
	"errors"
	"fmt"
	"time"

	applicationRepo "trackcare/database/repository/application"
	userRepo "trackcare/database/repository/user"
	"trackcare/models"
	"trackcare/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ErrApplicationNotFound is returned for unknown application ids.
var ErrApplicationNotFound = errors.New("application not found")

// ErrPendingExists rejects a second application while one is under review.
var ErrPendingExists = errors.New("an application is already pending review")

// ErrAlreadyDecided rejects decisions on applications that are no longer
// pending.
var ErrAlreadyDecided = errors.New("application already decided")

// ErrAlreadyTherapist rejects applications from approved therapists.
var ErrAlreadyTherapist = errors.New("account is already a therapist")

// DecisionNotifier sends the approval or rejection email.
type DecisionNotifier interface {
	SendApplicationDecision(app *models.TherapistApplication, approved bool) error
}

// Service manages therapist applications.
type Service struct {
	applications applicationRepo.ApplicationRepository
	users        userRepo.UserRepository
	notifier     DecisionNotifier
}

// NewService creates an admin Service. notifier may be nil.
func NewService(a applicationRepo.ApplicationRepository, u userRepo.UserRepository, n DecisionNotifier) *Service {
	return &Service{applications: a, users: u, notifier: n}
}

// Apply submits a therapist application for the signed-in account. One
// pending application per applicant; resubmission is allowed after a
// rejection.
func (s *Service) Apply(username string, req models.TherapistApplyRequest) (*models.TherapistApplication, error) {
	applicant, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load applicant: %w", err)
	}
	if applicant == nil {
		return nil, fmt.Errorf("unknown applicant %q", username)
	}
	if applicant.Role == models.RoleTherapist {
		return nil, ErrAlreadyTherapist
	}

	latest, err := s.applications.LatestByApplicant(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing applications: %w", err)
	}
	if latest != nil && latest.Status == models.ApplicationPending {
		return nil, ErrPendingExists
	}

	app := &models.TherapistApplication{
		ID:                uuid.NewString(),
		ApplicantUsername: username,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Qualification:     req.Qualification,
		LicenseNumber:     req.LicenseNumber,
		YearsExperience:   req.YearsExperience,
		Specialization:    req.Specialization,
		Workplace:         req.Workplace,
		City:              req.City,
		Message:           req.Message,
		Status:            models.ApplicationPending,
		CreatedAt:         time.Now(),
	}
	if err := s.applications.Create(app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	for _, ref := range req.Documents {
		doc := &models.ApplicationDocument{
			ID:            uuid.NewString(),
			ApplicationID: app.ID,
			Title:         ref.Title,
			FilePath:      ref.FilePath,
			FileType:      ref.FileType,
			UploadedAt:    time.Now(),
		}
		if err := s.applications.AddDocument(doc); err != nil {
			return nil, fmt.Errorf("failed to record document: %w", err)
		}
	}
	return app, nil
}

// MyApplication returns the applicant's latest application, or nil.
func (s *Service) MyApplication(username string) (*models.TherapistApplication, error) {
	return s.applications.LatestByApplicant(username)
}

// ListPending returns applications awaiting review.
func (s *Service) ListPending() ([]models.TherapistApplication, error) {
	apps, err := s.applications.ListByStatus(models.ApplicationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	if apps == nil {
		apps = []models.TherapistApplication{}
	}
	return apps, nil
}

// Details returns one application with its document references.
func (s *Service) Details(id string) (*models.TherapistApplication, []models.ApplicationDocument, error) {
	app, err := s.applications.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load application: %w", err)
	}
	if app == nil {
		return nil, nil, ErrApplicationNotFound
	}
	docs, err := s.applications.DocumentsByApplication(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load documents: %w", err)
	}
	return app, docs, nil
}

// Approve promotes the applicant to THERAPIST and copies the professional
// fields from the application onto the account.
func (s *Service) Approve(id, note string) (*models.TherapistApplication, error) {
	app, err := s.pending(id)
	if err != nil {
		return nil, err
	}

	applicant, err := s.users.GetByUsername(app.ApplicantUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to load applicant: %w", err)
	}
	if applicant == nil {
		return nil, fmt.Errorf("applicant %q no longer exists", app.ApplicantUsername)
	}

	if err := s.users.UpdateSetDocument(applicant.ID, bson.M{
		"role":           models.RoleTherapist,
		"qualification":  app.Qualification,
		"specialization": app.Specialization,
	}); err != nil {
		return nil, fmt.Errorf("failed to promote applicant: %w", err)
	}

	if err := s.applications.UpdateStatus(id, models.ApplicationApproved, note); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	app.Status = models.ApplicationApproved
	app.DecisionNote = note
	app.DecidedAt = time.Now()

	s.notify(app, true)
	return app, nil
}

// Reject closes the application without changing the account.
func (s *Service) Reject(id, note string) (*models.TherapistApplication, error) {
	app, err := s.pending(id)
	if err != nil {
		return nil, err
	}

	if err := s.applications.UpdateStatus(id, models.ApplicationRejected, note); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	app.Status = models.ApplicationRejected
	app.DecisionNote = note
	app.DecidedAt = time.Now()

	s.notify(app, false)
	return app, nil
}

func (s *Service) pending(id string) (*models.TherapistApplication, error) {
	app, err := s.applications.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.Status != models.ApplicationPending {
		return nil, ErrAlreadyDecided
	}
	return app, nil
}

func (s *Service) notify(app *models.TherapistApplication, approved bool) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendApplicationDecision(app, approved); err != nil {
		utils.GetLogger().Warn("failed to send decision email",
			zap.String("applicationId", app.ID), zap.Error(err))
	}
}
