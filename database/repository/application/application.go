package applicationRepo

import "trackcare/models"

// ApplicationRepository persists therapist applications and their document
// references.
type ApplicationRepository interface {
	Create(app *models.TherapistApplication) error
	GetByID(id string) (*models.TherapistApplication, error)
	LatestByApplicant(username string) (*models.TherapistApplication, error)
	ListByStatus(status string) ([]models.TherapistApplication, error)
	UpdateStatus(id, status, decisionNote string) error

	AddDocument(doc *models.ApplicationDocument) error
	DocumentsByApplication(applicationID string) ([]models.ApplicationDocument, error)
}
