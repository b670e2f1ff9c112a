package questionnaireRepo

import "trackcare/models"

// QuestionnaireRepository persists screening submissions and verdicts.
type QuestionnaireRepository interface {
	Insert(record *models.QuestionnaireRecord) error
	ListByUser(username string, limit int) ([]models.QuestionnaireRecord, error)
	ListRecent(limit int) ([]models.QuestionnaireRecord, error)
}
