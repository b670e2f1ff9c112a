package activityRepo

import "trackcare/models"

// ActivityRepository persists activity attempt results.
type ActivityRepository interface {
	Insert(result *models.ActivityResult) error

	// History returns the user's results most-recent-first. An empty type
	// matches every activity type. limit caps the result count.
	History(username, activityType string, limit int) ([]models.ActivityResult, error)
}
