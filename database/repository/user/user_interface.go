package userRepo

import (
	"trackcare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error

	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAllByRole(role string) ([]models.User, error)
}
