package models

import "time"

// Account roles.
const (
	RoleUser      = "USER"
	RoleTherapist = "THERAPIST"
	RoleAdmin     = "ADMIN"
)

// User represents an account: a parent by default, promoted to THERAPIST
// when an application is approved.
type User struct {
	ID                string    `bson:"id" json:"id"`
	Username          string    `bson:"username" json:"username"`
	Email             string    `bson:"email" json:"email"`
	PasswordHash      string    `bson:"passwordHash" json:"-"`
	Role              string    `bson:"role" json:"role"`
	FirstName         string    `bson:"firstName" json:"firstName"`
	LastName          string    `bson:"lastName" json:"lastName"`
	PhoneNumber       string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	ProfilePictureURL string    `bson:"profilePictureUrl,omitempty" json:"profilePictureUrl,omitempty"`

	// Therapist-only fields.
	Qualification   string   `bson:"qualification,omitempty" json:"qualification,omitempty"`
	Specialization  string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	PricePerSession float64  `bson:"pricePerSession,omitempty" json:"pricePerSession,omitempty"`
	AvailableDays   []string `bson:"availableDays,omitempty" json:"availableDays,omitempty"`
	Rating          float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewsCount    int      `bson:"reviewsCount,omitempty" json:"reviewsCount,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FullName joins the first and last name for display.
func (u User) FullName() string {
	name := u.FirstName + " " + u.LastName
	if name == " " {
		return u.Username
	}
	return name
}
