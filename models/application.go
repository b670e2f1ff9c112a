package models

import "time"

// Therapist application statuses.
const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

// TherapistApplication is a parent's request to be registered as a
// therapist, reviewed by an admin.
type TherapistApplication struct {
	ID                string    `bson:"id" json:"id"`
	ApplicantUsername string    `bson:"applicantUsername" json:"applicantUsername"`
	FullName          string    `bson:"fullName" json:"fullName"`
	Email             string    `bson:"email" json:"email"`
	Phone             string    `bson:"phone" json:"phone"`
	Qualification     string    `bson:"qualification" json:"qualification"`
	LicenseNumber     string    `bson:"licenseNumber,omitempty" json:"licenseNumber,omitempty"`
	YearsExperience   int       `bson:"yearsExperience,omitempty" json:"yearsExperience,omitempty"`
	Specialization    string    `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Workplace         string    `bson:"workplace,omitempty" json:"workplace,omitempty"`
	City              string    `bson:"city,omitempty" json:"city,omitempty"`
	Message           string    `bson:"message,omitempty" json:"message,omitempty"`
	Status            string    `bson:"status" json:"status"`
	DecisionNote      string    `bson:"decisionNote,omitempty" json:"decisionNote,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	DecidedAt         time.Time `bson:"decidedAt,omitempty" json:"decidedAt,omitempty"`
}

// ApplicationDocument is metadata for one supporting document (license,
// certificate). Upload transport is handled elsewhere; only the reference
// is recorded here.
type ApplicationDocument struct {
	ID            string    `bson:"id" json:"id"`
	ApplicationID string    `bson:"applicationId" json:"applicationId"`
	Title         string    `bson:"title" json:"title"`
	FilePath      string    `bson:"filePath" json:"filePath"`
	FileType      string    `bson:"fileType" json:"fileType"`
	UploadedAt    time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// TherapistApplyRequest is the submission payload.
type TherapistApplyRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Qualification   string `json:"qualification" binding:"required"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	YearsExperience int    `json:"yearsExperience,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
	Workplace       string `json:"workplace,omitempty"`
	City            string `json:"city,omitempty"`
	Message         string `json:"message,omitempty"`

	// Document references recorded with the application.
	Documents []ApplicationDocumentRef `json:"documents,omitempty"`
}

// ApplicationDocumentRef pairs a document title with its stored location.
type ApplicationDocumentRef struct {
	Title    string `json:"title"`
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}
