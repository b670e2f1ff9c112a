package applicationRepo

import (
	"context"
	"fmt"
	"time"

	"trackcare/database"
	"trackcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoApplicationRepo implements ApplicationRepository using MongoDB.
type MongoApplicationRepo struct {
	apps *mongo.Collection
	docs *mongo.Collection
}

// NewMongoApplicationRepo creates an ApplicationRepository backed by MongoDB.
func NewMongoApplicationRepo() ApplicationRepository {
	repo := &MongoApplicationRepo{
		apps: database.Collection("therapist_applications"),
		docs: database.Collection("application_documents"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoApplicationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	appIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "applicantUsername", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.apps.Indexes().CreateMany(ctx, appIndexes); err != nil {
		return fmt.Errorf("failed to create application indexes: %w", err)
	}

	docIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "applicationId", Value: 1}, {Key: "uploadedAt", Value: 1}}},
	}
	if _, err := r.docs.Indexes().CreateMany(ctx, docIndexes); err != nil {
		return fmt.Errorf("failed to create document indexes: %w", err)
	}
	return nil
}

// Create inserts a new application.
func (r *MongoApplicationRepo) Create(app *models.TherapistApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	app.CreatedAt = time.Now()

	if _, err := r.apps.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetByID retrieves an application, or nil when none exists.
func (r *MongoApplicationRepo) GetByID(id string) (*models.TherapistApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.TherapistApplication
	if err := r.apps.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch application with id %s: %w", id, err)
	}
	return &app, nil
}

// LatestByApplicant returns the applicant's most recent application, or nil.
func (r *MongoApplicationRepo) LatestByApplicant(username string) (*models.TherapistApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var app models.TherapistApplication
	if err := r.apps.FindOne(ctx, bson.M{"applicantUsername": username}, opts).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest application for %s: %w", username, err)
	}
	return &app, nil
}

// ListByStatus returns applications with the given status, newest first.
func (r *MongoApplicationRepo) ListByStatus(status string) ([]models.TherapistApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.apps.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.TherapistApplication
	for cursor.Next(ctx) {
		var app models.TherapistApplication
		if err := cursor.Decode(&app); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// UpdateStatus records the admin's decision.
func (r *MongoApplicationRepo) UpdateStatus(id, status, decisionNote string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":       status,
		"decisionNote": decisionNote,
		"decidedAt":    time.Now(),
	}}

	result, err := r.apps.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update application %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("application with id %s not found", id)
	}
	return nil
}

// AddDocument records a supporting document reference.
func (r *MongoApplicationRepo) AddDocument(doc *models.ApplicationDocument) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc.UploadedAt = time.Now()

	if _, err := r.docs.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to add application document: %w", err)
	}
	return nil
}

// DocumentsByApplication lists documents for one application, oldest first.
func (r *MongoApplicationRepo) DocumentsByApplication(applicationID string) ([]models.ApplicationDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: 1}})
	cursor, err := r.docs.Find(ctx, bson.M{"applicationId": applicationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch application documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.ApplicationDocument
	for cursor.Next(ctx) {
		var d models.ApplicationDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode application document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}
