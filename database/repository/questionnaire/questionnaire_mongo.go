package questionnaireRepo

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

// MongoQuestionnaireRepo implements QuestionnaireRepository using MongoDB.
type MongoQuestionnaireRepo struct {
	coll *mongo.Collection
}

// NewMongoQuestionnaireRepo creates a QuestionnaireRepository backed by MongoDB.
func NewMongoQuestionnaireRepo() QuestionnaireRepository {
	coll := database.Collection("questionnaire_records")
	repo := &MongoQuestionnaireRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoQuestionnaireRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores one screening record.
func (r *MongoQuestionnaireRepo) Insert(record *models.QuestionnaireRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert questionnaire record: %w", err)
	}
	return nil
}

// ListByUser returns the user's records, newest first.
func (r *MongoQuestionnaireRepo) ListByUser(username string, limit int) ([]models.QuestionnaireRecord, error) {
	return r.findMany(bson.M{"username": username}, limit)
}

// ListRecent returns the most recent records across users.
func (r *MongoQuestionnaireRepo) ListRecent(limit int) ([]models.QuestionnaireRecord, error) {
	return r.findMany(bson.M{}, limit)
}

func (r *MongoQuestionnaireRepo) findMany(filter bson.M, limit int) ([]models.QuestionnaireRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questionnaire records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.QuestionnaireRecord
	for cursor.Next(ctx) {
		var rec models.QuestionnaireRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode questionnaire record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
