package activityRepo

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

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo creates an ActivityRepository backed by MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	coll := database.Collection("activity_results")
	repo := &MongoActivityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoActivityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores one result document.
func (r *MongoActivityRepo) Insert(result *models.ActivityResult) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("failed to insert activity result: %w", err)
	}
	return nil
}

// History returns the user's results most-recent-first.
func (r *MongoActivityRepo) History(username, activityType string, limit int) ([]models.ActivityResult, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"username": username}
	if activityType != "" {
		filter["type"] = activityType
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity history: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.ActivityResult
	for cursor.Next(ctx) {
		var res models.ActivityResult
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode activity result: %w", err)
		}
		results = append(results, res)
	}
	return results, nil
}
