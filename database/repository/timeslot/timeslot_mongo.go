package timeslotRepo

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

// MongoTimeSlotRepo implements TimeSlotRepository using MongoDB.
type MongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo creates a TimeSlotRepository backed by MongoDB.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	coll := database.Collection("therapist_timeslots")
	repo := &MongoTimeSlotRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTimeSlotRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "therapistId", Value: 1}, {Key: "day", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ReplaceForTherapist clears and reinserts the therapist's weekly schedule.
func (r *MongoTimeSlotRepo) ReplaceForTherapist(therapistID string, slots []models.TherapistTimeSlot) error {
	if err := r.DeleteAllByTherapist(therapistID); err != nil {
		return err
	}
	if len(slots) == 0 {
		return nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(slots))
	now := time.Now()
	for i := range slots {
		slots[i].CreatedAt = now
		docs = append(docs, slots[i])
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert timeslots for therapist %s: %w", therapistID, err)
	}
	return nil
}

// GetByTherapistAndDay returns the therapist's openings for one weekday,
// ordered by time.
func (r *MongoTimeSlotRepo) GetByTherapistAndDay(therapistID, day string) ([]models.TherapistTimeSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"therapistId": therapistID, "day": day}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TherapistTimeSlot
	for cursor.Next(ctx) {
		var s models.TherapistTimeSlot
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode timeslot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// GetAllByTherapist returns every opening for one therapist.
func (r *MongoTimeSlotRepo) GetAllByTherapist(therapistID string) ([]models.TherapistTimeSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"therapistId": therapistID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TherapistTimeSlot
	for cursor.Next(ctx) {
		var s models.TherapistTimeSlot
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode timeslot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// DeleteAllByTherapist removes the therapist's whole schedule.
func (r *MongoTimeSlotRepo) DeleteAllByTherapist(therapistID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"therapistId": therapistID}); err != nil {
		return fmt.Errorf("failed to delete timeslots for therapist %s: %w", therapistID, err)
	}
	return nil
}
