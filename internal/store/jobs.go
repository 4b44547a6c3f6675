package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"joblane-backend/internal/database"
	"joblane-backend/internal/models"
	"joblane-backend/internal/services"
)

type Jobs struct {
	coll *mongo.Collection
}

func NewJobs(db *database.DB) *Jobs {
	return &Jobs{coll: db.Collection("jobs")}
}

func (s *Jobs) List(ctx context.Context) ([]models.Job, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return jobs, nil
}

func (s *Jobs) GetByID(ctx context.Context, id string) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	var job models.Job
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (s *Jobs) Insert(ctx context.Context, job *models.Job) (string, error) {
	res, err := s.coll.InsertOne(ctx, job)
	if err != nil {
		return "", fmt.Errorf("failed to insert job: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (s *Jobs) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, services.ErrInvalidID
	}

	// The id is immutable.
	delete(fields, "_id")

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("failed to update job: %w", err)
	}
	return res.ModifiedCount, nil
}

func (s *Jobs) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, services.ErrInvalidID
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete job: %w", err)
	}
	return res.DeletedCount, nil
}
