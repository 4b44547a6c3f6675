package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"joblane-backend/internal/database"
	"joblane-backend/internal/models"
	"joblane-backend/internal/services"
)

type Internships struct {
	coll *mongo.Collection
}

func NewInternships(db *database.DB) *Internships {
	return &Internships{coll: db.Collection("internships")}
}

func (s *Internships) List(ctx context.Context) ([]models.Internship, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}

	internships := []models.Internship{}
	if err := cursor.All(ctx, &internships); err != nil {
		return nil, fmt.Errorf("failed to decode internships: %w", err)
	}
	return internships, nil
}

// SearchByTitle matches job_title against the given text as a
// case-insensitive substring.
func (s *Internships) SearchByTitle(ctx context.Context, title string) ([]models.Internship, error) {
	filter := bson.M{"job_title": primitive.Regex{Pattern: title, Options: "i"}}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search internships: %w", err)
	}

	internships := []models.Internship{}
	if err := cursor.All(ctx, &internships); err != nil {
		return nil, fmt.Errorf("failed to decode internships: %w", err)
	}
	return internships, nil
}

func (s *Internships) Insert(ctx context.Context, internship *models.Internship) (string, error) {
	res, err := s.coll.InsertOne(ctx, internship)
	if err != nil {
		return "", fmt.Errorf("failed to insert internship: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (s *Internships) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, services.ErrInvalidID
	}

	delete(fields, "_id")

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("failed to update internship: %w", err)
	}
	return res.ModifiedCount, nil
}

func (s *Internships) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, services.ErrInvalidID
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete internship: %w", err)
	}
	return res.DeletedCount, nil
}
