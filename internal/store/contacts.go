package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"joblane-backend/internal/database"
	"joblane-backend/internal/models"
)

type Contacts struct {
	coll *mongo.Collection
}

func NewContacts(db *database.DB) *Contacts {
	return &Contacts{coll: db.Collection("contactus")}
}

func (s *Contacts) Insert(ctx context.Context, contact *models.Contact) (string, error) {
	res, err := s.coll.InsertOne(ctx, contact)
	if err != nil {
		return "", fmt.Errorf("failed to insert contact: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (s *Contacts) List(ctx context.Context) ([]models.Contact, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
