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

type Users struct {
	coll *mongo.Collection
}

func NewUsers(db *database.DB) *Users {
	return &Users{coll: db.Collection("users")}
}

// FindByEmail does an exact-match lookup. A miss is not an error; it returns
// (nil, nil).
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (s *Users) Insert(ctx context.Context, user *models.User) (string, error) {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		// The unique email index rejects a concurrent duplicate insert.
		if mongo.IsDuplicateKeyError(err) {
			return "", services.ErrUserExists
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = id
	return id.Hex(), nil
}
