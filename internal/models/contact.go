package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Contact struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Message string `bson:"message" json:"message"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
