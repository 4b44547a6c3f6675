package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	// Stored under "password" in the collection, but always the bcrypt hash.
	// The plaintext is never persisted.
	PasswordHash string `bson:"password" json:"-"`
	Role         Role   `bson:"role" json:"role"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
