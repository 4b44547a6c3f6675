package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Job struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	JobTitle    string `bson:"job_title,omitempty" json:"job_title,omitempty"`
	Company     string `bson:"company,omitempty" json:"company,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	ApplyLink   string `bson:"apply_link,omitempty" json:"apply_link,omitempty"`

	PostedAt time.Time `bson:"posted_at,omitempty" json:"posted_at,omitempty"`
}

type Internship struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	JobTitle    string `bson:"job_title,omitempty" json:"job_title,omitempty"`
	Company     string `bson:"company,omitempty" json:"company,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
	Stipend     string `bson:"stipend,omitempty" json:"stipend,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	PostedAt time.Time `bson:"posted_at,omitempty" json:"posted_at,omitempty"`
}
