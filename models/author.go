package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is a read-only credits record, there is no mutation path for it.
type Author struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	NetID    string             `bson:"netId" json:"netId"`
	Class    string             `bson:"class" json:"class"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
}
