package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is one catalog recipe. Meals are inserted manually or imported from
// Spoonacular and never updated afterwards.
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Calories    *float64           `bson:"calories" json:"calories"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
	Tags        []string           `bson:"tags" json:"tags"`
	SourceURL   *string            `bson:"sourceUrl" json:"sourceUrl"`
	ImageURL    *string            `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
