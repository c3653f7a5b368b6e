package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one account document in the users collection. The cart lives
// embedded on the user and is never addressable on its own. CartSeq is the
// counter cart item ids are drawn from; it only ever moves forward.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Cart         []CartItem         `bson:"cart" json:"cart"`
	CartSeq      int64              `bson:"cartSeq" json:"-"`
}
