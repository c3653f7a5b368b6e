package models

// CartItem is one line entry in a user's cart: a denormalized snapshot of
// the plan or meal that was added. Title is the merge key, so a cart holds
// at most one entry per distinct title. ID is a per-cart numeric key
// assigned at add time when the payload does not already carry one; the
// per-item update and remove endpoints address items by it.
type CartItem struct {
	ID           int64   `bson:"id" json:"id"`
	Title        string  `bson:"title" json:"title"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int64   `bson:"quantity" json:"quantity"`
	Tag          string  `bson:"tag,omitempty" json:"tag,omitempty"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
	MealsPerWeek int64   `bson:"mealsPerWeek,omitempty" json:"mealsPerWeek,omitempty"`
	FreeDelivery bool    `bson:"freeDelivery,omitempty" json:"freeDelivery,omitempty"`
}

// Qty returns the item quantity, defaulting to 1 where the stored document
// predates the quantity field.
func (i CartItem) Qty() int64 {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}
