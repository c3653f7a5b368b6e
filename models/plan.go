package models

// MealPlan is one of the fixed subscription offerings. Plans are not
// persisted; the catalog ships with the binary and is served read-only.
type MealPlan struct {
	ID           int64   `json:"id"`
	Tag          string  `json:"tag"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	MealsPerWeek int64   `json:"mealsPerWeek"`
	FreeDelivery bool    `json:"freeDelivery"`
	Price        float64 `json:"price"`
}

// CartItem converts a plan into the cart line it produces when selected.
func (p MealPlan) CartItem() CartItem {
	return CartItem{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		Quantity:     1,
		Tag:          p.Tag,
		Description:  p.Description,
		MealsPerWeek: p.MealsPerWeek,
		FreeDelivery: p.FreeDelivery,
	}
}
