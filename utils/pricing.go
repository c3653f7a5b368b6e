package utils

import (
	"math"

	"github.com/lukeklipping/NourishBox/models"
)

// TaxRate is the flat 10% applied to every order.
const TaxRate = 0.10

// Totals is the derived money breakdown for a cart. Amounts are rounded to
// cents. Every screen that shows money (cart, payment, summary) gets its
// numbers from CalculateTotals, nothing recomputes the formula on its own.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineTotal is price times quantity for one cart entry, quantity defaulting
// to 1 where absent.
func LineTotal(item models.CartItem) float64 {
	return Round2(item.Price * float64(item.Qty()))
}

func CalculateTotals(items []models.CartItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Qty())
	}
	subtotal = Round2(subtotal)
	tax := Round2(subtotal * TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    Round2(subtotal + tax),
	}
}
