package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukeklipping/NourishBox/models"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.CartItem
		subtotal float64
		tax      float64
		total    float64
	}{
		{
			name:  "empty cart",
			items: nil,
		},
		{
			name: "single plan twice",
			items: []models.CartItem{
				{Title: "Veggie Delight", Price: 100, Quantity: 2},
			},
			subtotal: 200.00,
			tax:      20.00,
			total:    220.00,
		},
		{
			name: "mixed quantities",
			items: []models.CartItem{
				{Title: "High Protein Power", Price: 110, Quantity: 1},
				{Title: "Seafood Fresh", Price: 70, Quantity: 3},
			},
			subtotal: 320.00,
			tax:      32.00,
			total:    352.00,
		},
		{
			name: "missing quantity counts as one",
			items: []models.CartItem{
				{Title: "Balanced Boost", Price: 120},
			},
			subtotal: 120.00,
			tax:      12.00,
			total:    132.00,
		},
		{
			name: "fractional prices round to cents",
			items: []models.CartItem{
				{Title: "Snack", Price: 9.99, Quantity: 3},
			},
			subtotal: 29.97,
			tax:      3.00,
			total:    32.97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.items)
			assert.Equal(t, tt.subtotal, got.Subtotal)
			assert.Equal(t, tt.tax, got.Tax)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}

func TestCalculateTotalsTaxIsTenPercent(t *testing.T) {
	items := []models.CartItem{
		{Title: "A", Price: 13.37, Quantity: 2},
		{Title: "B", Price: 0.01, Quantity: 7},
		{Title: "C", Price: 55, Quantity: 1},
	}
	got := CalculateTotals(items)
	assert.Equal(t, Round2(got.Subtotal*(1+TaxRate)), got.Total)
	assert.Equal(t, Round2(got.Subtotal*TaxRate), got.Tax)
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 29.97, LineTotal(models.CartItem{Price: 9.99, Quantity: 3}))
	assert.Equal(t, 9.99, LineTotal(models.CartItem{Price: 9.99}))
	assert.Equal(t, 9.99, LineTotal(models.CartItem{Price: 9.99, Quantity: -2}))
}
