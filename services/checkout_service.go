package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/repositories"
	"github.com/lukeklipping/NourishBox/utils"
)

// CheckoutService backs the cart, payment and summary screens. All three
// show the same derived money figures, computed once in utils.CalculateTotals.
type CheckoutService struct {
	users repositories.UserRepository
}

func NewCheckoutService(users repositories.UserRepository) *CheckoutService {
	return &CheckoutService{users: users}
}

// CartLine is one cart entry with its derived line total.
type CartLine struct {
	models.CartItem
	LineTotal float64 `json:"lineTotal"`
}

type CartSummary struct {
	Items []CartLine `json:"items"`
	utils.Totals
}

// Customer is the buyer details echoed on the order summary. Card fields
// never appear here.
type Customer struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Address utils.Address `json:"address"`
}

type OrderSummary struct {
	Customer Customer   `json:"customer"`
	Items    []CartLine `json:"items"`
	utils.Totals
	PlacedAt time.Time `json:"placedAt"`
}

func buildLines(cart []models.CartItem) []CartLine {
	lines := make([]CartLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, CartLine{CartItem: item, LineTotal: utils.LineTotal(item)})
	}
	return lines
}

// Summary is the cart screen: every item with its line total plus the
// subtotal, tax and total.
func (s *CheckoutService) Summary(ctx context.Context, userID primitive.ObjectID) (*CartSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return &CartSummary{
		Items:  buildLines(user.Cart),
		Totals: utils.CalculateTotals(user.Cart),
	}, nil
}

// Checkout turns the current cart into an order summary and clears the
// cart. Payment details are format-validated by the controller before this
// is called; no payment network is ever contacted.
func (s *CheckoutService) Checkout(ctx context.Context, userID primitive.ObjectID, info utils.PaymentInfo) (*OrderSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if len(user.Cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	summary := &OrderSummary{
		Customer: Customer{Name: info.Name, Email: info.Email, Address: info.Address},
		Items:    buildLines(user.Cart),
		Totals:   utils.CalculateTotals(user.Cart),
		PlacedAt: time.Now(),
	}

	if _, err := s.users.ClearCart(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear cart after checkout: %w", err)
	}
	return summary, nil
}
