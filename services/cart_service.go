package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/repositories"
)

// CartService owns the cart embedded on the user record. All mutations go
// through single conditional store updates, so two near-simultaneous
// requests against the same cart cannot drop an increment or a removal.
type CartService struct {
	users repositories.UserRepository
}

func NewCartService(users repositories.UserRepository) *CartService {
	return &CartService{users: users}
}

// Get returns the user's cart, empty rather than nil when no items exist.
func (s *CartService) Get(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.Cart == nil {
		return []models.CartItem{}, nil
	}
	return user.Cart, nil
}

// AddItem merges an item into the cart by title: an existing entry gets its
// quantity bumped by one, a new title is appended with quantity 1. New
// entries need a numeric id so the per-item update and remove endpoints
// work for every entry, whichever screen added it. An incoming id is kept
// when it is free; anything else is drawn from the user's id counter, which
// the push also ratchets past every kept id, so two concurrent adds can
// never end up sharing an id.
func (s *CartService) AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (*models.User, error) {
	if item.Title == "" || item.Price <= 0 {
		return nil, fmt.Errorf("%w: cart item needs a title and a price", ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	bumped, err := s.users.IncrementCartItem(ctx, userID, item.Title)
	if err != nil {
		return nil, fmt.Errorf("increment cart item: %w", err)
	}
	if !bumped {
		item.Quantity = 1
		if item.ID <= 0 {
			if item.ID, err = s.nextItemID(ctx, userID); err != nil {
				return nil, err
			}
		}
		pushed, err := s.users.PushCartItem(ctx, userID, item)
		if err != nil {
			return nil, fmt.Errorf("push cart item: %w", err)
		}
		if !pushed {
			// Either a concurrent add of the same title won the push, or
			// the incoming id is already taken by another entry.
			bumped, err = s.users.IncrementCartItem(ctx, userID, item.Title)
			if err != nil {
				return nil, fmt.Errorf("increment cart item: %w", err)
			}
			if !bumped {
				if item.ID, err = s.nextItemID(ctx, userID); err != nil {
					return nil, err
				}
				pushed, err = s.users.PushCartItem(ctx, userID, item)
				if err != nil {
					return nil, fmt.Errorf("push cart item: %w", err)
				}
				if !pushed {
					// The title landed in the meantime; fold this add into
					// its quantity.
					if _, err := s.users.IncrementCartItem(ctx, userID, item.Title); err != nil {
						return nil, fmt.Errorf("increment cart item: %w", err)
					}
				}
			}
		}
	}

	updated, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *CartService) nextItemID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	id, err := s.users.NextCartItemID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("draw cart item id: %w", err)
	}
	if id == 0 {
		return 0, ErrNotFound
	}
	return id, nil
}

// UpdateQuantity sets the quantity of one cart entry. Zero or less removes
// the entry rather than persisting it. No matching user/item pair is
// ErrNotFound.
func (s *CartService) UpdateQuantity(ctx context.Context, userID primitive.ObjectID, itemID, quantity int64) error {
	matched, err := s.users.UpdateCartItemQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// RemoveItem pulls one entry from the cart. A missing user is ErrNotFound;
// an id that is not in the cart is a no-op, matching the store's
// pull-on-no-match behavior.
func (s *CartService) RemoveItem(ctx context.Context, userID primitive.ObjectID, itemID int64) error {
	matched, err := s.users.RemoveCartItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// Clear empties the cart. Clearing an already-empty cart succeeds.
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	matched, err := s.users.ClearCart(ctx, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}
