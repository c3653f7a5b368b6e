package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/repositories"
	"github.com/lukeklipping/NourishBox/utils"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Signup stores a new account with a bcrypt hash and an empty cart. A
// duplicate email fails with ErrConflict and leaves the existing record
// untouched.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Cart:         []models.CartItem{},
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return user, nil
}

// Login verifies the credential against the stored bcrypt hash. Unknown
// email and bad password both come back as ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Update merges a partial field set into the user record. Identity,
// credential and cart fields are stripped so a profile edit can never
// overwrite them.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.User, error) {
	for _, k := range []string{"_id", "id", "password", "passwordHash", "cart"} {
		delete(updates, k)
	}

	if len(updates) > 0 {
		matched, err := s.users.UpdateFields(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if !matched {
			return nil, ErrNotFound
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Delete removes the account; the embedded cart goes with it.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
