package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/repositories"
	"github.com/lukeklipping/NourishBox/utils"
)

func TestSignupHashesAndStartsEmptyCart(t *testing.T) {
	repo := repositories.NewInMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Luke", "luke@example.com", "hunter2")
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Empty(t, user.Cart)
	assert.NotEqual(t, "hunter2", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("hunter2", user.PasswordHash))
}

func TestSignupRequiresAllFields(t *testing.T) {
	svc := NewUserService(repositories.NewInMemoryUserRepository())
	_, err := svc.Signup(context.Background(), "", "luke@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignupDuplicateEmailLeavesRecordAlone(t *testing.T) {
	repo := repositories.NewInMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	first, err := svc.Signup(ctx, "Luke", "luke@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Imposter", "luke@example.com", "other")
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := repo.FindByEmail(ctx, "luke@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Luke", stored.Name)
}

func TestLogin(t *testing.T) {
	repo := repositories.NewInMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	signed, err := svc.Signup(ctx, "Luke", "luke@example.com", "hunter2")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "luke@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, signed.ID, user.ID)

	_, err = svc.Login(ctx, "luke@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateStripsProtectedFields(t *testing.T) {
	repo := repositories.NewInMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Luke", "luke@example.com", "hunter2")
	require.NoError(t, err)
	originalHash := user.PasswordHash

	updated, err := svc.Update(ctx, user.ID, map[string]interface{}{
		"name":         "Lucas",
		"_id":          "ffffffffffffffffffffffff",
		"passwordHash": "stolen",
		"cart":         []string{"junk"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Lucas", updated.Name)
	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, originalHash, updated.PasswordHash)
	assert.Empty(t, updated.Cart)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := NewUserService(repositories.NewInMemoryUserRepository())
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := repositories.NewInMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Luke", "luke@example.com", "hunter2")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))
	assert.ErrorIs(t, svc.Delete(ctx, user.ID), ErrNotFound)
}
