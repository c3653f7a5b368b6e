package repositories

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
)

// In-memory repository implementations mirroring the Mongo semantics. The
// test suites run the full HTTP stack against these instead of a live
// store. Err, when set, is returned by every operation to exercise the
// store-failure paths.

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
	Err   error
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[primitive.ObjectID]*models.User)}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Cart = append([]models.CartItem{}, u.Cart...)
	return &cp
}

func (r *InMemoryUserRepository) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return primitive.NilObjectID, r.Err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = copyUser(user)
	return user.ID, nil
}

func (r *InMemoryUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *InMemoryUserRepository) UpdateFields(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	return true, nil
}

func (r *InMemoryUserRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *InMemoryUserRepository) IncrementCartItem(_ context.Context, id primitive.ObjectID, title string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	for i := range u.Cart {
		if u.Cart[i].Title == title {
			u.Cart[i].Quantity++
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUserRepository) PushCartItem(_ context.Context, id primitive.ObjectID, item models.CartItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	for i := range u.Cart {
		if u.Cart[i].Title == item.Title || u.Cart[i].ID == item.ID {
			return false, nil
		}
	}
	u.Cart = append(u.Cart, item)
	if item.ID > u.CartSeq {
		u.CartSeq = item.ID
	}
	return true, nil
}

func (r *InMemoryUserRepository) NextCartItemID(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.CartSeq++
	return u.CartSeq, nil
}

func (r *InMemoryUserRepository) UpdateCartItemQuantity(_ context.Context, id primitive.ObjectID, itemID, quantity int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	for i := range u.Cart {
		if u.Cart[i].ID == itemID {
			if quantity <= 0 {
				u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
			} else {
				u.Cart[i].Quantity = quantity
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUserRepository) RemoveCartItem(_ context.Context, id primitive.ObjectID, itemID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	for i := range u.Cart {
		if u.Cart[i].ID == itemID {
			u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *InMemoryUserRepository) ClearCart(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	u.Cart = []models.CartItem{}
	return true, nil
}

type InMemoryMealRepository struct {
	mu    sync.RWMutex
	meals []models.Meal
	Err   error
}

func NewInMemoryMealRepository() *InMemoryMealRepository {
	return &InMemoryMealRepository{}
}

func (r *InMemoryMealRepository) FindAll(_ context.Context) ([]models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]models.Meal{}, r.meals...), nil
}

func (r *InMemoryMealRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, m := range r.meals {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *InMemoryMealRepository) FindByTag(_ context.Context, tag string, limit int64) ([]models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []models.Meal
	for _, m := range r.meals {
		if m.ImageURL == nil || int64(len(out)) == limit {
			continue
		}
		for _, t := range m.Tags {
			if strings.Contains(strings.ToLower(t), strings.ToLower(tag)) {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryMealRepository) Sample(_ context.Context, size int64) ([]models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var imaged []models.Meal
	for _, m := range r.meals {
		if m.ImageURL != nil {
			imaged = append(imaged, m)
		}
	}
	rand.Shuffle(len(imaged), func(i, j int) {
		imaged[i], imaged[j] = imaged[j], imaged[i]
	})
	if int64(len(imaged)) > size {
		imaged = imaged[:size]
	}
	return imaged, nil
}

func (r *InMemoryMealRepository) SearchByName(_ context.Context, term string) ([]models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []models.Meal
	for _, m := range r.meals {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(term)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *InMemoryMealRepository) Insert(_ context.Context, meal *models.Meal) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return primitive.NilObjectID, r.Err
	}
	if meal.ID.IsZero() {
		meal.ID = primitive.NewObjectID()
	}
	r.meals = append(r.meals, *meal)
	return meal.ID, nil
}

type InMemoryAuthorRepository struct {
	mu      sync.RWMutex
	authors []models.Author
	Err     error
}

func NewInMemoryAuthorRepository(authors ...models.Author) *InMemoryAuthorRepository {
	return &InMemoryAuthorRepository{authors: authors}
}

func (r *InMemoryAuthorRepository) FindAll(_ context.Context) ([]models.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]models.Author{}, r.authors...), nil
}
