package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/repositories"
)

func strPtr(s string) *string { return &s }

func seedMeals(t *testing.T, repo *repositories.InMemoryMealRepository, meals ...models.Meal) {
	t.Helper()
	for i := range meals {
		_, err := repo.Insert(context.Background(), &meals[i])
		require.NoError(t, err)
	}
}

func TestCreateMeal(t *testing.T) {
	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, nil)
	ctx := context.Background()

	meal, err := svc.Create(ctx, &models.Meal{
		Name:     "Tofu Bowl",
		ImageURL: strPtr("https://img.example/tofu.jpg"),
	})
	require.NoError(t, err)

	assert.False(t, meal.ID.IsZero())
	assert.NotNil(t, meal.Ingredients)
	assert.Empty(t, meal.Ingredients)
	assert.NotNil(t, meal.Tags)
	assert.Nil(t, meal.Calories)
	assert.Nil(t, meal.SourceURL)
	assert.WithinDuration(t, time.Now(), meal.CreatedAt, time.Minute)
}

func TestCreateMealRequiresNameAndImage(t *testing.T) {
	svc := NewMealService(repositories.NewInMemoryMealRepository(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Meal{ImageURL: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.Meal{Name: "No Image"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetMeal(t *testing.T) {
	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, nil)
	ctx := context.Background()

	meal, err := svc.Create(ctx, &models.Meal{Name: "Tofu Bowl", ImageURL: strPtr("x")})
	require.NoError(t, err)

	got, err := svc.Get(ctx, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tofu Bowl", got.Name)

	_, err = svc.Get(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestByTagFiltersUnimagedAndCaps(t *testing.T) {
	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, nil)

	var meals []models.Meal
	for i := 0; i < 7; i++ {
		meals = append(meals, models.Meal{
			Name:     "Veg Meal",
			Tags:     []string{"Vegetarian"},
			ImageURL: strPtr("https://img.example/v.jpg"),
		})
	}
	meals = append(meals, models.Meal{Name: "No Image", Tags: []string{"vegetarian"}})
	seedMeals(t, repo, meals...)

	got, err := svc.ByTag(context.Background(), "VEGETARIAN")
	require.NoError(t, err)
	assert.Len(t, got, 5)
	for _, m := range got {
		assert.NotNil(t, m.ImageURL)
	}
}

func TestSearchEmptyTermMatchesAll(t *testing.T) {
	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, nil)
	seedMeals(t, repo,
		models.Meal{Name: "Grilled Salmon"},
		models.Meal{Name: "Tofu Bowl"},
	)

	got, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Search(context.Background(), "salm")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Grilled Salmon", got[0].Name)
}

func TestGalleryOnlyImagedMeals(t *testing.T) {
	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, nil)
	seedMeals(t, repo,
		models.Meal{Name: "A", ImageURL: strPtr("a")},
		models.Meal{Name: "B"},
		models.Meal{Name: "C", ImageURL: strPtr("c")},
	)

	got, err := svc.Gallery(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, m := range got {
		assert.NotNil(t, m.ImageURL)
	}
}

func TestImportMapsRecipe(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/716429/information", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"title": "Pasta with Garlic",
			"sourceUrl": "https://recipes.example/pasta",
			"image": "https://img.example/pasta.jpg",
			"diets": ["vegetarian"],
			"extendedIngredients": [{"name": "pasta"}, {"name": "garlic"}],
			"nutrition": {"nutrients": [
				{"name": "Fat", "amount": 20},
				{"name": "Calories", "amount": 543.36}
			]}
		}`))
	}))
	defer upstream.Close()

	spoon := NewSpoonacularService()
	spoon.baseURL = upstream.URL

	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, spoon)

	meal, err := svc.Import(context.Background(), "716429")
	require.NoError(t, err)

	assert.False(t, meal.ID.IsZero())
	assert.Equal(t, "Pasta with Garlic", meal.Name)
	assert.Equal(t, []string{"pasta", "garlic"}, meal.Ingredients)
	assert.Equal(t, []string{"vegetarian"}, meal.Tags)
	require.NotNil(t, meal.Calories)
	assert.Equal(t, 543.36, *meal.Calories)
	require.NotNil(t, meal.SourceURL)
	assert.Equal(t, "https://recipes.example/pasta", *meal.SourceURL)
	require.NotNil(t, meal.ImageURL)
}

func TestImportNullSafeMapping(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title": "Mystery Dish"}`))
	}))
	defer upstream.Close()

	spoon := NewSpoonacularService()
	spoon.baseURL = upstream.URL

	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, spoon)

	meal, err := svc.Import(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Mystery Dish", meal.Name)
	assert.Empty(t, meal.Ingredients)
	assert.Empty(t, meal.Tags)
	assert.Nil(t, meal.Calories)
	assert.Nil(t, meal.SourceURL)
	assert.Nil(t, meal.ImageURL)
}

func TestImportUpstreamFailureInsertsNothing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"failure"}`, http.StatusPaymentRequired)
	}))
	defer upstream.Close()

	spoon := NewSpoonacularService()
	spoon.baseURL = upstream.URL

	repo := repositories.NewInMemoryMealRepository()
	svc := NewMealService(repo, spoon)

	_, err := svc.Import(context.Background(), "1")
	require.Error(t, err)

	meals, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, meals)
}
