package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/repositories"
)

// galleryLimit caps the rotating homepage gallery; tagLimit caps the sample
// meals shown on a plan card.
const (
	galleryLimit = 5
	tagLimit     = 5
)

type MealService struct {
	meals repositories.MealRepository
	spoon *SpoonacularService
}

func NewMealService(meals repositories.MealRepository, spoon *SpoonacularService) *MealService {
	return &MealService{meals: meals, spoon: spoon}
}

func (s *MealService) List(ctx context.Context) ([]models.Meal, error) {
	meals, err := s.meals.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, nil
}

func (s *MealService) Get(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	meal, err := s.meals.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}
	if meal == nil {
		return nil, ErrNotFound
	}
	return meal, nil
}

// ByTag returns up to five imaged meals whose tags match the term,
// case-insensitively, for a plan's sample gallery.
func (s *MealService) ByTag(ctx context.Context, tag string) ([]models.Meal, error) {
	meals, err := s.meals.FindByTag(ctx, strings.ToLower(tag), tagLimit)
	if err != nil {
		return nil, fmt.Errorf("meals by tag: %w", err)
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, nil
}

// Gallery draws five random imaged meals, sampled at the store.
func (s *MealService) Gallery(ctx context.Context) ([]models.Meal, error) {
	meals, err := s.meals.Sample(ctx, galleryLimit)
	if err != nil {
		return nil, fmt.Errorf("sample gallery: %w", err)
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, nil
}

func (s *MealService) Search(ctx context.Context, term string) ([]models.Meal, error) {
	meals, err := s.meals.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search meals: %w", err)
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, nil
}

// Create inserts a manually supplied meal. Name and image are required;
// everything else defaults to null or empty, and creation time is stamped
// here.
func (s *MealService) Create(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	if meal.Name == "" || meal.ImageURL == nil || *meal.ImageURL == "" {
		return nil, fmt.Errorf("%w: missing required fields: name and imageUrl", ErrInvalidInput)
	}
	if meal.Ingredients == nil {
		meal.Ingredients = []string{}
	}
	if meal.Tags == nil {
		meal.Tags = []string{}
	}
	meal.CreatedAt = time.Now()

	id, err := s.meals.Insert(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}
	meal.ID = id
	return meal, nil
}

// Import fetches one recipe from Spoonacular, maps it into the meal shape
// and inserts it. Nothing is inserted when the fetch or mapping fails.
func (s *MealService) Import(ctx context.Context, recipeID string) (*models.Meal, error) {
	meal, err := s.spoon.FetchRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("fetch recipe: %w", err)
	}
	meal.CreatedAt = time.Now()

	id, err := s.meals.Insert(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("insert imported meal: %w", err)
	}
	meal.ID = id
	return meal, nil
}
