package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/lukeklipping/NourishBox/models"
)

// SpoonacularService pulls single recipes from the Spoonacular API so they
// can be imported into the meal catalog. One attempt per request, no retry.
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSpoonacularService() *SpoonacularService {
	return &SpoonacularService{
		apiKey:  os.Getenv("SPOONACULAR_API_KEY"),
		baseURL: "https://api.spoonacular.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type recipeInformationResponse struct {
	Title               string   `json:"title"`
	SourceURL           string   `json:"sourceUrl"`
	Image               string   `json:"image"`
	Diets               []string `json:"diets"`
	ExtendedIngredients []struct {
		Name string `json:"name"`
	} `json:"extendedIngredients"`
	Nutrition *struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

// FetchRecipe retrieves one recipe and maps it into the Meal shape.
// Nutrient lookup is best effort: a recipe without nutrition data imports
// with null calories.
func (s *SpoonacularService) FetchRecipe(ctx context.Context, recipeID string) (*models.Meal, error) {
	u := fmt.Sprintf("%s/recipes/%s/information?apiKey=%s", s.baseURL, recipeID, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build Spoonacular request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call Spoonacular: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read Spoonacular response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))
	}

	var info recipeInformationResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parse Spoonacular JSON: %w", err)
	}

	meal := &models.Meal{
		Name:        info.Title,
		Ingredients: make([]string, 0, len(info.ExtendedIngredients)),
		Tags:        info.Diets,
	}
	for _, ing := range info.ExtendedIngredients {
		meal.Ingredients = append(meal.Ingredients, ing.Name)
	}
	if meal.Tags == nil {
		meal.Tags = []string{}
	}
	if info.SourceURL != "" {
		meal.SourceURL = &info.SourceURL
	}
	if info.Image != "" {
		meal.ImageURL = &info.Image
	}
	if info.Nutrition != nil {
		for _, n := range info.Nutrition.Nutrients {
			if n.Name == "Calories" {
				amount := n.Amount
				meal.Calories = &amount
				break
			}
		}
	}
	return meal, nil
}
