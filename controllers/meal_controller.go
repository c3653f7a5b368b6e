package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/services"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

func (ct *MealController) List(c *gin.Context) {
	meals, err := ct.meals.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to fetch meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

// Gallery serves the rotating homepage strip: five random meals that carry
// an image.
func (ct *MealController) Gallery(c *gin.Context) {
	meals, err := ct.meals.Gallery(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to fetch gallery meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ct *MealController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	meal, err := ct.meals.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to fetch meal")
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ct *MealController) ByTag(c *gin.Context) {
	meals, err := ct.meals.ByTag(c.Request.Context(), c.Param("tag"))
	if err != nil {
		serverError(c, err, "Failed to fetch meals by tag")
		return
	}
	c.JSON(http.StatusOK, meals)
}

type createMealInput struct {
	Name        string   `json:"name"`
	Calories    *float64 `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Tags        []string `json:"tags"`
	SourceURL   *string  `json:"sourceUrl"`
	ImageURL    *string  `json:"imageUrl"`
}

func (ct *MealController) Create(c *gin.Context) {
	var input createMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name and imageUrl"})
		return
	}

	meal, err := ct.meals.Create(c.Request.Context(), &models.Meal{
		Name:        input.Name,
		Calories:    input.Calories,
		Ingredients: input.Ingredients,
		Tags:        input.Tags,
		SourceURL:   input.SourceURL,
		ImageURL:    input.ImageURL,
	})
	if errors.Is(err, services.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name and imageUrl"})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to add meal")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": meal.ID, "meal": meal})
}

// Import pulls one recipe from Spoonacular into the catalog.
func (ct *MealController) Import(c *gin.Context) {
	meal, err := ct.meals.Import(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, err, "Failed to fetch or insert meal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": meal.ID, "meal": meal})
}
