package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukeklipping/NourishBox/services"
)

type SearchController struct {
	meals *services.MealService
}

func NewSearchController(meals *services.MealService) *SearchController {
	return &SearchController{meals: meals}
}

// Meals matches meal names case-insensitively; an empty searchTerm returns
// the whole catalog.
func (ct *SearchController) Meals(c *gin.Context) {
	meals, err := ct.meals.Search(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		serverError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, meals)
}
