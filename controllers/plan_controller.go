package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lukeklipping/NourishBox/services"
)

type PlanController struct {
	plans *services.PlanService
	meals *services.MealService
}

func NewPlanController(plans *services.PlanService, meals *services.MealService) *PlanController {
	return &PlanController{plans: plans, meals: meals}
}

func (ct *PlanController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ct.plans.List())
}

// Meals serves a plan's sample gallery: up to five imaged meals matching
// the plan's tag.
func (ct *PlanController) Meals(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	plan, ok := ct.plans.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	meals, err := ct.meals.ByTag(c.Request.Context(), plan.Tag)
	if err != nil {
		serverError(c, err, "Failed to fetch meals by tag")
		return
	}
	c.JSON(http.StatusOK, meals)
}
