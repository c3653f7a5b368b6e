package services

import (
	"github.com/lukeklipping/NourishBox/models"
)

// PlanService serves the fixed subscription catalog. Plans ship with the
// binary; there is no store behind them.
type PlanService struct {
	plans []models.MealPlan
}

func NewPlanService() *PlanService {
	return &PlanService{plans: []models.MealPlan{
		{
			ID:           1,
			Tag:          "protein",
			Title:        "High Protein Power",
			Description:  "For fitness lovers - who need fuel for workouts, recovery, and strength-building. Every meal is high in protein and balanced with whole ingredients to keep you full and energized. Whether you are training hard or just want to eat cleaner, this plan supports your goals.",
			MealsPerWeek: 5,
			FreeDelivery: true,
			Price:        110,
		},
		{
			ID:           2,
			Tag:          "balanced",
			Title:        "Balanced Boost",
			Description:  "A perfect mix of protein, fiber, and greens to keep your energy steady throughout the day. Each meal is crafted with whole foods that support focus, fullness, and overall wellness. Ideal for anyone looking to eat clean without sacrificing flavor or satisfaction.",
			MealsPerWeek: 5,
			FreeDelivery: true,
			Price:        120,
		},
		{
			ID:           3,
			Tag:          "vegetarian",
			Title:        "Veggie Delight",
			Description:  "A flavorful plant-based plan packed with nutrient-dense vegetables, grains, and legumes. It is designed for vegetarians and anyone wanting to eat more greens without compromising on taste. Expect colorful, wholesome meals that nourish and energize.",
			MealsPerWeek: 5,
			FreeDelivery: true,
			Price:        100,
		},
		{
			ID:           4,
			Tag:          "pescatarian",
			Title:        "Seafood Fresh",
			Description:  "features light, heart-healthy meals built around fresh fish, grains, and seasonal produce. It's perfect for those reducing red meat or looking to enjoy nutrient-rich seafood. Balanced and refreshing, this plan supports a clean, energizing lifestyle.",
			MealsPerWeek: 5,
			FreeDelivery: true,
			Price:        70,
		},
	}}
}

func (s *PlanService) List() []models.MealPlan {
	return s.plans
}

func (s *PlanService) Get(id int64) (models.MealPlan, bool) {
	for _, p := range s.plans {
		if p.ID == id {
			return p, true
		}
	}
	return models.MealPlan{}, false
}
