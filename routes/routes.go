package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukeklipping/NourishBox/controllers"
	"github.com/lukeklipping/NourishBox/middlewares"
	"github.com/lukeklipping/NourishBox/repositories"
	"github.com/lukeklipping/NourishBox/services"
)

// SetupRouter wires repositories into services and services into handlers.
// The test suites call it with in-memory repositories and drive the full
// HTTP stack.
func SetupRouter(
	users repositories.UserRepository,
	meals repositories.MealRepository,
	authors repositories.AuthorRepository,
	spoon *services.SpoonacularService,
) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	userSvc := services.NewUserService(users)
	cartSvc := services.NewCartService(users)
	mealSvc := services.NewMealService(meals, spoon)
	authorSvc := services.NewAuthorService(authors)
	planSvc := services.NewPlanService()
	checkoutSvc := services.NewCheckoutService(users)

	authCtl := controllers.NewAuthController(userSvc)
	userCtl := controllers.NewUserController(userSvc)
	cartCtl := controllers.NewCartController(cartSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	searchCtl := controllers.NewSearchController(mealSvc)
	authorCtl := controllers.NewAuthorController(authorSvc)
	planCtl := controllers.NewPlanController(planSvc, mealSvc)
	checkoutCtl := controllers.NewCheckoutController(checkoutSvc)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "NourishBox backend is live.")
	})

	api := r.Group("/api")
	{
		api.POST("/signup", authCtl.Signup)
		api.POST("/login", authCtl.Login)

		mealsGrp := api.Group("/meals")
		{
			mealsGrp.GET("", mealCtl.List)
			mealsGrp.GET("/gallery", mealCtl.Gallery)
			mealsGrp.GET("/tag/:tag", mealCtl.ByTag)
			mealsGrp.GET("/fetch/:id", mealCtl.Import)
			mealsGrp.GET("/:id", mealCtl.Get)
			mealsGrp.POST("", mealCtl.Create)
		}

		api.GET("/search/meals", searchCtl.Meals)
		api.GET("/authors", authorCtl.List)
		api.GET("/plans", planCtl.List)
		api.GET("/plans/:id/meals", planCtl.Meals)

		// User-scoped routes require a session token whose subject matches
		// the path id.
		usersGrp := api.Group("/users/:id")
		usersGrp.Use(middlewares.AuthMiddleware())
		{
			usersGrp.PUT("", userCtl.Update)
			usersGrp.DELETE("", userCtl.Delete)

			usersGrp.GET("/cart", cartCtl.Get)
			usersGrp.PUT("/cart", cartCtl.AddItem)
			usersGrp.DELETE("/cart", cartCtl.Clear)
			usersGrp.GET("/cart/summary", checkoutCtl.Summary)
			usersGrp.PUT("/cart/:itemId", cartCtl.UpdateQuantity)
			usersGrp.DELETE("/cart/:itemId", cartCtl.RemoveItem)

			usersGrp.POST("/checkout", checkoutCtl.Checkout)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
