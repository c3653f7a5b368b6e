package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lukeklipping/NourishBox/config"
	"github.com/lukeklipping/NourishBox/repositories"
	"github.com/lukeklipping/NourishBox/routes"
	"github.com/lukeklipping/NourishBox/services"
)

func main() {
	client := config.InitDB()
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	users := repositories.NewMongoUserRepository(config.DB)
	meals := repositories.NewMongoMealRepository(config.DB)
	authors := repositories.NewMongoAuthorRepository(config.DB)

	r := routes.SetupRouter(users, meals, authors, services.NewSpoonacularService())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
