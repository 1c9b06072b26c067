package routes

import (
	"FoodWasteLogger/internal/api/handlers"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	FoodHandler   handlers.FoodHandler
	RecipeHandler handlers.RecipeHandler
	ReportHandler handlers.ReportHandler
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.FoodItems()
	c.Recipes()
	c.Reports()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
	c.App.Get("/api/v1/categories", c.FoodHandler.GetCategories)
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")

	// fixed paths before /:id
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)
	foodItems.Get("/default-expiry", c.FoodHandler.GetDefaultExpiry)
	foodItems.Post("/scan", c.FoodHandler.ScanProduct)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("/suggest", c.RecipeHandler.SuggestRecipes)
	recipes.Get("/:name", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) Reports() {
	c.App.Get("/api/v1/reports/:period", c.ReportHandler.GetReport)
}
