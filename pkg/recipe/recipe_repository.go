package recipe

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/entities"
	"context"
	"strings"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) []entities.Recipe
		GetRecipeByName(ctx context.Context, name string) (entities.Recipe, error)
	}

	recipeRepository struct {
		recipes []entities.Recipe
	}
)

var defaultCatalog = []entities.Recipe{
	{
		Name:         "Vegetable Stir Fry",
		Ingredients:  []string{"Carrot", "Broccoli", "Rice"},
		Instructions: "1. Chop vegetables into bite-sized pieces.\n2. Cook rice according to package instructions.\n3. Heat oil in a pan and stir fry vegetables for 5-7 minutes.\n4. Season with salt and pepper.\n5. Serve vegetables over rice.",
	},
	{
		Name:         "Chicken Salad",
		Ingredients:  []string{"Chicken", "Tomato", "Spinach"},
		Instructions: "1. Cook chicken until no longer pink inside.\n2. Chop tomatoes and prepare spinach leaves.\n3. Combine all ingredients in a bowl.\n4. Add your favorite dressing and toss to coat.",
	},
	{
		Name:         "Fruit Smoothie",
		Ingredients:  []string{"Banana", "Yogurt", "Milk"},
		Instructions: "1. Cut banana into chunks.\n2. Add banana, yogurt and milk to a blender.\n3. Blend until smooth.\n4. Pour into a glass and enjoy immediately.",
	},
	{
		Name:         "Simple Pasta",
		Ingredients:  []string{"Pasta", "Tomato", "Cheese"},
		Instructions: "1. Cook pasta according to package instructions.\n2. While pasta cooks, dice tomatoes.\n3. Drain pasta and return to pot.\n4. Add tomatoes and grated cheese, stir until cheese melts.",
	},
	{
		Name:         "Quick Omelet",
		Ingredients:  []string{"Eggs", "Cheese", "Spinach"},
		Instructions: "1. Beat eggs in a bowl.\n2. Heat butter in a pan over medium heat.\n3. Pour in eggs and cook until almost set.\n4. Add cheese and spinach to one half, fold over the other half.\n5. Cook until cheese melts.",
	},
}

// NewRecipeRepository serves the built-in, read-only recipe catalog.
func NewRecipeRepository() RecipeRepository {
	return NewRecipeRepositoryWithCatalog(defaultCatalog)
}

func NewRecipeRepositoryWithCatalog(recipes []entities.Recipe) RecipeRepository {
	catalog := make([]entities.Recipe, len(recipes))
	for i, r := range recipes {
		catalog[i] = copyRecipe(r)
	}
	return &recipeRepository{recipes: catalog}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) []entities.Recipe {
	recipes := make([]entities.Recipe, len(r.recipes))
	for i, recipe := range r.recipes {
		recipes[i] = copyRecipe(recipe)
	}
	return recipes
}

// GetRecipeByName matches names case-insensitively.
func (r *recipeRepository) GetRecipeByName(ctx context.Context, name string) (entities.Recipe, error) {
	for _, recipe := range r.recipes {
		if strings.EqualFold(recipe.Name, name) {
			return copyRecipe(recipe), nil
		}
	}
	return entities.Recipe{}, domain.ErrRecipeNotFound
}

func copyRecipe(r entities.Recipe) entities.Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	return r
}
