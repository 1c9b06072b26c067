package domain

import (
	"FoodWasteLogger/entities"
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSuggestRecipes  = "success suggest recipes"
	MessageNoRecipesFound         = "no recipes found for your current inventory"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSuggestRecipes  = "failed to suggest recipes"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// RecipeSuggestionRequest selects the ingredient list to match against.
	// Ingredients == nil means the whole inventory; ExpiringOnly uses the
	// names of items expiring within Days.
	RecipeSuggestionRequest struct {
		Ingredients  []string `json:"ingredients" validate:"omitempty,dive,required"`
		ExpiringOnly bool     `json:"expiring_only"`
		Days         *int     `json:"days" validate:"omitempty,min=0"`
	}

	MatchResult struct {
		Recipe             entities.Recipe `json:"recipe"`
		MatchCount         int             `json:"match_count"`
		MatchPercentage    float64         `json:"match_percentage"`
		MatchedIngredients []string        `json:"matched_ingredients"`
	}

	RecipeSuggestionResponse struct {
		Ingredients []string      `json:"ingredients"`
		Recipes     []MatchResult `json:"recipes"`
		Total       int           `json:"total"`
	}
)
