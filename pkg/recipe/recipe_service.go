package recipe

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/entities"
	"FoodWasteLogger/pkg/expiry"
	"FoodWasteLogger/pkg/food"
	"context"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) []entities.Recipe
		GetRecipeDetail(ctx context.Context, name string) (entities.Recipe, error)
		SuggestRecipes(ctx context.Context, ingredients []string) domain.RecipeSuggestionResponse
		SuggestForExpiring(ctx context.Context, horizon int) domain.RecipeSuggestionResponse
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodService      food.FoodService
		expiryService    expiry.ExpiryService
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodService food.FoodService, expiryService expiry.ExpiryService) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodService:      foodService,
		expiryService:    expiryService,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) []entities.Recipe {
	return s.recipeRepository.GetRecipes(ctx)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, name string) (entities.Recipe, error) {
	return s.recipeRepository.GetRecipeByName(ctx, name)
}

// SuggestRecipes matches the catalog against ingredients, or against every
// inventory item name when ingredients is nil.
func (s *recipeService) SuggestRecipes(ctx context.Context, ingredients []string) domain.RecipeSuggestionResponse {
	if ingredients == nil {
		ingredients = s.foodService.ItemNames(ctx)
	}
	return s.suggest(ctx, ingredients)
}

func (s *recipeService) SuggestForExpiring(ctx context.Context, horizon int) domain.RecipeSuggestionResponse {
	expiring := s.expiryService.GetExpiringItems(ctx, horizon)

	ingredients := make([]string, 0, len(expiring))
	for _, item := range expiring {
		ingredients = append(ingredients, item.Name)
	}
	return s.suggest(ctx, ingredients)
}

func (s *recipeService) suggest(ctx context.Context, ingredients []string) domain.RecipeSuggestionResponse {
	log.Debugf("Looking for recipes with ingredients: %v", ingredients)

	matches := MatchRecipes(s.recipeRepository.GetRecipes(ctx), ingredients)
	return domain.RecipeSuggestionResponse{
		Ingredients: ingredients,
		Recipes:     matches,
		Total:       len(matches),
	}
}

// MatchRecipes scores each recipe by how many of its ingredients appear in
// ingredients. A recipe ingredient matches an entry when either contains the
// other, ignoring case; the first matching entry wins. Recipes without any
// match are dropped and the rest are ordered by match count, keeping catalog
// order for ties.
func MatchRecipes(catalog []entities.Recipe, ingredients []string) []domain.MatchResult {
	lowered := make([]string, len(ingredients))
	for i, ing := range ingredients {
		lowered[i] = strings.ToLower(ing)
	}

	results := make([]domain.MatchResult, 0)
	for _, recipe := range catalog {
		matched := make([]string, 0)
		for _, recipeIng := range recipe.Ingredients {
			want := strings.ToLower(recipeIng)
			for _, have := range lowered {
				if strings.Contains(have, want) || strings.Contains(want, have) {
					matched = append(matched, recipeIng)
					break
				}
			}
		}

		if len(matched) == 0 {
			continue
		}

		results = append(results, domain.MatchResult{
			Recipe:             recipe,
			MatchCount:         len(matched),
			MatchPercentage:    float64(len(matched)) / float64(len(recipe.Ingredients)) * 100,
			MatchedIngredients: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchCount > results[j].MatchCount
	})

	return results
}
