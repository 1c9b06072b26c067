package handlers

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/internal/api/presenters"
	"FoodWasteLogger/pkg/recipe"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"net/url"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		SuggestRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
		horizon       int
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate, horizon int) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
		horizon:       horizon,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	recipes := h.recipeService.GetRecipes(c.Context())

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"total":   len(recipes),
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

// SuggestRecipes matches the catalog against the request's ingredients. An
// empty body matches against the whole inventory.
func (h *recipeHandler) SuggestRecipes(c *fiber.Ctx) error {
	req := new(domain.RecipeSuggestionRequest)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestRecipes, err)
	}

	var res domain.RecipeSuggestionResponse
	if req.ExpiringOnly {
		days := h.horizon
		if req.Days != nil {
			days = *req.Days
		}
		res = h.recipeService.SuggestForExpiring(c.Context(), days)
	} else {
		res = h.recipeService.SuggestRecipes(c.Context(), req.Ingredients)
	}

	if res.Total == 0 {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageNoRecipesFound)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestRecipes)
}
