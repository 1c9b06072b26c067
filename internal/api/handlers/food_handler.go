package handlers

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/internal/api/presenters"
	"FoodWasteLogger/internal/utils"
	"FoodWasteLogger/pkg/expiry"
	"FoodWasteLogger/pkg/food"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strings"
	"time"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		ScanProduct(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetDefaultExpiry(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService   food.FoodService
		expiryService expiry.ExpiryService
		validator     *validator.Validate
		horizon       int
	}
)

func NewFoodHandler(foodService food.FoodService, expiryService expiry.ExpiryService, validator *validator.Validate, horizon int) FoodHandler {
	return &foodHandler{
		foodService:   foodService,
		expiryService: expiryService,
		validator:     validator,
		horizon:       horizon,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	item := food.NewFoodItem{
		Name:     req.Name,
		Category: req.Category,
		Quantity: *req.Quantity,
	}

	var err error
	if item.PurchaseDate, err = parseOptionalDate(req.PurchaseDate); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}
	if item.ExpiryDate, err = parseOptionalDate(req.ExpiryDate); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return h.add(c, item, domain.MessageSuccessAddFoodItem)
}

// ScanProduct is the boundary for the barcode scanner: it only supplies
// name, category and quantity, dates are defaulted.
func (h *foodHandler) ScanProduct(c *fiber.Ctx) error {
	req := new(domain.ScanProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanProduct, err)
	}

	return h.add(c, food.NewFoodItem{
		Name:     req.Name,
		Category: req.Category,
		Quantity: *req.Quantity,
	}, domain.MessageSuccessScanProduct)
}

func (h *foodHandler) add(c *fiber.Ctx, item food.NewFoodItem, message string) error {
	id, err := h.foodService.AddFoodItem(c.Context(), item)
	if err != nil && !errors.Is(err, domain.ErrSaveFailed) {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFoodItem, err)
	}

	stored, getErr := h.foodService.GetFoodItemByID(c.Context(), id)
	if getErr != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFoodItem, getErr)
	}

	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveFoodItem, err)
	}

	return presenters.SuccessResponse(c, domain.AddFoodItemResponse{
		ID:           stored.ID,
		Name:         stored.Name,
		Category:     stored.Category,
		Quantity:     stored.Quantity,
		PurchaseDate: utils.FormatDate(stored.PurchaseDate),
		ExpiryDate:   utils.FormatDate(stored.ExpiryDate),
	}, fiber.StatusCreated, message)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	removed, err := h.foodService.RemoveFoodItem(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveFoodItem, err)
	}
	if !removed {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFoodItem, domain.ErrFoodItemNotFound)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	items := h.expiryService.GetSortedFoodItems(c.Context())

	status := strings.ToUpper(c.Query("status", "all"))
	if status != "ALL" {
		filtered := make([]domain.FoodItemResponse, 0, len(items))
		for _, item := range items {
			if string(item.Status) == status {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.expiryService.GetFoodItem(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItem)
}

func (h *foodHandler) GetExpiringItems(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.horizon)
	if days < 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiringItems, errors.New("days must not be negative"))
	}

	alert, err := h.expiryService.GetExpiryAlert(c.Context(), days)
	if err != nil {
		if errors.Is(err, domain.ErrNoExpiringItems) {
			return presenters.SuccessResponse(c, domain.ExpiryAlert{
				Items: []domain.ExpiringItem{},
				Lines: []string{},
			}, fiber.StatusOK, domain.MessageSuccessNoExpiringItems)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetExpiringItems, err)
	}

	return presenters.SuccessResponse(c, alert, fiber.StatusOK, domain.MessageSuccessGetExpiringItems)
}

func (h *foodHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, food.Categories(), fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *foodHandler) GetDefaultExpiry(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDefaultExpiry, errors.New("category is required"))
	}

	purchaseDate, err := parseOptionalDate(c.Query("purchase_date"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDefaultExpiry, err)
	}
	if purchaseDate.IsZero() {
		purchaseDate = h.foodService.Today()
	}

	return presenters.SuccessResponse(c, domain.DefaultExpiryResponse{
		Category:      category,
		ShelfLifeDays: food.ShelfLife(category),
		PurchaseDate:  utils.FormatDate(purchaseDate),
		ExpiryDate:    utils.FormatDate(food.DefaultExpiry(category, purchaseDate)),
	}, fiber.StatusOK, domain.MessageSuccessGetDefaultExpiry)
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(s)
}
