package domain

import (
	"errors"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetFoodItem       = "food item retrieved successfully"
	MessageSuccessScanProduct       = "scanned product added successfully"
	MessageSuccessGetCategories     = "categories retrieved successfully"
	MessageSuccessGetDefaultExpiry  = "default expiry computed successfully"
	MessageSuccessGetExpiringItems  = "expiring items retrieved successfully"
	MessageSuccessNoExpiringItems   = "no items expiring soon"
	MessageFailedAddFoodItem        = "failed to add food item"
	MessageFailedSaveFoodItem       = "food item kept in memory but could not be saved"
	MessageFailedDeleteFoodItem     = "failed to delete food item"
	MessageFailedGetFoodItems       = "failed to retrieve food items"
	MessageFailedScanProduct        = "failed to add scanned product"
	MessageFailedGetDefaultExpiry   = "failed to compute default expiry"
	MessageFailedGetExpiringItems   = "failed to retrieve expiring items"
	MessageFailedLoadInventory      = "could not load existing data, starting with an empty inventory"

	ErrFoodItemNotFound = errors.New("food item not found")
	ErrInventoryCorrupt = errors.New("inventory file is not a valid inventory")
	ErrSaveFailed       = errors.New("could not save inventory")
	ErrInvalidQuantity  = errors.New("quantity must be a non-negative number")
	ErrEmptyName        = errors.New("item name is required")
)

type (
	ExpiryStatus string

	AddFoodItemRequest struct {
		Name         string   `json:"name" validate:"required"`
		Category     string   `json:"category" validate:"required"`
		Quantity     *float64 `json:"quantity" validate:"required,min=0"`
		PurchaseDate string   `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
		ExpiryDate   string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	}

	// ScanProductRequest is what the barcode scan collaborator hands over.
	ScanProductRequest struct {
		Name     string   `json:"name" validate:"required"`
		Category string   `json:"category" validate:"required"`
		Quantity *float64 `json:"quantity" validate:"required,min=0"`
	}

	AddFoodItemResponse struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Category     string  `json:"category"`
		Quantity     float64 `json:"quantity"`
		PurchaseDate string  `json:"purchase_date"`
		ExpiryDate   string  `json:"expiry_date"`
	}

	FoodItemResponse struct {
		ID            string       `json:"id"`
		Name          string       `json:"name"`
		Category      string       `json:"category"`
		Quantity      float64      `json:"quantity"`
		PurchaseDate  string       `json:"purchase_date"`
		ExpiryDate    string       `json:"expiry_date"`
		DaysRemaining int          `json:"days_remaining"`
		Status        ExpiryStatus `json:"status"`
	}

	CategoryResponse struct {
		Name          string `json:"name"`
		ShelfLifeDays int    `json:"shelf_life_days"`
	}

	DefaultExpiryResponse struct {
		Category      string `json:"category"`
		ShelfLifeDays int    `json:"shelf_life_days"`
		PurchaseDate  string `json:"purchase_date"`
		ExpiryDate    string `json:"expiry_date"`
	}
)
