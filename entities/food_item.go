package entities

import (
	"time"
)

type FoodItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     float64   `json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

// StoredFoodItem is the on-disk shape of a FoodItem. The id is the key of the
// enclosing JSON object, dates are YYYY-MM-DD strings.
type StoredFoodItem struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	PurchaseDate string  `json:"purchase_date"`
	ExpiryDate   string  `json:"expiry_date"`
}
