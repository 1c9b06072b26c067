package food

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/internal/utils"
	"time"
)

type shelfLife struct {
	category string
	days     int
}

// shelfLifeTable keeps the order categories are offered in.
var shelfLifeTable = []shelfLife{
	{category: "Dairy", days: 7},
	{category: "Meat", days: 4},
	{category: "Vegetables", days: 7},
	{category: "Fruits", days: 7},
	{category: "Bakery", days: 5},
	{category: "Pantry", days: 180},
}

// ShelfLife returns the default shelf life in days for category, falling back
// to domain.DefaultShelfLifeDays for unknown categories.
func ShelfLife(category string) int {
	for _, s := range shelfLifeTable {
		if s.category == category {
			return s.days
		}
	}
	return domain.DefaultShelfLifeDays
}

func IsKnownCategory(category string) bool {
	for _, s := range shelfLifeTable {
		if s.category == category {
			return true
		}
	}
	return false
}

func Categories() []domain.CategoryResponse {
	categories := make([]domain.CategoryResponse, 0, len(shelfLifeTable))
	for _, s := range shelfLifeTable {
		categories = append(categories, domain.CategoryResponse{
			Name:          s.category,
			ShelfLifeDays: s.days,
		})
	}
	return categories
}

func DefaultExpiry(category string, purchaseDate time.Time) time.Time {
	return utils.AddDays(purchaseDate, ShelfLife(category))
}
