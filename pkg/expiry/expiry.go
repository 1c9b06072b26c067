package expiry

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/entities"
	"FoodWasteLogger/internal/utils"
	"fmt"
	"sort"
	"time"
)

const expiringSoonDays = 3

// DaysRemaining is the signed number of days from today to the item's
// expiry date. Negative means already expired.
func DaysRemaining(item entities.FoodItem, today time.Time) int {
	return utils.DaysBetween(today, item.ExpiryDate)
}

func Classify(daysRemaining int) domain.ExpiryStatus {
	switch {
	case daysRemaining < 0:
		return domain.StatusExpired
	case daysRemaining <= expiringSoonDays:
		return domain.StatusExpiringSoon
	default:
		return domain.StatusGood
	}
}

// SortPriority surfaces items about to expire first, then expired ones, then
// the rest.
func SortPriority(status domain.ExpiryStatus) int {
	switch status {
	case domain.StatusExpiringSoon:
		return 0
	case domain.StatusExpired:
		return 1
	default:
		return 2
	}
}

// SortItems returns a copy of items ordered by priority, then days remaining.
// Ties fall back to the name and id so the order is stable across calls.
func SortItems(items []entities.FoodItem, today time.Time) []entities.FoodItem {
	sorted := make([]entities.FoodItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := DaysRemaining(sorted[i], today), DaysRemaining(sorted[j], today)
		pi, pj := SortPriority(Classify(di)), SortPriority(Classify(dj))
		if pi != pj {
			return pi < pj
		}
		if di != dj {
			return di < dj
		}
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

// ExpiringWithin selects items with 0 <= days remaining <= horizon, soonest
// first.
func ExpiringWithin(items []entities.FoodItem, horizon int, today time.Time) []domain.ExpiringItem {
	expiring := make([]domain.ExpiringItem, 0)
	for _, item := range SortItems(items, today) {
		days := DaysRemaining(item, today)
		if days >= 0 && days <= horizon {
			expiring = append(expiring, domain.ExpiringItem{Name: item.Name, DaysRemaining: days})
		}
	}
	return expiring
}

// UrgencyScore weights items expiring today at 50, tomorrow at 30 and later
// at 10, averaged and capped at 100. Callers must not pass an empty slice;
// it scores 0.
func UrgencyScore(items []domain.ExpiringItem) int {
	if len(items) == 0 {
		return 0
	}

	var today, tomorrow, other int
	for _, item := range items {
		switch item.DaysRemaining {
		case 0:
			today++
		case 1:
			tomorrow++
		default:
			other++
		}
	}

	score := (today*50 + tomorrow*30 + other*10) / len(items)
	return min(100, score)
}

func UrgencyLevel(score int) string {
	switch {
	case score > 70:
		return domain.UrgencyHigh
	case score > 40:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

func AlertLine(item domain.ExpiringItem) string {
	switch item.DaysRemaining {
	case 0:
		return fmt.Sprintf("%s - EXPIRES TODAY!", item.Name)
	case 1:
		return fmt.Sprintf("%s - Expires TOMORROW!", item.Name)
	default:
		return fmt.Sprintf("%s - Expires in %d days", item.Name, item.DaysRemaining)
	}
}

func BuildAlert(items []domain.ExpiringItem) domain.ExpiryAlert {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, AlertLine(item))
	}

	score := UrgencyScore(items)
	return domain.ExpiryAlert{
		Items:        items,
		UrgencyScore: score,
		UrgencyLevel: UrgencyLevel(score),
		Lines:        lines,
	}
}

func ToFoodItemResponse(item entities.FoodItem, today time.Time) domain.FoodItemResponse {
	days := DaysRemaining(item, today)
	return domain.FoodItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		Quantity:      item.Quantity,
		PurchaseDate:  utils.FormatDate(item.PurchaseDate),
		ExpiryDate:    utils.FormatDate(item.ExpiryDate),
		DaysRemaining: days,
		Status:        Classify(days),
	}
}
