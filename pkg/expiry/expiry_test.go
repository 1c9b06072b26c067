package expiry

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/entities"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func itemExpiringIn(name string, days int) entities.FoodItem {
	return entities.FoodItem{
		ID:           name,
		Name:         name,
		Category:     "Dairy",
		Quantity:     1,
		PurchaseDate: today.AddDate(0, 0, -2),
		ExpiryDate:   today.AddDate(0, 0, days),
	}
}

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 3, DaysRemaining(itemExpiringIn("a", 3), today))
	assert.Equal(t, -4, DaysRemaining(itemExpiringIn("b", -4), today))
	assert.Equal(t, 0, DaysRemaining(itemExpiringIn("c", 0), today))

	// time of day on "today" does not shift the count
	afternoon := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysRemaining(itemExpiringIn("d", 1), afternoon))
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		days int
		want domain.ExpiryStatus
	}{
		{-30, domain.StatusExpired},
		{-1, domain.StatusExpired},
		{0, domain.StatusExpiringSoon},
		{1, domain.StatusExpiringSoon},
		{3, domain.StatusExpiringSoon},
		{4, domain.StatusGood},
		{180, domain.StatusGood},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.days), "days=%d", tt.days)
	}
}

func TestSortPriority(t *testing.T) {
	assert.Equal(t, 0, SortPriority(domain.StatusExpiringSoon))
	assert.Equal(t, 1, SortPriority(domain.StatusExpired))
	assert.Equal(t, 2, SortPriority(domain.StatusGood))
}

func TestSortItems(t *testing.T) {
	items := []entities.FoodItem{
		itemExpiringIn("good-far", 30),
		itemExpiringIn("expired-old", -5),
		itemExpiringIn("soon-3", 3),
		itemExpiringIn("good-near", 4),
		itemExpiringIn("expired-recent", -1),
		itemExpiringIn("soon-0", 0),
	}

	sorted := SortItems(items, today)

	names := make([]string, 0, len(sorted))
	for _, item := range sorted {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"soon-0", "soon-3", "expired-old", "expired-recent", "good-near", "good-far"}, names)
	assert.Equal(t, "good-far", items[0].Name, "input is not reordered")
}

func TestExpiringWithin(t *testing.T) {
	items := []entities.FoodItem{
		itemExpiringIn("Milk", 1),
		itemExpiringIn("Old Bread", -1),
		itemExpiringIn("Cheese", 3),
		itemExpiringIn("Rice", 4),
		itemExpiringIn("Yogurt", 0),
	}

	assert.Equal(t, []domain.ExpiringItem{
		{Name: "Yogurt", DaysRemaining: 0},
		{Name: "Milk", DaysRemaining: 1},
		{Name: "Cheese", DaysRemaining: 3},
	}, ExpiringWithin(items, domain.DefaultExpiryHorizon, today))

	assert.Equal(t, []domain.ExpiringItem{
		{Name: "Yogurt", DaysRemaining: 0},
	}, ExpiringWithin(items, 0, today))

	assert.Len(t, ExpiringWithin(items, 7, today), 4)
	assert.Empty(t, ExpiringWithin(nil, 3, today))
}

func TestUrgencyScore(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.ExpiringItem
		want  int
	}{
		{
			name:  "mixed",
			items: []domain.ExpiringItem{{Name: "A", DaysRemaining: 0}, {Name: "B", DaysRemaining: 1}, {Name: "C", DaysRemaining: 5}},
			want:  30,
		},
		{
			name:  "all today",
			items: []domain.ExpiringItem{{Name: "A", DaysRemaining: 0}, {Name: "B", DaysRemaining: 0}},
			want:  50,
		},
		{
			name:  "floor",
			items: []domain.ExpiringItem{{Name: "A", DaysRemaining: 0}, {Name: "B", DaysRemaining: 2}, {Name: "C", DaysRemaining: 3}},
			want:  23,
		},
		{
			name:  "later only",
			items: []domain.ExpiringItem{{Name: "A", DaysRemaining: 3}},
			want:  10,
		},
		{
			name:  "empty",
			items: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := UrgencyScore(tt.items)
			assert.Equal(t, tt.want, score)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestUrgencyLevel(t *testing.T) {
	assert.Equal(t, domain.UrgencyLow, UrgencyLevel(10))
	assert.Equal(t, domain.UrgencyLow, UrgencyLevel(40))
	assert.Equal(t, domain.UrgencyMedium, UrgencyLevel(41))
	assert.Equal(t, domain.UrgencyMedium, UrgencyLevel(70))
	assert.Equal(t, domain.UrgencyHigh, UrgencyLevel(71))
}

func TestBuildAlert(t *testing.T) {
	alert := BuildAlert([]domain.ExpiringItem{{Name: "Milk", DaysRemaining: 0}, {Name: "Bread", DaysRemaining: 1}, {Name: "Cheese", DaysRemaining: 3}})

	assert.Equal(t, []string{
		"Milk - EXPIRES TODAY!",
		"Bread - Expires TOMORROW!",
		"Cheese - Expires in 3 days",
	}, alert.Lines)
	assert.Equal(t, 30, alert.UrgencyScore)
	assert.Equal(t, domain.UrgencyLow, alert.UrgencyLevel)
	assert.Len(t, alert.Items, 3)
}

func TestToFoodItemResponse(t *testing.T) {
	res := ToFoodItemResponse(itemExpiringIn("Milk", -2), today)

	assert.Equal(t, "Milk", res.ID)
	assert.Equal(t, "2024-01-13", res.PurchaseDate)
	assert.Equal(t, "2024-01-13", res.ExpiryDate)
	assert.Equal(t, -2, res.DaysRemaining)
	assert.Equal(t, domain.StatusExpired, res.Status)
}
