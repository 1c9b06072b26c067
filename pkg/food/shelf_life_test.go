package food

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShelfLife(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{"Dairy", 7},
		{"Meat", 4},
		{"Vegetables", 7},
		{"Fruits", 7},
		{"Bakery", 5},
		{"Pantry", 180},
		{"Frozen", 7},
		{"", 7},
		{"dairy", 7},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, ShelfLife(tt.category))
		})
	}
}

func TestCategories_KeepsTableOrder(t *testing.T) {
	categories := Categories()

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Dairy", "Meat", "Vegetables", "Fruits", "Bakery", "Pantry"}, names)
	assert.Equal(t, 180, categories[5].ShelfLifeDays)
}

func TestDefaultExpiry(t *testing.T) {
	purchase := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), DefaultExpiry("Meat", purchase))
	assert.Equal(t, time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC), DefaultExpiry("Unknown", purchase))
	assert.True(t, IsKnownCategory("Bakery"))
	assert.False(t, IsKnownCategory("Snacks"))
}
