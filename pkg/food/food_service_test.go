package food

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/internal/utils"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func newTestService(t *testing.T) (FoodService, FoodRepository) {
	t.Helper()
	repo, _, _ := newTestRepository(t)
	return NewFoodService(repo, fixedClock), repo
}

func TestAddFoodItem_DefaultsDatesFromShelfLife(t *testing.T) {
	ctx := context.Background()

	for _, category := range []string{"Dairy", "Meat", "Bakery", "Pantry", "Snacks"} {
		t.Run(category, func(t *testing.T) {
			svc, _ := newTestService(t)

			id, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Thing", Category: category, Quantity: 1})
			require.NoError(t, err)

			item, err := svc.GetFoodItemByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, date(2024, 1, 15), item.PurchaseDate)
			assert.Equal(t, ShelfLife(category), utils.DaysBetween(svc.Today(), item.ExpiryDate))
		})
	}
}

func TestAddFoodItem_KeepsExplicitDates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddFoodItem(ctx, NewFoodItem{
		Name:         "Yogurt",
		Category:     "Dairy",
		Quantity:     2,
		PurchaseDate: date(2024, 1, 10),
		ExpiryDate:   date(2024, 1, 30),
	})
	require.NoError(t, err)

	item, err := svc.GetFoodItemByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 10), item.PurchaseDate)
	assert.Equal(t, date(2024, 1, 30), item.ExpiryDate)
}

func TestAddFoodItem_ExpiryFromExplicitPurchaseDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Steak", Category: "Meat", Quantity: 1, PurchaseDate: date(2024, 1, 1)})
	require.NoError(t, err)

	item, err := svc.GetFoodItemByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 5), item.ExpiryDate)
}

func TestAddFoodItem_IDFromNameAndTimestamp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Cherry Tomato", Category: "Vegetables", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "cherrytomato1705314600", id)

	second, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Cherry Tomato", Category: "Vegetables", Quantity: 3})
	require.NoError(t, err)
	assert.NotEqual(t, id, second)
	assert.True(t, strings.HasPrefix(second, "cherrytomato1705314600-"))
	assert.Len(t, svc.ListFoodItems(ctx), 2)
}

func TestAddFoodItem_PersistsEveryMutation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Milk", Category: "Dairy", Quantity: 1})
	require.NoError(t, err)

	items, err := repo.LoadFoodItems(ctx, fixedNow)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddFoodItem_SaveFailureKeepsItemInMemory(t *testing.T) {
	dir := t.TempDir()
	svc := NewFoodService(NewFoodRepository(dir, filepath.Join(dir, "backup.json")), fixedClock)
	ctx := context.Background()

	id, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Milk", Category: "Dairy", Quantity: 1})

	require.ErrorIs(t, err, domain.ErrSaveFailed)
	assert.NotEmpty(t, id)
	_, getErr := svc.GetFoodItemByID(ctx, id)
	assert.NoError(t, getErr)
}

func TestRemoveFoodItem(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	id, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Banana", Category: "Fruits", Quantity: 6})
	require.NoError(t, err)

	removed, err := svc.RemoveFoodItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, svc.ListFoodItems(ctx))

	items, err := repo.LoadFoodItems(ctx, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.GetFoodItemByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestRemoveFoodItem_MissingIDLeavesInventoryUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Banana", Category: "Fruits", Quantity: 6})
	require.NoError(t, err)
	before := svc.ListFoodItems(ctx)

	removed, err := svc.RemoveFoodItem(ctx, "does-not-exist")

	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, before, svc.ListFoodItems(ctx))
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	repo, _, _ := newTestRepository(t)
	ctx := context.Background()

	svc := NewFoodService(repo, fixedClock)
	_, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Milk", Category: "Dairy", Quantity: 1.5})
	require.NoError(t, err)
	_, err = svc.AddFoodItem(ctx, NewFoodItem{Name: "Rice", Category: "Pantry", Quantity: 2, PurchaseDate: date(2023, 12, 1), ExpiryDate: date(2024, 5, 29)})
	require.NoError(t, err)
	require.NoError(t, svc.Save(ctx))

	reloaded := NewFoodService(repo, fixedClock)
	require.NoError(t, reloaded.Load(ctx))

	assert.ElementsMatch(t, svc.ListFoodItems(ctx), reloaded.ListFoodItems(ctx))
}

func TestLoad_CorruptFileStartsEmpty(t *testing.T) {
	repo, dataFile, _ := newTestRepository(t)
	ctx := context.Background()

	svc := NewFoodService(repo, fixedClock)
	_, err := svc.AddFoodItem(ctx, NewFoodItem{Name: "Milk", Category: "Dairy", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dataFile, []byte("garbage"), 0o644))

	err = svc.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrInventoryCorrupt)
	assert.Empty(t, svc.ListFoodItems(ctx))
}

func TestItemNames(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Spinach", "Cherry Tomato", "Basil"} {
		_, err := svc.AddFoodItem(ctx, NewFoodItem{Name: name, Category: "Vegetables", Quantity: 1})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Basil", "Cherry Tomato", "Spinach"}, svc.ItemNames(ctx))
}
