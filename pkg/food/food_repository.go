package food

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/entities"
	"FoodWasteLogger/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodRepository interface {
		LoadFoodItems(ctx context.Context, today time.Time) (map[string]entities.FoodItem, error)
		SaveFoodItems(ctx context.Context, items map[string]entities.FoodItem) error
		DataFile() string
		BackupFile() string
	}

	foodRepository struct {
		dataFile   string
		backupFile string
	}
)

func NewFoodRepository(dataFile, backupFile string) FoodRepository {
	return &foodRepository{
		dataFile:   dataFile,
		backupFile: backupFile,
	}
}

func (r *foodRepository) DataFile() string {
	return r.dataFile
}

func (r *foodRepository) BackupFile() string {
	return r.backupFile
}

// LoadFoodItems reads the inventory file. A missing file is an empty
// inventory. Dates that do not parse are repaired (today for the purchase
// date, today+7 for the expiry date); anything structurally wrong abandons
// the whole load with domain.ErrInventoryCorrupt.
func (r *foodRepository) LoadFoodItems(ctx context.Context, today time.Time) (map[string]entities.FoodItem, error) {
	items := make(map[string]entities.FoodItem)

	data, err := os.ReadFile(r.dataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return items, nil
		}
		return items, fmt.Errorf("read inventory %s: %w", r.dataFile, err)
	}

	var stored map[string]*entities.StoredFoodItem
	if err := json.Unmarshal(data, &stored); err != nil {
		return items, fmt.Errorf("%w: %v", domain.ErrInventoryCorrupt, err)
	}

	today = utils.DateOf(today)
	for id, record := range stored {
		if record == nil {
			return make(map[string]entities.FoodItem), fmt.Errorf("%w: item %q is null", domain.ErrInventoryCorrupt, id)
		}

		purchaseDate, err := utils.ParseDate(record.PurchaseDate)
		if err != nil {
			log.Warnf("item %s: repairing purchase date %q", id, record.PurchaseDate)
			purchaseDate = today
		}

		expiryDate, err := utils.ParseDate(record.ExpiryDate)
		if err != nil {
			log.Warnf("item %s: repairing expiry date %q", id, record.ExpiryDate)
			expiryDate = utils.AddDays(today, domain.RepairedExpiryDays)
		}

		items[id] = entities.FoodItem{
			ID:           id,
			Name:         record.Name,
			Category:     record.Category,
			Quantity:     record.Quantity,
			PurchaseDate: purchaseDate,
			ExpiryDate:   expiryDate,
		}
	}

	return items, nil
}

// SaveFoodItems writes the inventory. The previous contents of the data file
// are copied to the backup file first; a failed backup is only logged.
func (r *foodRepository) SaveFoodItems(ctx context.Context, items map[string]entities.FoodItem) error {
	stored := make(map[string]entities.StoredFoodItem, len(items))
	for id, item := range items {
		stored[id] = entities.StoredFoodItem{
			Name:         item.Name,
			Category:     item.Category,
			Quantity:     item.Quantity,
			PurchaseDate: utils.FormatDate(item.PurchaseDate),
			ExpiryDate:   utils.FormatDate(item.ExpiryDate),
		}
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	if _, err := os.Stat(r.dataFile); err == nil {
		if err := r.backup(); err != nil {
			log.Warnf("Could not create backup: %v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(r.dataFile), os.ModePerm); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	if err := os.WriteFile(r.dataFile, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	return nil
}

func (r *foodRepository) backup() error {
	if r.backupFile == "" {
		return nil
	}

	current, err := os.ReadFile(r.dataFile)
	if err != nil {
		return err
	}

	return os.WriteFile(r.backupFile, current, 0o644)
}
