package food

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/entities"
	"FoodWasteLogger/internal/utils"
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, item NewFoodItem) (string, error)
		RemoveFoodItem(ctx context.Context, id string) (bool, error)
		ListFoodItems(ctx context.Context) []entities.FoodItem
		GetFoodItemByID(ctx context.Context, id string) (entities.FoodItem, error)
		ItemNames(ctx context.Context) []string
		Load(ctx context.Context) error
		Save(ctx context.Context) error
		Today() time.Time
	}

	// NewFoodItem carries validated input for AddFoodItem. Zero dates mean
	// "not specified".
	NewFoodItem struct {
		Name         string
		Category     string
		Quantity     float64
		PurchaseDate time.Time
		ExpiryDate   time.Time
	}

	foodService struct {
		mu             sync.RWMutex
		items          map[string]entities.FoodItem
		foodRepository FoodRepository
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository, now func() time.Time) FoodService {
	if now == nil {
		now = time.Now
	}
	return &foodService{
		items:          make(map[string]entities.FoodItem),
		foodRepository: foodRepository,
		now:            now,
	}
}

func (s *foodService) Today() time.Time {
	return utils.DateOf(s.now())
}

// AddFoodItem stores the item and persists the inventory. When persisting
// fails the item stays in memory and the id is returned with the error.
func (s *foodService) AddFoodItem(ctx context.Context, item NewFoodItem) (string, error) {
	now := s.now()

	purchaseDate := item.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = now
	}
	purchaseDate = utils.DateOf(purchaseDate)

	expiryDate := item.ExpiryDate
	if expiryDate.IsZero() {
		expiryDate = DefaultExpiry(item.Category, purchaseDate)
	}
	expiryDate = utils.DateOf(expiryDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID(item.Name, now)
	s.items[id] = entities.FoodItem{
		ID:           id,
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
	}

	return id, s.saveLocked(ctx)
}

func (s *foodService) RemoveFoodItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)

	return true, s.saveLocked(ctx)
}

func (s *foodService) ListFoodItems(ctx context.Context) []entities.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.FoodItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (entities.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return entities.FoodItem{}, domain.ErrFoodItemNotFound
	}
	return item, nil
}

// ItemNames returns the names of every item, sorted.
func (s *foodService) ItemNames(ctx context.Context) []string {
	items := s.ListFoodItems(ctx)
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	sort.Strings(names)
	return names
}

// Load replaces the in-memory inventory with the persisted one. On any
// error the inventory is left empty so startup is never blocked.
func (s *foodService) Load(ctx context.Context) error {
	items, err := s.foodRepository.LoadFoodItems(ctx, s.Today())

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.items = make(map[string]entities.FoodItem)
		return err
	}

	s.items = items
	log.Infof("Loaded %d food items from %s", len(items), s.foodRepository.DataFile())
	return nil
}

func (s *foodService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(ctx)
}

func (s *foodService) saveLocked(ctx context.Context) error {
	if err := s.foodRepository.SaveFoodItems(ctx, s.items); err != nil {
		log.Errorf("Could not save data: %v", err)
		return err
	}
	return nil
}

// newID derives the id from the normalized name and the Unix timestamp. Two
// items with the same name added within one second would collide, so a short
// random suffix is appended in that case.
func (s *foodService) newID(name string, now time.Time) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", "")) + strconv.FormatInt(now.Unix(), 10)

	id := base
	for {
		if _, exists := s.items[id]; !exists {
			return id
		}
		id = base + "-" + uuid.NewString()[:8]
	}
}
