package expiry

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/pkg/food"
	"context"
)

type (
	ExpiryService interface {
		GetSortedFoodItems(ctx context.Context) []domain.FoodItemResponse
		GetFoodItem(ctx context.Context, id string) (domain.FoodItemResponse, error)
		GetExpiringItems(ctx context.Context, horizon int) []domain.ExpiringItem
		GetExpiryAlert(ctx context.Context, horizon int) (domain.ExpiryAlert, error)
	}

	expiryService struct {
		foodService food.FoodService
	}
)

func NewExpiryService(foodService food.FoodService) ExpiryService {
	return &expiryService{
		foodService: foodService,
	}
}

func (s *expiryService) GetSortedFoodItems(ctx context.Context) []domain.FoodItemResponse {
	today := s.foodService.Today()
	items := SortItems(s.foodService.ListFoodItems(ctx), today)

	response := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, ToFoodItemResponse(item, today))
	}
	return response
}

func (s *expiryService) GetFoodItem(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	item, err := s.foodService.GetFoodItemByID(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ToFoodItemResponse(item, s.foodService.Today()), nil
}

func (s *expiryService) GetExpiringItems(ctx context.Context, horizon int) []domain.ExpiringItem {
	return ExpiringWithin(s.foodService.ListFoodItems(ctx), horizon, s.foodService.Today())
}

// GetExpiryAlert returns domain.ErrNoExpiringItems when nothing expires
// within the horizon.
func (s *expiryService) GetExpiryAlert(ctx context.Context, horizon int) (domain.ExpiryAlert, error) {
	items := s.GetExpiringItems(ctx, horizon)
	if len(items) == 0 {
		return domain.ExpiryAlert{}, domain.ErrNoExpiringItems
	}
	return BuildAlert(items), nil
}
