package report

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/entities"
	"FoodWasteLogger/internal/utils"
	"FoodWasteLogger/pkg/expiry"
	"FoodWasteLogger/pkg/food"
	"context"
	"sort"
	"time"
)

type (
	ReportService interface {
		GenerateReport(ctx context.Context, period domain.ReportPeriod) (domain.ReportData, error)
	}

	reportService struct {
		foodService food.FoodService
		estimator   ConsumedEstimator
	}
)

func NewReportService(foodService food.FoodService, estimator ConsumedEstimator) ReportService {
	if estimator == nil {
		estimator = NewRandomEstimator()
	}
	return &reportService{
		foodService: foodService,
		estimator:   estimator,
	}
}

func (s *reportService) GenerateReport(ctx context.Context, period domain.ReportPeriod) (domain.ReportData, error) {
	if _, err := domain.ParseReportPeriod(string(period)); err != nil {
		return domain.ReportData{}, err
	}
	return Generate(s.foodService.ListFoodItems(ctx), period, s.foodService.Today(), s.estimator), nil
}

// Generate summarizes the items purchased within the trailing window of
// period. Total items include the estimated consumed items.
func Generate(items []entities.FoodItem, period domain.ReportPeriod, today time.Time, estimator ConsumedEstimator) domain.ReportData {
	today = utils.DateOf(today)
	startDate := utils.AddDays(today, -period.Days())

	selected := make([]entities.FoodItem, 0)
	for _, item := range items {
		if !item.PurchaseDate.Before(startDate) {
			selected = append(selected, item)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if !selected[i].PurchaseDate.Equal(selected[j].PurchaseDate) {
			return selected[i].PurchaseDate.Before(selected[j].PurchaseDate)
		}
		return selected[i].Name < selected[j].Name
	})

	reportItems := make([]domain.ReportItem, 0, len(selected))
	expired := 0
	for _, item := range selected {
		status := domain.ReportStatusActive
		if expiry.DaysRemaining(item, today) < 0 {
			status = domain.ReportStatusExpired
			expired++
		}

		reportItems = append(reportItems, domain.ReportItem{
			Name:         item.Name,
			Category:     item.Category,
			Status:       status,
			PurchaseDate: utils.FormatDate(item.PurchaseDate),
			ExpiryDate:   utils.FormatDate(item.ExpiryDate),
		})
	}

	consumed := estimator.EstimateConsumed(period)
	total := len(selected) + consumed

	var waste float64
	if total > 0 {
		waste = float64(expired) / float64(total) * 100
	}

	return domain.ReportData{
		Period:          period,
		PeriodName:      period.Name(),
		StartDate:       utils.FormatDate(startDate),
		EndDate:         utils.FormatDate(today),
		TotalItems:      total,
		ExpiredItems:    expired,
		ConsumedItems:   consumed,
		WastePercentage: waste,
		Items:           reportItems,
	}
}
