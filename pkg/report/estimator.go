package report

import (
	"FoodWasteLogger/domain"
	"math/rand"
)

// ConsumedEstimator stands in for consumption tracking, which the inventory
// does not record.
type ConsumedEstimator interface {
	EstimateConsumed(period domain.ReportPeriod) int
}

type ConsumedEstimatorFunc func(period domain.ReportPeriod) int

func (f ConsumedEstimatorFunc) EstimateConsumed(period domain.ReportPeriod) int {
	return f(period)
}

// FixedEstimator always reports n consumed items.
func FixedEstimator(n int) ConsumedEstimator {
	return ConsumedEstimatorFunc(func(domain.ReportPeriod) int { return n })
}

type randomEstimator struct{}

// NewRandomEstimator simulates 3-8 consumed items per week and 12-25 per
// month.
func NewRandomEstimator() ConsumedEstimator {
	return randomEstimator{}
}

func (randomEstimator) EstimateConsumed(period domain.ReportPeriod) int {
	if period == domain.ReportMonthly {
		return 12 + rand.Intn(14)
	}
	return 3 + rand.Intn(6)
}
