package domain

import (
	"errors"
)

const (
	ReportWeekly  ReportPeriod = "weekly"
	ReportMonthly ReportPeriod = "monthly"

	ReportStatusActive  = "Active"
	ReportStatusExpired = "Expired"
)

var (
	MessageSuccessGenerateReport = "report generated successfully"
	MessageFailedGenerateReport  = "failed to generate report"

	ErrInvalidReportPeriod = errors.New("report period must be weekly or monthly")
)

type (
	ReportPeriod string

	ReportItem struct {
		Name         string `json:"name"`
		Category     string `json:"category"`
		Status       string `json:"status"`
		PurchaseDate string `json:"purchase_date"`
		ExpiryDate   string `json:"expiry_date"`
	}

	ReportData struct {
		Period          ReportPeriod `json:"period"`
		PeriodName      string       `json:"period_name"`
		StartDate       string       `json:"start_date"`
		EndDate         string       `json:"end_date"`
		TotalItems      int          `json:"total_items"`
		ExpiredItems    int          `json:"expired_items"`
		ConsumedItems   int          `json:"consumed_items"`
		WastePercentage float64      `json:"waste_percentage"`
		Items           []ReportItem `json:"items"`
	}
)

// Days is the length of the trailing window.
func (p ReportPeriod) Days() int {
	if p == ReportMonthly {
		return 30
	}
	return 7
}

func (p ReportPeriod) Name() string {
	if p == ReportMonthly {
		return "Monthly"
	}
	return "Weekly"
}

func ParseReportPeriod(s string) (ReportPeriod, error) {
	switch ReportPeriod(s) {
	case ReportWeekly, ReportMonthly:
		return ReportPeriod(s), nil
	default:
		return "", ErrInvalidReportPeriod
	}
}
