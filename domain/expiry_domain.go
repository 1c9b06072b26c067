package domain

import (
	"errors"
)

const (
	StatusExpiringSoon ExpiryStatus = "EXPIRING_SOON"
	StatusExpired      ExpiryStatus = "EXPIRED"
	StatusGood         ExpiryStatus = "GOOD"

	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

type (
	ExpiringItem struct {
		Name          string `json:"name"`
		DaysRemaining int    `json:"days_remaining"`
	}

	// ExpiryAlert is the startup / on-demand summary of items about to expire.
	ExpiryAlert struct {
		Items        []ExpiringItem `json:"items"`
		UrgencyScore int            `json:"urgency_score"`
		UrgencyLevel string         `json:"urgency_level"`
		Lines        []string       `json:"lines"`
	}
)

var (
	ErrNoExpiringItems = errors.New("no items expiring soon")
)
