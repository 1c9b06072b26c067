package domain

import (
	"errors"
)

const (
	// DateLayout is the calendar date format used on disk and over HTTP.
	DateLayout = "2006-01-02"

	DefaultShelfLifeDays  = 7
	DefaultExpiryHorizon  = 3
	RepairedExpiryDays    = 7
	AppName               = "Food Waste Logger"
	InventoryFileName     = "food_inventory.json"
	InventoryBackupName   = "food_inventory_backup.json"
	DefaultDataFolderName = "FoodWasteLogger"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedValidation     = "failed to validate request"

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
