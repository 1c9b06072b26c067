package config

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/internal/utils"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"
)

// ResolveDataPaths returns the inventory and backup file locations. DATA_DIR
// overrides the default ~/FoodWasteLogger folder; when that folder cannot be
// created the working directory is used instead.
func ResolveDataPaths() (string, string) {
	dir := utils.GetConfig("DATA_DIR")
	if dir == "" {
		dir = defaultDataDir()
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		log.Warnf("Could not create data directory %s: %v", dir, err)
		dir = workingDir()
	}

	dataFile := utils.GetConfigString("DATA_FILE", domain.InventoryFileName)
	backupFile := utils.GetConfigString("BACKUP_FILE", domain.InventoryBackupName)

	return joinIfRelative(dir, dataFile), joinIfRelative(dir, backupFile)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return workingDir()
	}
	return filepath.Join(home, domain.DefaultDataFolderName)
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func joinIfRelative(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
