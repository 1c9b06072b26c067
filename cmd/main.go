package main

import (
	"FoodWasteLogger/cmd/config"
	"FoodWasteLogger/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	dataFile, backupFile := config.ResolveDataPaths()
	services := config.NewServices(dataFile, backupFile, time.Now)
	config.OpenInventory(services)

	app, err := config.NewApp(services)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	alert := services.Notification.ScheduleStartupAlert(
		utils.GetConfigDuration("STARTUP_ALERT_DELAY", 500*time.Millisecond),
	)
	defer alert.Stop()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down")
		if err := services.Food.Save(context.Background()); err != nil {
			log.Errorf("Could not save data on shutdown: %v", err)
		}
		if err := app.Shutdown(); err != nil {
			log.Errorf("error shutting down: %v", err)
		}
	}()

	port := utils.GetConfigString("APP_PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
