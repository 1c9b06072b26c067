package config

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/internal/api/handlers"
	"FoodWasteLogger/internal/api/routes"
	"FoodWasteLogger/internal/utils"
	"FoodWasteLogger/internal/utils/mailing"
	"FoodWasteLogger/pkg/expiry"
	"FoodWasteLogger/pkg/food"
	"FoodWasteLogger/pkg/notification"
	"FoodWasteLogger/pkg/recipe"
	"FoodWasteLogger/pkg/report"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Services struct {
	Food         food.FoodService
	Expiry       expiry.ExpiryService
	Recipe       recipe.RecipeService
	Report       report.ReportService
	Notification notification.NotificationService
	Horizon      int
}

// NewServices wires repositories and services around one inventory file.
func NewServices(dataFile, backupFile string, now func() time.Time) *Services {
	horizon := utils.GetConfigInt("EXPIRY_HORIZON_DAYS", domain.DefaultExpiryHorizon)

	// Repository
	foodRepository := food.NewFoodRepository(dataFile, backupFile)
	recipeRepository := recipe.NewRecipeRepository()

	// Service
	foodService := food.NewFoodService(foodRepository, now)
	expiryService := expiry.NewExpiryService(foodService)
	recipeService := recipe.NewRecipeService(recipeRepository, foodService, expiryService)
	reportService := report.NewReportService(foodService, nil)

	notifiers := []notification.Notifier{notification.NewLogNotifier()}
	alertEmail := utils.GetConfig("ALERT_EMAIL")
	if alertEmail != "" && mailing.LoadMailConfig().Configured() {
		notifiers = append(notifiers, notification.NewMailNotifier(alertEmail, mailing.SendMail))
	}
	notificationService := notification.NewNotificationService(expiryService, horizon, notifiers...)

	return &Services{
		Food:         foodService,
		Expiry:       expiryService,
		Recipe:       recipeService,
		Report:       reportService,
		Notification: notificationService,
		Horizon:      horizon,
	}
}

// OpenInventory loads the persisted inventory. A failure leaves an empty
// inventory and is only logged so the application still starts.
func OpenInventory(services *Services) {
	if err := services.Food.Load(context.Background()); err != nil {
		log.Errorf("%s: %v", domain.MessageFailedLoadInventory, err)
	}
}

func NewApp(services *Services) (*fiber.App, error) {
	logDir := utils.GetConfigString("LOG_DIR", "./logs")

	// setting up logging and limiter
	err := os.MkdirAll(logDir, os.ModePerm)
	if err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}

	return NewAppWithLogOutput(services, file), nil
}

// NewAppWithLogOutput builds the fiber app with request logs written to out.
func NewAppWithLogOutput(services *Services, out io.Writer) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: domain.AppName,
	})
	validator := utils.Validate

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     out,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Handler
	foodHandler := handlers.NewFoodHandler(services.Food, services.Expiry, validator, services.Horizon)
	recipeHandler := handlers.NewRecipeHandler(services.Recipe, validator, services.Horizon)
	reportHandler := handlers.NewReportHandler(services.Report)

	// routes
	routesConfig := routes.Config{
		App:           app,
		FoodHandler:   foodHandler,
		RecipeHandler: recipeHandler,
		ReportHandler: reportHandler,
	}
	routesConfig.Setup()
	return app
}
