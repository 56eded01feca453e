package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"servicebooking/cmd"
	httpin "servicebooking/internal/adapters/in/http"
	"servicebooking/internal/adapters/out/postgres/bookingrepo"
	"servicebooking/internal/adapters/out/postgres/catalogrepo"
	"servicebooking/internal/adapters/out/postgres/customerrepo"
	"servicebooking/internal/adapters/out/postgres/notificationrepo"
	"servicebooking/internal/adapters/out/postgres/paymentrepo"
	"servicebooking/internal/adapters/out/postgres/providerrepo"
	"servicebooking/internal/adapters/out/postgres/ratingrepo"
	"servicebooking/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultRecoveryCodeTTL = 10 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.RecoveryStore(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RecoveryCodeTTL: defaultRecoveryCodeTTL,
	}

	if raw := os.Getenv("RECOVERY_CODE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid RECOVERY_CODE_TTL: %v", err)
		}
		config.RecoveryCodeTTL = ttl
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError is required so unique constraint violations surface as
	// gorm.ErrDuplicatedKey in the repositories.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&bookingrepo.BookingDTO{},
		&providerrepo.ProviderDTO{},
		&customerrepo.CustomerDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ServiceItemDTO{},
		&ratingrepo.RatingDTO{},
		&paymentrepo.PaymentDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Validator = httpin.NewRequestValidator()

	server := httpin.NewServer(app.CreateCommandHandlers(), app.CreateQueryHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
