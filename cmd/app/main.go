package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"marketplace/cmd"
	adapterhttp "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	var gormDB *gorm.DB
	if configs.StoreBackend == "postgres" {
		gormDB = mustOpenDB(configs)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	metrics.RegisterDefault()

	if configs.SeedDemoData {
		if err := app.CreateSeeder(logger).Run(context.Background()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	ttlHours, err := strconv.Atoi(envOr("NOTIFICATION_TTL_HOURS", "24"))
	if err != nil {
		log.Fatalf("NOTIFICATION_TTL_HOURS must be an integer: %v", err)
	}

	return cmd.Config{
		HTTPPort:     envOr("HTTP_PORT", "8080"),
		StoreBackend: envOr("STORE_BACKEND", "memory"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		SeedDemoData: envOr("SEED_DEMO_DATA", "false") == "true",

		StatsRefreshSchedule:        envOr("STATS_REFRESH_SCHEDULE", "0 */5 * * * *"),
		NotificationCleanupSchedule: envOr("NOTIFICATION_CLEANUP_SCHEDULE", "0 0 * * * *"),
		NotificationTTLHours:        ttlHours,
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.Use(adapterhttp.RequestLogger(logger))
	e.Use(adapterhttp.MetricsMiddleware())

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
