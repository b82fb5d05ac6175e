package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"packline/cmd"
	httpserver "packline/internal/adapters/in/http"
	"packline/internal/adapters/out/postgres/intakerepo"
	"packline/internal/adapters/out/postgres/inventoryrepo"
	"packline/internal/adapters/out/postgres/orderreader"
	"packline/internal/adapters/out/postgres/skurepo"
	"packline/internal/adapters/out/postgres/taskrepo"
	"packline/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultBackfillBuffer  = 12
	defaultRefreshSchedule = "0 * * * * *"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateRefreshBacklogCommandHandler(),
		configs.BacklogRefreshSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		BackfillBuffer:         intEnvVariable("BACKFILL_BUFFER", defaultBackfillBuffer),
		BacklogRefreshSchedule: stringEnvVariable("BACKLOG_REFRESH_SCHEDULE", defaultRefreshSchedule),
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

func stringEnvVariable(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&inventoryrepo.LevelDTO{},
		&taskrepo.TaskDTO{},
		&taskrepo.TaskSourceDTO{},
		&taskrepo.CompletedTaskDTO{},
		&taskrepo.CompletedTaskSourceDTO{},
		&intakerepo.IntakeDTO{},
		&skurepo.SKUDTO{},
		&orderreader.OrderDTO{},
		&orderreader.OrderLineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpserver.NewServer(
		app.CreateAdvanceTaskCommandHandler(),
		app.CreateRevertTaskCommandHandler(),
		app.CreateAddContainerCommandHandler(),
		app.CreateSetInventoryCommandHandler(),
		app.CreateUpdateTaskNoteCommandHandler(),
		app.CreateRefreshBacklogCommandHandler(),
		app.CreateGetDashboardQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
