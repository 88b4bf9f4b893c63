package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fieldops/cmd"
	httpadapter "fieldops/internal/adapters/in/http"
	"fieldops/internal/adapters/out/postgres/blockedtimerepo"
	"fieldops/internal/adapters/out/postgres/jobrepo"
	"fieldops/internal/adapters/out/postgres/workerrepo"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	providerID, err := kernel.UUIDFromString(configs.ProviderID)
	if err != nil {
		log.Fatalf("Invalid PROVIDER_ID: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetDailyScheduleQueryHandler(), providerID, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		ProviderID: goDotEnvVariable("PROVIDER_ID"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.JobAssignmentDTO{},
		&workerrepo.WorkerDTO{},
		&blockedtimerepo.BlockedTimeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateJobCommandHandler(),
		app.CreateCreateWorkerCommandHandler(),
		app.CreateRescheduleJobCommandHandler(),
		app.CreateChangeJobStatusCommandHandler(),
		app.CreateRecordJobValueCommandHandler(),
		app.CreateCreateBlockedTimeCommandHandler(),
		app.CreateRemoveBlockedTimeCommandHandler(),
		app.CreateGetDailyScheduleQueryHandler(),
		app.CreateGetMonthlyStatsQueryHandler(),
		app.CreateGetAllWorkersQueryHandler(),
		app.CreateGetBlockedOverlaysQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
