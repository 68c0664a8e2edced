package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photoflow/cmd"
	"photoflow/internal/adapters/out/postgres/migrations"
	"photoflow/internal/adapters/out/postgres/subscriptionrepo"
	"photoflow/internal/observability"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()

	logger, err := observability.NewLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}

	err = run(ctx, configs, logger)
	if err != nil {
		logger.Error("photoflow stopped", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// run returns only after the started jobs have been stopped.
func run(ctx context.Context, configs cmd.Config, logger *zap.Logger) error {
	gormDB, err := openDatabase(ctx, configs, logger)
	if err != nil {
		return fmt.Errorf("database setup: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func openDatabase(ctx context.Context, configs cmd.Config, logger *zap.Logger) (*gorm.DB, error) {
	if err := migrations.Up(ctx, configs.DSN()); err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if configs.PlanCatalogSeed {
		n, seedErr := subscriptionrepo.SeedPlans(ctx, gormDB)
		if seedErr != nil {
			return nil, fmt.Errorf("seed plan catalog: %w", seedErr)
		}
		logger.Info("plan catalog seeded", zap.Int("plans", n))
	}

	return gormDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *zap.Logger) error {
	server, err := app.CreateHTTPServer(ctx)
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}
	e, err := server.NewEcho()
	if err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("http shutdown", zap.Error(shutdownErr))
		}
	}()

	logger.Info("http server listening", zap.String("port", port))
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
