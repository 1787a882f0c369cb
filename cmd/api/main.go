package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountUseCase "github.com/vidaplus/credit-ledger/internal/domain/usecase/account"
	"github.com/vidaplus/credit-ledger/internal/domain/usecase/gate"
	"github.com/vidaplus/credit-ledger/internal/domain/usecase/ledger"
	"github.com/vidaplus/credit-ledger/internal/domain/usecase/topup"

	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/generation"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/time"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := migration.NewManager(db, appLogger).MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and unit of work
	accountRepo := repository.NewAccountRepository(db, tp, appLogger)
	recordRepo := repository.NewRecordRepository(db, appLogger)
	uow := database.NewUnitOfWork(db, appLogger, tp)

	// Initialize the ledger core
	ledgerEngine := ledger.NewEngine(uow, tp, appLogger, ledger.Config{
		RechargeAmount:     cfg.Ledger.RechargeAmount,
		MaxConflictRetries: cfg.Ledger.MaxConflictRetries,
		ConflictRetryDelay: cfg.Ledger.ConflictRetryDelay,
	})
	consumptionGate := gate.NewGate(ledgerEngine, appLogger, "ai generation")
	topupApplier := topup.NewApplier(ledgerEngine, recordRepo, appLogger)
	accountService := accountUseCase.NewService(accountRepo, recordRepo, tp, appLogger, cfg.Ledger.StartingGrant)

	// External generation provider
	generator := generation.NewHTTPClient(generation.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: cfg.Provider.Timeout,
	}, appLogger)

	// Initialize API handlers
	accountHandler := handler.NewAccountHandler(accountService, ledgerEngine, tp, appLogger)
	generationHandler := handler.NewGenerationHandler(consumptionGate, generator, tp, appLogger, cfg.Provider.GenerationCost)
	paymentHandler := handler.NewPaymentHandler(topupApplier, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, accountHandler, generationHandler, paymentHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
