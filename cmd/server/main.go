package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledgerbook/backend/docs"
	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/config"
	"github.com/ledgerbook/backend/internal/database"
	eventskafka "github.com/ledgerbook/backend/internal/events/kafka"
	"github.com/ledgerbook/backend/internal/handlers"
	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/storage"
	"github.com/ledgerbook/backend/internal/storage/memory"
	"github.com/ledgerbook/backend/internal/storage/postgres"
	"go.uber.org/zap"
)

// @title Ledger Book API
// @version 1.0
// @description Multi-tenant bookkeeping API: customers, credit/debit ledger entries, balances and statistics.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	// Initialize config
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	// Initialize Swagger docs
	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	// Initialize storage
	var (
		store storage.Store
		ping  func(context.Context) error
	)
	switch cfg.Database.Driver {
	case "memory":
		zl.Warn("using in-memory store, data is lost on restart")
		store = memory.NewMemoryStore()
	default:
		db, err := database.Open(startCtx, cfg.Database, zl.Named("store"))
		if err != nil {
			zl.Fatal("failed to open database", zap.Error(err))
		}
		defer db.Close()

		if err := database.Migrate(startCtx, db); err != nil {
			zl.Fatal("failed to apply schema", zap.Error(err))
		}
		store = postgres.NewPostgresStore(db)
		ping = db.PingContext
	}

	redisClient := database.InitRedis(startCtx, cfg.Redis, zl.Named("redis"))
	if redisClient != nil {
		defer redisClient.Close()
	}

	publisher := eventskafka.NewFromConfig(cfg.Kafka, zl)
	if closer, ok := publisher.(*eventskafka.Publisher); ok {
		defer closer.Close()
	}

	// Initialize services
	hasher := auth.NewPasswordHasher(cfg.Argon2)
	tokens := auth.NewTokenService(cfg.JWT, auth.NewRevocationList(redisClient))

	router := handlers.NewRouter(handlers.RouterConfig{
		Auth:           services.NewAuthService(store, hasher, tokens, zl),
		Customers:      services.NewCustomerService(store, publisher, zl),
		Ledger:         services.NewLedgerService(store, publisher, cfg.Pagination.PageSize, zl),
		Logger:         zl,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Ping:           ping,
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		zl.Info("server starting", zap.String("addr", server.Addr), zap.String("store", cfg.Database.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server stopped")
}
