package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/config"
	"github.com/stockplus/stockplus-server/internal/infrastructure/billing"
	"github.com/stockplus/stockplus-server/internal/infrastructure/database"
	httpServer "github.com/stockplus/stockplus-server/internal/infrastructure/http"
	"github.com/stockplus/stockplus-server/internal/infrastructure/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Stripe
	billing.Init(cfg.Service.StripeSecretKey)

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, logger)

	// Initialize object storage
	s3Client, err := storage.NewClient(context.Background(), &cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	media := storage.NewMediaStorage(s3Client, &cfg.Storage, logger)

	// Initialize Redis for rate limiting
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	defer redisClient.Close()

	// Initialize server
	srv := httpServer.NewServer(cfg, logger, repos, media, redisClient)

	// Start server
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}
