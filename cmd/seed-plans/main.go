package main

import (
	"context"
	"errors"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/config"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/infrastructure/billing"
	"github.com/stockplus/stockplus-server/internal/infrastructure/database"
	"github.com/stockplus/stockplus-server/internal/usecase"
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

	// Run migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, logger)

	provider := billing.NewStripeProvider(logger)
	subscriptionService := usecase.NewSubscriptionService(repos.Plan, repos.Subscription, provider, logger)

	seeds := defaultPlans()
	if path := os.Getenv("PLANS_FILE"); path != "" {
		logger.Info("Loading plans from YAML", zap.String("path", path))
		seeds, err = loadPlansFromYAML(path)
		if err != nil {
			logger.Fatal("Failed to load plans", zap.Error(err))
		}
	}

	ctx := context.Background()

	plansSeeded := 0
	pricingsSeeded := 0
	for _, seed := range seeds {
		posLimit := seed.PosLimit
		input := usecase.CreatePlanInput{
			Name:        seed.Name,
			Description: seed.Description,
			GroupName:   seed.GroupName,
			PosLimit:    &posLimit,
			IsFreeTrial: seed.IsFreeTrial,
		}
		if seed.TrialDays > 0 {
			trialDays := seed.TrialDays
			input.TrialDays = &trialDays
		}

		plan, err := subscriptionService.CreatePlan(ctx, input)
		if err != nil {
			if errors.Is(err, domainErrors.ErrPlanNameTaken) {
				logger.Info("Plan already exists, skipping",
					zap.String("plan", seed.Name))
				continue
			}
			logger.Fatal("Failed to create plan",
				zap.String("plan", seed.Name),
				zap.Error(err))
		}
		plansSeeded++

		for _, ps := range seed.Pricings {
			amount, err := ps.amount()
			if err != nil {
				logger.Fatal("Invalid pricing",
					zap.String("plan", seed.Name),
					zap.Error(err))
			}

			if _, err := subscriptionService.CreatePricing(ctx, plan.ID, usecase.CreatePricingInput{
				Interval: ps.Interval,
				Price:    amount,
				Currency: ps.Currency,
			}); err != nil {
				logger.Fatal("Failed to create pricing",
					zap.String("plan", seed.Name),
					zap.String("interval", ps.Interval),
					zap.Error(err))
			}
			pricingsSeeded++
		}
	}

	logger.Info("Plan seeding completed",
		zap.Int("plans_seeded", plansSeeded),
		zap.Int("pricings_seeded", pricingsSeeded))
}
