package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	handlers "github.com/stockplus/stockplus-server/internal/adapter/handler/http"
	"github.com/stockplus/stockplus-server/internal/config"
	"github.com/stockplus/stockplus-server/internal/infrastructure/billing"
	"github.com/stockplus/stockplus-server/internal/infrastructure/database"
	"github.com/stockplus/stockplus-server/internal/infrastructure/mailer"
	"github.com/stockplus/stockplus-server/internal/infrastructure/storage"
	"github.com/stockplus/stockplus-server/internal/middleware/auth"
	"github.com/stockplus/stockplus-server/internal/middleware/ratelimit"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
	media  *storage.MediaStorage
	redis  *redis.Client
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	repos *database.Repositories,
	media *storage.MediaStorage,
	redisClient *redis.Client,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
		media:  media,
		redis:  redisClient,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Infrastructure adapters
	stripeProvider := billing.NewStripeProvider(s.logger)
	invitationMailer := mailer.NewSMTPMailer(&s.config.SMTP, s.config.Service.ClientURL, s.logger)

	// Services
	posService := usecase.NewPointOfSaleService(s.repos.PointOfSale, s.repos.Subscription, s.repos.Plan, s.logger)
	paymentMethodService := usecase.NewPaymentMethodService(s.repos.PaymentMethod, s.repos.PointOfSale, s.logger)
	customerService := usecase.NewCustomerService(s.repos.Customer, stripeProvider, s.logger)
	subscriptionService := usecase.NewSubscriptionService(s.repos.Plan, s.repos.Subscription, stripeProvider, s.logger)
	invitationService := usecase.NewInvitationService(s.repos.Invitation, s.repos.PointOfSale, posService, invitationMailer, s.config.Service.InvitationTTL, s.logger)
	saleService := usecase.NewSaleService(s.repos.Sale, s.repos.PointOfSale, s.logger)
	reportService := usecase.NewReportService(s.repos.Sale, s.repos.MediaFile, s.media, s.logger)
	mediaService := usecase.NewMediaService(s.repos.MediaFile, s.media, s.logger)

	// Handlers
	posHandler := handlers.NewPointOfSaleHandler(s.logger, posService)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(s.logger, paymentMethodService)
	plansHandler := handlers.NewPlansHandler(s.logger, subscriptionService)
	subscriptionHandler := handlers.NewSubscriptionHandler(s.logger, subscriptionService, customerService)
	customerHandler := handlers.NewCustomerHandler(s.logger, customerService)
	invitationHandler := handlers.NewInvitationHandler(s.logger, invitationService)
	saleHandler := handlers.NewSaleHandler(s.logger, saleService)
	reportHandler := handlers.NewReportHandler(s.logger, reportService)
	mediaHandler := handlers.NewMediaHandler(s.logger, mediaService)

	// JWT middleware configuration
	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
		},
	}

	// API v1 routes
	v1 := s.echo.Group("/api/v1")
	v1.Use(ratelimit.Middleware(ratelimit.Config{
		Redis:  s.redis,
		Logger: s.logger,
		Limit:  s.config.Redis.RateLimit,
		Window: s.config.Redis.RateLimitWindow,
	}))

	// Public routes (no authentication required)
	// Plans & pricing - public for browsing
	v1.GET("/subscription/plan", plansHandler.List)
	v1.GET("/subscription/plan/:id", plansHandler.Get)
	v1.GET("/subscription/plan/:id/pricings", plansHandler.ListPricings)

	// Protected routes (require JWT authentication)
	protected := v1.Group("", auth.JWTMiddleware(jwtConfig))

	// Plan administration is restricted to managers
	planAdmin := protected.Group("/subscription/plan", auth.RoleBasedAccess("manager"))
	planAdmin.POST("", plansHandler.Create)
	planAdmin.PUT("/:id", plansHandler.Update)
	planAdmin.DELETE("/:id", plansHandler.Delete)
	planAdmin.POST("/:id/pricings", plansHandler.CreatePricing)

	// Subscriptions
	protected.POST("/subscription", subscriptionHandler.Subscribe)
	protected.GET("/subscription/current", subscriptionHandler.GetCurrent)
	protected.DELETE("/subscription", subscriptionHandler.Cancel)
	protected.POST("/subscription/free-trial", subscriptionHandler.StartFreeTrial)
	protected.POST("/subscription/activate", subscriptionHandler.Activate)

	// Maintenance
	internal := protected.Group("/internal", auth.RoleBasedAccess("manager"))
	internal.POST("/subscriptions/expire", subscriptionHandler.ExpireOverdue)

	// Customers
	protected.GET("/customers/me", customerHandler.GetMe)
	protected.GET("/customers/me/stripe", customerHandler.GetMyStripeID)
	protected.DELETE("/customers/me", customerHandler.DeactivateMe)
	protected.GET("/customers", customerHandler.List, auth.RoleBasedAccess("manager"))

	// Points of sale
	pos := protected.Group("/point-of-sale")
	pos.POST("", posHandler.Create)
	pos.GET("", posHandler.List)
	pos.GET("/:id", posHandler.Get)
	pos.PUT("/:id", posHandler.Update)
	pos.DELETE("/:id", posHandler.Delete)

	// Collaborators
	pos.GET("/:id/collaborators", posHandler.ListCollaborators)
	pos.POST("/:id/collaborators", posHandler.AddCollaborator)
	pos.DELETE("/:id/collaborators/:userId", posHandler.RemoveCollaborator)

	// Payment methods
	pos.POST("/:id/payment-methods", paymentMethodHandler.Create)
	pos.GET("/:id/payment-methods", paymentMethodHandler.List)
	pos.GET("/:id/payment-methods/:pmId", paymentMethodHandler.Get)
	pos.PUT("/:id/payment-methods/:pmId", paymentMethodHandler.Update)
	pos.POST("/:id/payment-methods/:pmId/toggle", paymentMethodHandler.ToggleStatus)
	pos.DELETE("/:id/payment-methods/:pmId", paymentMethodHandler.Delete)

	// Invitations
	pos.POST("/:id/invitations", invitationHandler.Create)
	pos.GET("/:id/invitations", invitationHandler.List)
	protected.POST("/invitations/validate", invitationHandler.Validate)

	// Sales
	pos.POST("/:id/sales", saleHandler.Record)
	pos.GET("/:id/sales", saleHandler.List)

	// Reports
	protected.GET("/reports/dashboard", reportHandler.Dashboard)
	protected.POST("/reports/export", reportHandler.Export)

	// Media
	protected.POST("/media", mediaHandler.Upload)
	protected.GET("/media", mediaHandler.List)
	protected.GET("/media/:id/url", mediaHandler.DownloadURL)
}
