package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/middleware/auth"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

type SubscriptionHandler struct {
	logger              *zap.Logger
	subscriptionService *usecase.SubscriptionService
	customerService     *usecase.CustomerService
}

func NewSubscriptionHandler(
	logger *zap.Logger,
	subscriptionService *usecase.SubscriptionService,
	customerService *usecase.CustomerService,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		logger:              logger,
		subscriptionService: subscriptionService,
		customerService:     customerService,
	}
}

type subscribeRequest struct {
	PlanID   int64  `json:"plan_id" validate:"required,gt=0"`
	Interval string `json:"interval" validate:"required,oneof=day week month semester year"`
}

// Subscribe handles POST /api/v1/subscription
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
			"code":  "VALIDATION_FAILED",
		})
	}

	// Make sure a customer record backs the subscription.
	if _, err := h.customerService.GetOrCreate(c.Request().Context(), user.UserID, user.Email); err != nil {
		h.logger.Error("Failed to initialize customer",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to initialize customer account",
		})
	}

	sub, err := h.subscriptionService.Subscribe(c.Request().Context(), user.UserID, req.PlanID, req.Interval)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPlanNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Plan not found",
				"code":  "PLAN_NOT_FOUND",
			})
		case errors.Is(err, domainErrors.ErrSubscriptionExists):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "You already have a subscription",
				"code":  "SUBSCRIPTION_EXISTS",
			})
		case errors.Is(err, domainErrors.ErrInvalidInterval):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Unsupported billing interval",
				"code":  "INVALID_INTERVAL",
			})
		}
		h.logger.Error("Failed to subscribe",
			zap.Int64("user_id", user.UserID),
			zap.Int64("plan_id", req.PlanID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create subscription",
		})
	}

	return c.JSON(http.StatusCreated, sub)
}

// GetCurrent handles GET /api/v1/subscription/current
func (h *SubscriptionHandler) GetCurrent(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	sub, err := h.subscriptionService.GetForUser(c.Request().Context(), user.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrSubscriptionNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		h.logger.Error("Failed to get subscription",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve subscription information",
		})
	}

	return c.JSON(http.StatusOK, sub)
}

// Cancel handles DELETE /api/v1/subscription
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	sub, err := h.subscriptionService.Cancel(c.Request().Context(), user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrSubscriptionNotFound),
			errors.Is(err, domainErrors.ErrNoActiveSubscription):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "No active subscription to cancel",
				"code":  "NO_ACTIVE_SUBSCRIPTION",
			})
		}
		h.logger.Error("Failed to cancel subscription",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to cancel subscription",
		})
	}

	return c.JSON(http.StatusOK, sub)
}

// StartFreeTrial handles POST /api/v1/subscription/free-trial
func (h *SubscriptionHandler) StartFreeTrial(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	if _, err := h.customerService.GetOrCreate(c.Request().Context(), user.UserID, user.Email); err != nil {
		h.logger.Error("Failed to initialize customer",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to initialize customer account",
		})
	}

	sub, err := h.subscriptionService.StartFreeTrial(c.Request().Context(), user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPlanNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "No free trial plan available",
				"code":  "PLAN_NOT_FOUND",
			})
		case errors.Is(err, domainErrors.ErrSubscriptionExists):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "You already have a subscription",
				"code":  "SUBSCRIPTION_EXISTS",
			})
		}
		h.logger.Error("Failed to start free trial",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to start free trial",
		})
	}

	return c.JSON(http.StatusCreated, sub)
}

// Activate handles POST /api/v1/subscription/activate. It moves a pending
// subscription to active once the first payment is confirmed.
func (h *SubscriptionHandler) Activate(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	sub, err := h.subscriptionService.Activate(c.Request().Context(), user.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrSubscriptionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "No subscription to activate",
				"code":  "SUBSCRIPTION_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to activate subscription",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to activate subscription",
		})
	}

	return c.JSON(http.StatusOK, sub)
}

// ExpireOverdue handles POST /api/v1/internal/subscriptions/expire. It flips
// active subscriptions past their end date to expired and reports the count.
func (h *SubscriptionHandler) ExpireOverdue(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	expired, err := h.subscriptionService.ExpireOverdue(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to expire overdue subscriptions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to expire overdue subscriptions",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"expired": expired})
}
