package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

type PlansHandler struct {
	logger              *zap.Logger
	subscriptionService *usecase.SubscriptionService
}

func NewPlansHandler(logger *zap.Logger, subscriptionService *usecase.SubscriptionService) *PlansHandler {
	return &PlansHandler{
		logger:              logger,
		subscriptionService: subscriptionService,
	}
}

type createPlanRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=255"`
	GroupName   string `json:"group_name" validate:"omitempty,max=150"`
	PosLimit    *int   `json:"pos_limit" validate:"omitempty,gte=0"`
	IsFreeTrial bool   `json:"is_free_trial"`
	TrialDays   *int   `json:"trial_days" validate:"omitempty,gt=0"`
}

type updatePlanRequest struct {
	Description *string `json:"description" validate:"omitempty,max=255"`
	GroupName   *string `json:"group_name" validate:"omitempty,max=150"`
	Active      *bool   `json:"active"`
	PosLimit    *int    `json:"pos_limit" validate:"omitempty,gte=0"`
	TrialDays   *int    `json:"trial_days" validate:"omitempty,gt=0"`
}

type createPricingRequest struct {
	Interval string          `json:"interval" validate:"required,oneof=day week month semester year"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Currency string          `json:"currency" validate:"omitempty,len=3"`
}

// List handles GET /api/v1/subscription/plan. Public so prospects can browse
// the catalogue.
func (h *PlansHandler) List(c echo.Context) error {
	plans, err := h.subscriptionService.ListPlans(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list plans", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list plans",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"plans": plans})
}

// Get handles GET /api/v1/subscription/plan/:id
func (h *PlansHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	plan, err := h.subscriptionService.GetPlan(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Plan not found",
				"code":  "PLAN_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to get plan", zap.Int64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get plan",
		})
	}

	return c.JSON(http.StatusOK, plan)
}

// Create handles POST /api/v1/subscription/plan
func (h *PlansHandler) Create(c echo.Context) error {
	var req createPlanRequest
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

	plan, err := h.subscriptionService.CreatePlan(c.Request().Context(), usecase.CreatePlanInput{
		Name:        req.Name,
		Description: req.Description,
		GroupName:   req.GroupName,
		PosLimit:    req.PosLimit,
		IsFreeTrial: req.IsFreeTrial,
		TrialDays:   req.TrialDays,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrPlanNameTaken) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "A plan with this name already exists",
				"code":  "PLAN_NAME_TAKEN",
			})
		}
		h.logger.Error("Failed to create plan", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create plan",
		})
	}

	return c.JSON(http.StatusCreated, plan)
}

// Update handles PUT /api/v1/subscription/plan/:id
func (h *PlansHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updatePlanRequest
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

	plan, err := h.subscriptionService.UpdatePlan(c.Request().Context(), id, usecase.UpdatePlanInput{
		Description: req.Description,
		GroupName:   req.GroupName,
		Active:      req.Active,
		PosLimit:    req.PosLimit,
		TrialDays:   req.TrialDays,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Plan not found",
				"code":  "PLAN_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to update plan", zap.Int64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update plan",
		})
	}

	return c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /api/v1/subscription/plan/:id
func (h *PlansHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.subscriptionService.DeletePlan(c.Request().Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Plan not found",
				"code":  "PLAN_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to delete plan", zap.Int64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete plan",
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// CreatePricing handles POST /api/v1/subscription/plan/:id/pricings
func (h *PlansHandler) CreatePricing(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createPricingRequest
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

	pricing, err := h.subscriptionService.CreatePricing(c.Request().Context(), id, usecase.CreatePricingInput{
		Interval: req.Interval,
		Price:    req.Price,
		Currency: req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPlanNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Plan not found",
				"code":  "PLAN_NOT_FOUND",
			})
		case errors.Is(err, domainErrors.ErrInvalidInterval):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Unsupported billing interval",
				"code":  "INVALID_INTERVAL",
			})
		}
		h.logger.Error("Failed to create pricing", zap.Int64("plan_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create pricing",
		})
	}

	return c.JSON(http.StatusCreated, pricing)
}

// ListPricings handles GET /api/v1/subscription/plan/:id/pricings
func (h *PlansHandler) ListPricings(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	pricings, err := h.subscriptionService.ListPricings(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Plan not found",
				"code":  "PLAN_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to list pricings", zap.Int64("plan_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list pricings",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"pricings": pricings})
}
