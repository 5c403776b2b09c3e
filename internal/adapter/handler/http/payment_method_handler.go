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

type PaymentMethodHandler struct {
	logger               *zap.Logger
	paymentMethodService *usecase.PaymentMethodService
}

func NewPaymentMethodHandler(logger *zap.Logger, paymentMethodService *usecase.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		logger:               logger,
		paymentMethodService: paymentMethodService,
	}
}

type createPaymentMethodRequest struct {
	Name                     string `json:"name" validate:"required,min=1,max=255"`
	Description              string `json:"description" validate:"omitempty,max=1000"`
	RequiresConfirmation     bool   `json:"requires_confirmation"`
	ConfirmationInstructions string `json:"confirmation_instructions" validate:"omitempty,max=1000"`
}

type updatePaymentMethodRequest struct {
	Name                     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description              *string `json:"description" validate:"omitempty,max=1000"`
	IsActive                 *bool   `json:"is_active"`
	RequiresConfirmation     *bool   `json:"requires_confirmation"`
	ConfirmationInstructions *string `json:"confirmation_instructions" validate:"omitempty,max=1000"`
}

// Create handles POST /api/v1/point-of-sale/:id/payment-methods
func (h *PaymentMethodHandler) Create(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createPaymentMethodRequest
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

	pm, err := h.paymentMethodService.Create(c.Request().Context(), posID, usecase.CreatePaymentMethodInput{
		Name:                     req.Name,
		Description:              req.Description,
		RequiresConfirmation:     req.RequiresConfirmation,
		ConfirmationInstructions: req.ConfirmationInstructions,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrPointOfSaleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Point of sale not found",
				"code":  "POS_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to create payment method", zap.Int64("pos_id", posID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create payment method",
		})
	}

	return c.JSON(http.StatusCreated, pm)
}

// List handles GET /api/v1/point-of-sale/:id/payment-methods
func (h *PaymentMethodHandler) List(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.paymentMethodService.ListByPointOfSale(c.Request().Context(), posID)
	if err != nil {
		h.logger.Error("Failed to list payment methods", zap.Int64("pos_id", posID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list payment methods",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"payment_methods": items})
}

// Get handles GET /api/v1/point-of-sale/:id/payment-methods/:pmId
func (h *PaymentMethodHandler) Get(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	pmID, err := parseIDParam(c, "pmId")
	if err != nil {
		return err
	}

	pm, err := h.paymentMethodService.GetByID(c.Request().Context(), posID, pmID)
	if err != nil {
		return h.mapError(c, err, posID, pmID)
	}

	return c.JSON(http.StatusOK, pm)
}

// Update handles PUT /api/v1/point-of-sale/:id/payment-methods/:pmId
func (h *PaymentMethodHandler) Update(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	pmID, err := parseIDParam(c, "pmId")
	if err != nil {
		return err
	}

	var req updatePaymentMethodRequest
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

	pm, err := h.paymentMethodService.Update(c.Request().Context(), posID, pmID, usecase.UpdatePaymentMethodInput{
		Name:                     req.Name,
		Description:              req.Description,
		IsActive:                 req.IsActive,
		RequiresConfirmation:     req.RequiresConfirmation,
		ConfirmationInstructions: req.ConfirmationInstructions,
	})
	if err != nil {
		return h.mapError(c, err, posID, pmID)
	}

	return c.JSON(http.StatusOK, pm)
}

// ToggleStatus handles POST /api/v1/point-of-sale/:id/payment-methods/:pmId/toggle
func (h *PaymentMethodHandler) ToggleStatus(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	pmID, err := parseIDParam(c, "pmId")
	if err != nil {
		return err
	}

	pm, err := h.paymentMethodService.ToggleStatus(c.Request().Context(), posID, pmID)
	if err != nil {
		return h.mapError(c, err, posID, pmID)
	}

	return c.JSON(http.StatusOK, pm)
}

// Delete handles DELETE /api/v1/point-of-sale/:id/payment-methods/:pmId
func (h *PaymentMethodHandler) Delete(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	pmID, err := parseIDParam(c, "pmId")
	if err != nil {
		return err
	}

	if err := h.paymentMethodService.Delete(c.Request().Context(), posID, pmID); err != nil {
		return h.mapError(c, err, posID, pmID)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentMethodHandler) mapError(c echo.Context, err error, posID, pmID int64) error {
	switch {
	case errors.Is(err, domainErrors.ErrPaymentMethodNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Payment method not found",
			"code":  "PAYMENT_METHOD_NOT_FOUND",
		})
	case errors.Is(err, domainErrors.ErrPaymentMethodMismatch):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Payment method does not belong to this point of sale",
			"code":  "PAYMENT_METHOD_MISMATCH",
		})
	}
	h.logger.Error("Payment method operation failed",
		zap.Int64("pos_id", posID),
		zap.Int64("payment_method_id", pmID),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": "Payment method operation failed",
	})
}
