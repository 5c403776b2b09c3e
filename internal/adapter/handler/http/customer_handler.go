package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/middleware/auth"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

type CustomerHandler struct {
	logger          *zap.Logger
	customerService *usecase.CustomerService
}

func NewCustomerHandler(logger *zap.Logger, customerService *usecase.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		logger:          logger,
		customerService: customerService,
	}
}

// GetMe handles GET /api/v1/customers/me. The customer record is created on
// first access.
func (h *CustomerHandler) GetMe(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	cust, err := h.customerService.GetOrCreate(c.Request().Context(), user.UserID, user.Email)
	if err != nil {
		h.logger.Error("Failed to get customer",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get customer",
		})
	}

	return c.JSON(http.StatusOK, cust)
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	var params entity.PaginationParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid pagination parameters",
			"code":  "INVALID_PARAMS",
		})
	}

	customers, meta, err := h.customerService.List(c.Request().Context(), params)
	if err != nil {
		h.logger.Error("Failed to list customers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list customers",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"customers":  customers,
		"pagination": meta,
	})
}

// GetMyStripeID handles GET /api/v1/customers/me/stripe, provisioning the
// billing customer on demand.
func (h *CustomerHandler) GetMyStripeID(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	cust, err := h.customerService.EnsureStripeID(c.Request().Context(), user.UserID, user.Email)
	if err != nil {
		h.logger.Error("Failed to provision billing customer",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error": "Failed to provision billing customer",
			"code":  "BILLING_UNAVAILABLE",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stripe_id": cust.StripeID,
	})
}

// DeactivateMe handles DELETE /api/v1/customers/me
func (h *CustomerHandler) DeactivateMe(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	cust, err := h.customerService.Deactivate(c.Request().Context(), user.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Customer not found",
				"code":  "CUSTOMER_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to deactivate customer",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to deactivate customer",
		})
	}

	return c.JSON(http.StatusOK, cust)
}
