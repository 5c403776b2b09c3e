package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/middleware/auth"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

type SaleHandler struct {
	logger      *zap.Logger
	saleService *usecase.SaleService
}

func NewSaleHandler(logger *zap.Logger, saleService *usecase.SaleService) *SaleHandler {
	return &SaleHandler{
		logger:      logger,
		saleService: saleService,
	}
}

type saleItemRequest struct {
	Label     string          `json:"label" validate:"required,min=1,max=255"`
	Quantity  int             `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type recordSaleRequest struct {
	CustomerID *int64            `json:"customer_id" validate:"omitempty,gt=0"`
	Currency   string            `json:"currency" validate:"omitempty,len=3"`
	Items      []saleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Record handles POST /api/v1/point-of-sale/:id/sales
func (h *SaleHandler) Record(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req recordSaleRequest
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

	input := usecase.RecordSaleInput{
		CustomerID: req.CustomerID,
		Currency:   req.Currency,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.SaleItemInput{
			Label:     item.Label,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	sale, err := h.saleService.Record(c.Request().Context(), posID, input)
	if err != nil {
		if errors.Is(err, domainErrors.ErrPointOfSaleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Point of sale not found",
				"code":  "POS_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to record sale", zap.Int64("pos_id", posID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to record sale",
		})
	}

	return c.JSON(http.StatusCreated, sale)
}

// List handles GET /api/v1/point-of-sale/:id/sales
func (h *SaleHandler) List(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var params entity.PaginationParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid pagination parameters",
			"code":  "INVALID_PARAMS",
		})
	}

	sales, meta, err := h.saleService.ListByPointOfSale(c.Request().Context(), posID, params)
	if err != nil {
		h.logger.Error("Failed to list sales", zap.Int64("pos_id", posID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list sales",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"sales":      sales,
		"pagination": meta,
	})
}
