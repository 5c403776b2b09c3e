package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/middleware/auth"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

type PointOfSaleHandler struct {
	logger     *zap.Logger
	posService *usecase.PointOfSaleService
}

func NewPointOfSaleHandler(logger *zap.Logger, posService *usecase.PointOfSaleService) *PointOfSaleHandler {
	return &PointOfSaleHandler{
		logger:     logger,
		posService: posService,
	}
}

type createPointOfSaleRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Type         string `json:"type" validate:"omitempty,oneof=store warehouse online"`
	OpeningHours string `json:"opening_hours" validate:"omitempty,max=100"`
	ClosingHours string `json:"closing_hours" validate:"omitempty,max=100"`
	IsDefault    bool   `json:"is_default"`
}

type updatePointOfSaleRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Type         *string `json:"type" validate:"omitempty,oneof=store warehouse online"`
	OpeningHours *string `json:"opening_hours" validate:"omitempty,max=100"`
	ClosingHours *string `json:"closing_hours" validate:"omitempty,max=100"`
	IsActive     *bool   `json:"is_active"`
	IsDefault    *bool   `json:"is_default"`
}

type addCollaboratorRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// Create handles POST /api/v1/point-of-sale
func (h *PointOfSaleHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req createPointOfSaleRequest
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

	pos, err := h.posService.Create(c.Request().Context(), user.UserID, user.CompanyID, usecase.CreatePointOfSaleInput{
		Name:         req.Name,
		Type:         req.Type,
		OpeningHours: req.OpeningHours,
		ClosingHours: req.ClosingHours,
		IsDefault:    req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrPosLimitReached) {
			return c.JSON(http.StatusForbidden, echo.Map{
				"error": "Your plan does not allow more points of sale",
				"code":  "POS_LIMIT_REACHED",
			})
		}
		h.logger.Error("Failed to create point of sale", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create point of sale",
		})
	}

	return c.JSON(http.StatusCreated, pos)
}

// List handles GET /api/v1/point-of-sale
func (h *PointOfSaleHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	items, err := h.posService.ListByCompany(c.Request().Context(), user.CompanyID)
	if err != nil {
		h.logger.Error("Failed to list points of sale", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list points of sale",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"points_of_sale": items})
}

// Get handles GET /api/v1/point-of-sale/:id
func (h *PointOfSaleHandler) Get(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	pos, err := h.posService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrPointOfSaleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Point of sale not found",
				"code":  "POS_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to get point of sale", zap.Int64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get point of sale",
		})
	}

	return c.JSON(http.StatusOK, pos)
}

// Update handles PUT /api/v1/point-of-sale/:id
func (h *PointOfSaleHandler) Update(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updatePointOfSaleRequest
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

	pos, err := h.posService.Update(c.Request().Context(), id, usecase.UpdatePointOfSaleInput{
		Name:         req.Name,
		Type:         req.Type,
		OpeningHours: req.OpeningHours,
		ClosingHours: req.ClosingHours,
		IsActive:     req.IsActive,
		IsDefault:    req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrPointOfSaleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Point of sale not found",
				"code":  "POS_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to update point of sale", zap.Int64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update point of sale",
		})
	}

	return c.JSON(http.StatusOK, pos)
}

// Delete handles DELETE /api/v1/point-of-sale/:id
func (h *PointOfSaleHandler) Delete(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.posService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrPointOfSaleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Point of sale not found",
				"code":  "POS_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to delete point of sale", zap.Int64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete point of sale",
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// AddCollaborator handles POST /api/v1/point-of-sale/:id/collaborators
func (h *PointOfSaleHandler) AddCollaborator(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req addCollaboratorRequest
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

	if err := h.posService.AddCollaborator(c.Request().Context(), id, req.UserID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPointOfSaleNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Point of sale not found",
				"code":  "POS_NOT_FOUND",
			})
		case errors.Is(err, domainErrors.ErrCollaboratorAlreadyAdded):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "User already collaborates on this point of sale",
				"code":  "COLLABORATOR_EXISTS",
			})
		}
		h.logger.Error("Failed to add collaborator", zap.Int64("pos_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to add collaborator",
		})
	}

	return c.NoContent(http.StatusCreated)
}

// RemoveCollaborator handles DELETE /api/v1/point-of-sale/:id/collaborators/:userId
func (h *PointOfSaleHandler) RemoveCollaborator(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	if err := h.posService.RemoveCollaborator(c.Request().Context(), id, userID); err != nil {
		h.logger.Error("Failed to remove collaborator",
			zap.Int64("pos_id", id),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to remove collaborator",
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCollaborators handles GET /api/v1/point-of-sale/:id/collaborators
func (h *PointOfSaleHandler) ListCollaborators(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.posService.ListCollaborators(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("Failed to list collaborators", zap.Int64("pos_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list collaborators",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"collaborators": items})
}

// parseIDParam reads a positive integer path parameter. On failure the 400
// response is already written and the returned error only stops the handler.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if jsonErr := c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid " + name + " parameter",
			"code":  "INVALID_PARAM",
		}); jsonErr != nil {
			return 0, jsonErr
		}
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
