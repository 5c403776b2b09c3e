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

type InvitationHandler struct {
	logger            *zap.Logger
	invitationService *usecase.InvitationService
}

func NewInvitationHandler(logger *zap.Logger, invitationService *usecase.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		logger:            logger,
		invitationService: invitationService,
	}
}

type createInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type validateInvitationRequest struct {
	Token string `json:"token" validate:"required,len=64"`
}

// Create handles POST /api/v1/point-of-sale/:id/invitations
func (h *InvitationHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createInvitationRequest
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

	inv, err := h.invitationService.Create(c.Request().Context(), posID, user.UserID, req.Email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrPointOfSaleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Point of sale not found",
				"code":  "POS_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to create invitation",
			zap.Int64("pos_id", posID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create invitation",
		})
	}

	return c.JSON(http.StatusCreated, inv)
}

// List handles GET /api/v1/point-of-sale/:id/invitations
func (h *InvitationHandler) List(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	posID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.invitationService.ListByPointOfSale(c.Request().Context(), posID)
	if err != nil {
		h.logger.Error("Failed to list invitations", zap.Int64("pos_id", posID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list invitations",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"invitations": items})
}

// Validate handles POST /api/v1/invitations/validate
func (h *InvitationHandler) Validate(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req validateInvitationRequest
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

	inv, err := h.invitationService.Validate(c.Request().Context(), req.Token, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvitationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Invitation not found",
				"code":  "INVITATION_NOT_FOUND",
			})
		case errors.Is(err, domainErrors.ErrInvitationExpired):
			return c.JSON(http.StatusGone, echo.Map{
				"error": "Invitation has expired",
				"code":  "INVITATION_EXPIRED",
			})
		case errors.Is(err, domainErrors.ErrInvitationAlreadyValidated):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Invitation has already been used",
				"code":  "INVITATION_ALREADY_VALIDATED",
			})
		}
		h.logger.Error("Failed to validate invitation",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to validate invitation",
		})
	}

	return c.JSON(http.StatusOK, inv)
}
