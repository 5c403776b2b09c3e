package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/middleware/auth"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

type ReportHandler struct {
	logger        *zap.Logger
	reportService *usecase.ReportService
}

func NewReportHandler(logger *zap.Logger, reportService *usecase.ReportService) *ReportHandler {
	return &ReportHandler{
		logger:        logger,
		reportService: reportService,
	}
}

// Dashboard handles GET /api/v1/reports/dashboard
func (h *ReportHandler) Dashboard(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		return err
	}

	dashboard, err := h.reportService.GetDashboard(c.Request().Context(), user.CompanyID, from, to)
	if err != nil {
		h.logger.Error("Failed to build dashboard",
			zap.Int64("company_id", user.CompanyID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build dashboard",
		})
	}

	return c.JSON(http.StatusOK, dashboard)
}

// Export handles POST /api/v1/reports/export
func (h *ReportHandler) Export(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		return err
	}

	file, url, err := h.reportService.Export(c.Request().Context(), user.CompanyID, user.UserID, from, to)
	if err != nil {
		h.logger.Error("Failed to export sales",
			zap.Int64("company_id", user.CompanyID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to export sales",
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"file":         file,
		"download_url": url,
	})
}

// parsePeriod reads the from/to query parameters as dates. The period
// defaults to the last 30 days.
func parsePeriod(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, badPeriod(c, "from")
		}
		from = parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, badPeriod(c, "to")
		}
		// Include the whole end day.
		to = parsed.AddDate(0, 0, 1)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, badPeriod(c, "to")
	}
	return from, to, nil
}

func badPeriod(c echo.Context, name string) error {
	if jsonErr := c.JSON(http.StatusBadRequest, echo.Map{
		"error": "Invalid " + name + " date, expected YYYY-MM-DD",
		"code":  "INVALID_PERIOD",
	}); jsonErr != nil {
		return jsonErr
	}
	return echo.ErrBadRequest
}
