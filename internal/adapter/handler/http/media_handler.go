package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/middleware/auth"
	"github.com/stockplus/stockplus-server/internal/usecase"
)

// maxUploadSize caps a single media upload at 10 MiB.
const maxUploadSize = 10 << 20

type MediaHandler struct {
	logger       *zap.Logger
	mediaService *usecase.MediaService
}

func NewMediaHandler(logger *zap.Logger, mediaService *usecase.MediaService) *MediaHandler {
	return &MediaHandler{
		logger:       logger,
		mediaService: mediaService,
	}
}

// Upload handles POST /api/v1/media
func (h *MediaHandler) Upload(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing file field",
			"code":  "MISSING_FILE",
		})
	}
	if fileHeader.Size > maxUploadSize {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{
			"error": "File exceeds the upload size limit",
			"code":  "FILE_TOO_LARGE",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	body, err := io.ReadAll(io.LimitReader(src, maxUploadSize))
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to read uploaded file",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := h.mediaService.Upload(c.Request().Context(), user.UserID, fileHeader.Filename, contentType, body)
	if err != nil {
		if errors.Is(err, domainErrors.ErrObjectExists) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "An object already exists at this location",
				"code":  "OBJECT_EXISTS",
			})
		}
		h.logger.Error("Failed to upload media file",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to upload media file",
		})
	}

	return c.JSON(http.StatusCreated, file)
}

// List handles GET /api/v1/media
func (h *MediaHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	files, err := h.mediaService.ListByOwner(c.Request().Context(), user.UserID)
	if err != nil {
		h.logger.Error("Failed to list media files",
			zap.Int64("user_id", user.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list media files",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": files,
	})
}

// DownloadURL handles GET /api/v1/media/:id/url
func (h *MediaHandler) DownloadURL(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	url, err := h.mediaService.DownloadURL(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMediaFileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Media file not found",
				"code":  "MEDIA_NOT_FOUND",
			})
		}
		h.logger.Error("Failed to presign download url",
			zap.Int64("file_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to generate download url",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"url": url,
	})
}
