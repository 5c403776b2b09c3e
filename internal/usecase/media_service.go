package usecase

import (
	"context"
	"fmt"
	"path"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// MediaService handles user uploads and their download links. Objects are
// write-once; a key is never overwritten.
type MediaService struct {
	mediaRepo repository.MediaFileRepository
	uploader  MediaUploader
	logger    *zap.Logger
}

// NewMediaService creates a new media service instance
func NewMediaService(
	mediaRepo repository.MediaFileRepository,
	uploader MediaUploader,
	logger *zap.Logger,
) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

// Upload stores a file under a key derived from the owner and a timestamp,
// records its metadata and returns the record.
func (s *MediaService) Upload(ctx context.Context, ownerID int64, fileName, contentType string, body []byte) (*model.MediaFile, error) {
	key := fmt.Sprintf("uploads/%d/%d%s", ownerID, time.Now().UnixNano(), path.Ext(fileName))

	if err := s.uploader.Upload(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	file := &model.MediaFile{
		Key:         key,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(body)),
		OwnerID:     ownerID,
	}
	if err := s.mediaRepo.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to record media file: %w", err)
	}

	s.logger.Info("Media file uploaded",
		zap.Int64("owner_id", ownerID),
		zap.String("key", key),
		zap.Int("size", len(body)))

	return file, nil
}

// ListByOwner returns the files uploaded by a user
func (s *MediaService) ListByOwner(ctx context.Context, ownerID int64) ([]*model.MediaFile, error) {
	items, err := s.mediaRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media files: %w", err)
	}
	return items, nil
}

// DownloadURL returns a time-limited URL for a stored file
func (s *MediaService) DownloadURL(ctx context.Context, id int64) (string, error) {
	file, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to get media file: %w", err)
	}
	if file == nil {
		return "", domainErrors.ErrMediaFileNotFound
	}

	url, err := s.uploader.PresignedURL(ctx, file.Key, 15*time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to presign download url: %w", err)
	}
	return url, nil
}
