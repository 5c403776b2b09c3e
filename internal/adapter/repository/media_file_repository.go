package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/stockplus/stockplus-server/internal/domain/model"
	domainRepo "github.com/stockplus/stockplus-server/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mediaFileRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMediaFileRepository creates a new media file repository
func NewMediaFileRepository(db *gorm.DB, logger *zap.Logger) domainRepo.MediaFileRepository {
	return &mediaFileRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a media file record by its ID
func (r *mediaFileRepository) GetByID(ctx context.Context, id int64) (*model.MediaFile, error) {
	var file model.MediaFile

	err := r.db.WithContext(ctx).First(&file, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get media file",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get media file: %w", err)
	}

	return &file, nil
}

// GetByKey retrieves a media file record by its storage key
func (r *mediaFileRepository) GetByKey(ctx context.Context, key string) (*model.MediaFile, error) {
	var file model.MediaFile

	err := r.db.WithContext(ctx).Where("key = ?", key).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get media file by key",
			zap.String("key", key),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get media file: %w", err)
	}

	return &file, nil
}

// ListByOwner lists the media files of an owner
func (r *mediaFileRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*model.MediaFile, error) {
	var files []*model.MediaFile

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&files).Error

	if err != nil {
		r.logger.Error("Failed to list media files",
			zap.Int64("owner_id", ownerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list media files: %w", err)
	}

	return files, nil
}

// Create creates a new media file record
func (r *mediaFileRepository) Create(ctx context.Context, file *model.MediaFile) error {
	err := r.db.WithContext(ctx).Create(file).Error
	if err != nil {
		r.logger.Error("Failed to create media file record",
			zap.String("key", file.Key),
			zap.Error(err))
		return fmt.Errorf("failed to create media file record: %w", err)
	}

	return nil
}

// Delete removes a media file record
func (r *mediaFileRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&model.MediaFile{}, id).Error
	if err != nil {
		r.logger.Error("Failed to delete media file record",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete media file record: %w", err)
	}

	return nil
}
