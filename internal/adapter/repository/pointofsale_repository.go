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

type pointOfSaleRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPointOfSaleRepository creates a new point-of-sale repository
func NewPointOfSaleRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PointOfSaleRepository {
	return &pointOfSaleRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a point of sale with its payment methods and collaborators
func (r *pointOfSaleRepository) GetByID(ctx context.Context, id int64) (*model.PointOfSale, error) {
	var pos model.PointOfSale

	err := r.db.WithContext(ctx).
		Preload("PaymentMethods").
		Preload("Collaborators").
		First(&pos, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get point of sale",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get point of sale: %w", err)
	}

	return &pos, nil
}

// GetByCompanyID retrieves all active points of sale for a company
func (r *pointOfSaleRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]*model.PointOfSale, error) {
	var list []*model.PointOfSale

	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("is_default DESC, name ASC").
		Find(&list).Error

	if err != nil {
		r.logger.Error("Failed to get points of sale by company",
			zap.Int64("company_id", companyID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get points of sale: %w", err)
	}

	return list, nil
}

// CountByCompanyID counts active points of sale for a company
func (r *pointOfSaleRepository) CountByCompanyID(ctx context.Context, companyID int64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.PointOfSale{}).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Count(&count).Error

	if err != nil {
		r.logger.Error("Failed to count points of sale",
			zap.Int64("company_id", companyID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to count points of sale: %w", err)
	}

	return count, nil
}

// Create creates a new point of sale
func (r *pointOfSaleRepository) Create(ctx context.Context, pos *model.PointOfSale) error {
	err := r.db.WithContext(ctx).Create(pos).Error
	if err != nil {
		r.logger.Error("Failed to create point of sale",
			zap.String("name", pos.Name),
			zap.Error(err))
		return fmt.Errorf("failed to create point of sale: %w", err)
	}

	return nil
}

// Update updates an existing point of sale
func (r *pointOfSaleRepository) Update(ctx context.Context, pos *model.PointOfSale) error {
	err := r.db.WithContext(ctx).
		Model(&model.PointOfSale{}).
		Where("id = ?", pos.ID).
		Updates(pos).Error

	if err != nil {
		r.logger.Error("Failed to update point of sale",
			zap.Int64("id", pos.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update point of sale: %w", err)
	}

	return nil
}

// Delete soft deletes a point of sale
func (r *pointOfSaleRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).
		Model(&model.PointOfSale{}).
		Where("id = ?", id).
		Update("is_active", false).Error

	if err != nil {
		r.logger.Error("Failed to delete point of sale",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete point of sale: %w", err)
	}

	return nil
}

// AddCollaborator links a user to a point of sale
func (r *pointOfSaleRepository) AddCollaborator(ctx context.Context, posID, userID int64) error {
	collaborator := model.Collaborator{
		PointOfSaleID: posID,
		UserID:        userID,
	}

	err := r.db.WithContext(ctx).Create(&collaborator).Error
	if err != nil {
		r.logger.Error("Failed to add collaborator",
			zap.Int64("point_of_sale_id", posID),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return fmt.Errorf("failed to add collaborator: %w", err)
	}

	return nil
}

// RemoveCollaborator unlinks a user from a point of sale
func (r *pointOfSaleRepository) RemoveCollaborator(ctx context.Context, posID, userID int64) error {
	err := r.db.WithContext(ctx).
		Where("point_of_sale_id = ? AND user_id = ?", posID, userID).
		Delete(&model.Collaborator{}).Error

	if err != nil {
		r.logger.Error("Failed to remove collaborator",
			zap.Int64("point_of_sale_id", posID),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return fmt.Errorf("failed to remove collaborator: %w", err)
	}

	return nil
}

// ListCollaborators lists the collaborators of a point of sale
func (r *pointOfSaleRepository) ListCollaborators(ctx context.Context, posID int64) ([]*model.Collaborator, error) {
	var list []*model.Collaborator

	err := r.db.WithContext(ctx).
		Where("point_of_sale_id = ?", posID).
		Find(&list).Error

	if err != nil {
		r.logger.Error("Failed to list collaborators",
			zap.Int64("point_of_sale_id", posID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	return list, nil
}
