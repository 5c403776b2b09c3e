package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stockplus/stockplus-server/internal/domain/model"
	domainRepo "github.com/stockplus/stockplus-server/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type saleRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB, logger *zap.Logger) domainRepo.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a sale with its items
func (r *saleRepository) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	var sale model.Sale

	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get sale",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	return &sale, nil
}

// GetByPointOfSaleID retrieves a page of sales for a point of sale
func (r *saleRepository) GetByPointOfSaleID(ctx context.Context, posID int64, offset, limit int) ([]*model.Sale, int64, error) {
	var sales []*model.Sale
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Where("point_of_sale_id = ?", posID).
		Count(&total).Error; err != nil {
		r.logger.Error("Failed to count sales",
			zap.Int64("point_of_sale_id", posID),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("point_of_sale_id = ?", posID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&sales).Error

	if err != nil {
		r.logger.Error("Failed to list sales",
			zap.Int64("point_of_sale_id", posID),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	return sales, total, nil
}

// Create creates a sale with its items in one transaction
func (r *saleRepository) Create(ctx context.Context, sale *model.Sale) error {
	err := r.db.WithContext(ctx).Create(sale).Error
	if err != nil {
		r.logger.Error("Failed to create sale",
			zap.Int64("point_of_sale_id", sale.PointOfSaleID),
			zap.Error(err))
		return fmt.Errorf("failed to create sale: %w", err)
	}

	return nil
}

// SummarizeByPointOfSale aggregates count and revenue per point of sale over
// the given period.
func (r *saleRepository) SummarizeByPointOfSale(ctx context.Context, companyID int64, from, to time.Time) ([]*domainRepo.PosSalesSummary, error) {
	var summaries []*domainRepo.PosSalesSummary

	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("sales.point_of_sale_id, COUNT(sales.id) AS sale_count, COALESCE(SUM(sales.total), 0) AS revenue").
		Joins("JOIN points_of_sale ON points_of_sale.id = sales.point_of_sale_id").
		Where("points_of_sale.company_id = ? AND sales.created_at BETWEEN ? AND ?", companyID, from, to).
		Group("sales.point_of_sale_id").
		Order("revenue DESC").
		Scan(&summaries).Error

	if err != nil {
		r.logger.Error("Failed to summarize sales",
			zap.Int64("company_id", companyID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}

	return summaries, nil
}

// ListForExport retrieves all sales of a company in the period, oldest first
func (r *saleRepository) ListForExport(ctx context.Context, companyID int64, from, to time.Time) ([]*model.Sale, error) {
	var sales []*model.Sale

	err := r.db.WithContext(ctx).
		Preload("Items").
		Joins("JOIN points_of_sale ON points_of_sale.id = sales.point_of_sale_id").
		Where("points_of_sale.company_id = ? AND sales.created_at BETWEEN ? AND ?", companyID, from, to).
		Order("sales.created_at ASC").
		Find(&sales).Error

	if err != nil {
		r.logger.Error("Failed to list sales for export",
			zap.Int64("company_id", companyID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list sales for export: %w", err)
	}

	return sales, nil
}
