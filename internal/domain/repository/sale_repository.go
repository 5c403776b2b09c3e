package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockplus/stockplus-server/internal/domain/model"
)

// PosSalesSummary aggregates sales figures for one point of sale.
type PosSalesSummary struct {
	PointOfSaleID int64           `json:"point_of_sale_id"`
	SaleCount     int64           `json:"sale_count"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// SaleRepository handles sale storage
type SaleRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Sale, error)
	GetByPointOfSaleID(ctx context.Context, posID int64, offset, limit int) ([]*model.Sale, int64, error)
	Create(ctx context.Context, sale *model.Sale) error
	// SummarizeByPointOfSale aggregates count and revenue per point of sale
	// over the given period.
	SummarizeByPointOfSale(ctx context.Context, companyID int64, from, to time.Time) ([]*PosSalesSummary, error)
	ListForExport(ctx context.Context, companyID int64, from, to time.Time) ([]*model.Sale, error)
}

// MediaFileRepository handles media file metadata storage
type MediaFileRepository interface {
	GetByID(ctx context.Context, id int64) (*model.MediaFile, error)
	GetByKey(ctx context.Context, key string) (*model.MediaFile, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*model.MediaFile, error)
	Create(ctx context.Context, file *model.MediaFile) error
	Delete(ctx context.Context, id int64) error
}
