package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// SaleService records completed transactions against points of sale.
type SaleService struct {
	saleRepo repository.SaleRepository
	posRepo  repository.PointOfSaleRepository
	logger   *zap.Logger
}

// NewSaleService creates a new sale service instance
func NewSaleService(
	saleRepo repository.SaleRepository,
	posRepo repository.PointOfSaleRepository,
	logger *zap.Logger,
) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		posRepo:  posRepo,
		logger:   logger,
	}
}

// SaleItemInput is one line of a recorded sale.
type SaleItemInput struct {
	Label     string
	Quantity  int
	UnitPrice decimal.Decimal
}

// RecordSaleInput carries the fields accepted when recording a sale.
type RecordSaleInput struct {
	CustomerID *int64
	Currency   string
	Items      []SaleItemInput
}

// Record stores a completed sale. The total is computed from the items.
func (s *SaleService) Record(ctx context.Context, posID int64, input RecordSaleInput) (*model.Sale, error) {
	pos, err := s.posRepo.GetByID(ctx, posID)
	if err != nil {
		return nil, fmt.Errorf("failed to get point of sale: %w", err)
	}
	if pos == nil {
		return nil, domainErrors.ErrPointOfSaleNotFound
	}

	total := decimal.Zero
	items := make([]model.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(qty))))
		items = append(items, model.SaleItem{
			Label:     item.Label,
			Quantity:  qty,
			UnitPrice: item.UnitPrice,
		})
	}

	currency := input.Currency
	if currency == "" {
		currency = "eur"
	}

	sale := &model.Sale{
		PointOfSaleID: posID,
		CustomerID:    input.CustomerID,
		Total:         total,
		Currency:      currency,
		Items:         items,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	s.logger.Info("Sale recorded",
		zap.Int64("pos_id", posID),
		zap.String("total", total.String()))

	return sale, nil
}

// GetByID fetches a single sale
func (s *SaleService) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	if sale == nil {
		return nil, domainErrors.ErrSaleNotFound
	}
	return sale, nil
}

// ListByPointOfSale returns a page of sales for a point of sale
func (s *SaleService) ListByPointOfSale(ctx context.Context, posID int64, params entity.PaginationParams) ([]*model.Sale, entity.PaginationMeta, error) {
	params.Validate()

	items, total, err := s.saleRepo.GetByPointOfSaleID(ctx, posID, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, entity.PaginationMeta{}, fmt.Errorf("failed to list sales: %w", err)
	}

	meta := entity.NewPaginationMeta(params.Page, params.Limit, total)
	return items, meta, nil
}
