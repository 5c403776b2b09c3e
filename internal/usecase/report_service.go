package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// MediaUploader stores report exports and hands out download links. The S3
// implementation lives in the infrastructure layer.
type MediaUploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ReportService aggregates sales figures and produces CSV exports.
type ReportService struct {
	saleRepo  repository.SaleRepository
	mediaRepo repository.MediaFileRepository
	uploader  MediaUploader
	logger    *zap.Logger
}

// NewReportService creates a new report service instance
func NewReportService(
	saleRepo repository.SaleRepository,
	mediaRepo repository.MediaFileRepository,
	uploader MediaUploader,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		saleRepo:  saleRepo,
		mediaRepo: mediaRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

// Dashboard summarizes a company's sales per point of sale over a period.
type Dashboard struct {
	From         time.Time                     `json:"from"`
	To           time.Time                     `json:"to"`
	TotalSales   int64                         `json:"total_sales"`
	TotalRevenue decimal.Decimal               `json:"total_revenue"`
	PointsOfSale []*repository.PosSalesSummary `json:"points_of_sale"`
}

// GetDashboard aggregates sales per point of sale for a company over the
// given period.
func (s *ReportService) GetDashboard(ctx context.Context, companyID int64, from, to time.Time) (*Dashboard, error) {
	summaries, err := s.saleRepo.SummarizeByPointOfSale(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}

	dashboard := &Dashboard{
		From:         from,
		To:           to,
		TotalRevenue: decimal.Zero,
		PointsOfSale: summaries,
	}
	for _, summary := range summaries {
		dashboard.TotalSales += summary.SaleCount
		dashboard.TotalRevenue = dashboard.TotalRevenue.Add(summary.Revenue)
	}

	return dashboard, nil
}

// Export renders a company's sales over a period as CSV, stores it in media
// storage and returns the file record with a time-limited download URL.
func (s *ReportService) Export(ctx context.Context, companyID, ownerID int64, from, to time.Time) (*model.MediaFile, string, error) {
	sales, err := s.saleRepo.ListForExport(ctx, companyID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list sales for export: %w", err)
	}

	body, err := renderSalesCSV(sales)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render export: %w", err)
	}

	fileName := fmt.Sprintf("sales_%d_%s_%s.csv", companyID, from.Format("20060102"), to.Format("20060102"))
	key := fmt.Sprintf("exports/%d/%d_%s", companyID, time.Now().UnixNano(), fileName)

	if err := s.uploader.Upload(ctx, key, "text/csv", body); err != nil {
		return nil, "", fmt.Errorf("failed to upload export: %w", err)
	}

	file := &model.MediaFile{
		Key:         key,
		FileName:    fileName,
		ContentType: "text/csv",
		Size:        int64(len(body)),
		OwnerID:     ownerID,
	}
	if err := s.mediaRepo.Create(ctx, file); err != nil {
		return nil, "", fmt.Errorf("failed to record export file: %w", err)
	}

	url, err := s.uploader.PresignedURL(ctx, key, 15*time.Minute)
	if err != nil {
		return nil, "", fmt.Errorf("failed to presign export url: %w", err)
	}

	s.logger.Info("Sales export created",
		zap.Int64("company_id", companyID),
		zap.String("key", key),
		zap.Int("sales", len(sales)))

	return file, url, nil
}

// renderSalesCSV writes one row per sale with its date, location, total and
// currency.
func renderSalesCSV(sales []*model.Sale) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "uid", "point_of_sale_id", "date", "total", "currency"}); err != nil {
		return nil, err
	}

	for _, sale := range sales {
		record := []string{
			fmt.Sprintf("%d", sale.ID),
			sale.UID.String(),
			fmt.Sprintf("%d", sale.PointOfSaleID),
			sale.CreatedAt.Format(time.RFC3339),
			sale.Total.StringFixed(2),
			sale.Currency,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
