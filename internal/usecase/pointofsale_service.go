package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// PointOfSaleService handles point-of-sale business logic including the
// per-plan location cap and the collaborator roster.
type PointOfSaleService struct {
	posRepo          repository.PointOfSaleRepository
	subscriptionRepo repository.SubscriptionRepository
	planRepo         repository.PlanRepository
	logger           *zap.Logger
}

// NewPointOfSaleService creates a new point-of-sale service instance
func NewPointOfSaleService(
	posRepo repository.PointOfSaleRepository,
	subscriptionRepo repository.SubscriptionRepository,
	planRepo repository.PlanRepository,
	logger *zap.Logger,
) *PointOfSaleService {
	return &PointOfSaleService{
		posRepo:          posRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

// CreatePointOfSaleInput carries the fields accepted when registering a
// point of sale.
type CreatePointOfSaleInput struct {
	Name         string
	Type         string
	OpeningHours string
	ClosingHours string
	IsDefault    bool
}

// Create registers a new point of sale for a company. The owner's
// subscription plan caps how many locations the company may run; a
// pos_limit of zero lifts the cap entirely.
func (s *PointOfSaleService) Create(ctx context.Context, userID, companyID int64, input CreatePointOfSaleInput) (*model.PointOfSale, error) {
	limit, err := s.posLimit(ctx, userID)
	if err != nil {
		return nil, err
	}

	if limit > 0 {
		count, err := s.posRepo.CountByCompanyID(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("failed to count points of sale: %w", err)
		}
		if count >= int64(limit) {
			s.logger.Info("Point of sale limit reached",
				zap.Int64("company_id", companyID),
				zap.Int("limit", limit))
			return nil, domainErrors.ErrPosLimitReached
		}
	}

	posType := input.Type
	if posType == "" {
		posType = entity.PosTypeStore
	}

	pos := &model.PointOfSale{
		Name:         input.Name,
		Type:         posType,
		CompanyID:    companyID,
		OpeningHours: input.OpeningHours,
		ClosingHours: input.ClosingHours,
		IsActive:     true,
		IsDefault:    input.IsDefault,
	}

	if err := s.posRepo.Create(ctx, pos); err != nil {
		return nil, fmt.Errorf("failed to create point of sale: %w", err)
	}

	s.logger.Info("Point of sale created",
		zap.Int64("company_id", companyID),
		zap.String("name", pos.Name),
		zap.String("type", pos.Type))

	return pos, nil
}

// posLimit resolves the location cap from the owner's subscription plan.
// Users without a subscription or plan fall back to the default cap.
func (s *PointOfSaleService) posLimit(ctx context.Context, userID int64) (int, error) {
	sub, err := s.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil || sub.Status != model.SubscriptionStatusActive || sub.PlanID == nil {
		return defaultPosLimit, nil
	}

	plan, err := s.planRepo.GetByID(ctx, *sub.PlanID)
	if err != nil {
		return 0, fmt.Errorf("failed to get subscription plan: %w", err)
	}
	if plan == nil {
		return defaultPosLimit, nil
	}
	return plan.PosLimit, nil
}

// defaultPosLimit applies to users without an active subscription plan.
const defaultPosLimit = 3

// GetByID fetches a single point of sale
func (s *PointOfSaleService) GetByID(ctx context.Context, id int64) (*model.PointOfSale, error) {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get point of sale: %w", err)
	}
	if pos == nil {
		return nil, domainErrors.ErrPointOfSaleNotFound
	}
	return pos, nil
}

// ListByCompany returns every point of sale of a company
func (s *PointOfSaleService) ListByCompany(ctx context.Context, companyID int64) ([]*model.PointOfSale, error) {
	items, err := s.posRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list points of sale: %w", err)
	}
	return items, nil
}

// UpdatePointOfSaleInput carries optional changes; nil fields keep their
// current value.
type UpdatePointOfSaleInput struct {
	Name         *string
	Type         *string
	OpeningHours *string
	ClosingHours *string
	IsActive     *bool
	IsDefault    *bool
}

// Update applies partial changes to a point of sale
func (s *PointOfSaleService) Update(ctx context.Context, id int64, input UpdatePointOfSaleInput) (*model.PointOfSale, error) {
	pos, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pos.Name = *input.Name
	}
	if input.Type != nil {
		pos.Type = *input.Type
	}
	if input.OpeningHours != nil {
		pos.OpeningHours = *input.OpeningHours
	}
	if input.ClosingHours != nil {
		pos.ClosingHours = *input.ClosingHours
	}
	if input.IsActive != nil {
		pos.IsActive = *input.IsActive
	}
	if input.IsDefault != nil {
		pos.IsDefault = *input.IsDefault
	}

	if err := s.posRepo.Update(ctx, pos); err != nil {
		return nil, fmt.Errorf("failed to update point of sale: %w", err)
	}
	return pos, nil
}

// Delete removes a point of sale
func (s *PointOfSaleService) Delete(ctx context.Context, id int64) error {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get point of sale: %w", err)
	}
	if pos == nil {
		return domainErrors.ErrPointOfSaleNotFound
	}
	if err := s.posRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete point of sale: %w", err)
	}
	s.logger.Info("Point of sale deleted", zap.Int64("id", id))
	return nil
}

// AddCollaborator grants a user access to a point of sale. Adding the same
// user twice is rejected.
func (s *PointOfSaleService) AddCollaborator(ctx context.Context, posID, userID int64) error {
	pos, err := s.posRepo.GetByID(ctx, posID)
	if err != nil {
		return fmt.Errorf("failed to get point of sale: %w", err)
	}
	if pos == nil {
		return domainErrors.ErrPointOfSaleNotFound
	}

	existing, err := s.posRepo.ListCollaborators(ctx, posID)
	if err != nil {
		return fmt.Errorf("failed to list collaborators: %w", err)
	}
	for _, col := range existing {
		if col.UserID == userID {
			return domainErrors.ErrCollaboratorAlreadyAdded
		}
	}

	if err := s.posRepo.AddCollaborator(ctx, posID, userID); err != nil {
		return fmt.Errorf("failed to add collaborator: %w", err)
	}

	s.logger.Info("Collaborator added",
		zap.Int64("pos_id", posID),
		zap.Int64("user_id", userID))
	return nil
}

// RemoveCollaborator revokes a user's access to a point of sale
func (s *PointOfSaleService) RemoveCollaborator(ctx context.Context, posID, userID int64) error {
	if err := s.posRepo.RemoveCollaborator(ctx, posID, userID); err != nil {
		return fmt.Errorf("failed to remove collaborator: %w", err)
	}
	return nil
}

// ListCollaborators returns the collaborator roster of a point of sale
func (s *PointOfSaleService) ListCollaborators(ctx context.Context, posID int64) ([]*model.Collaborator, error) {
	items, err := s.posRepo.ListCollaborators(ctx, posID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	return items, nil
}
