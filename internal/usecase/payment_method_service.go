package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// PaymentMethodService handles payment-method business logic for points of
// sale.
type PaymentMethodService struct {
	paymentMethodRepo repository.PaymentMethodRepository
	posRepo           repository.PointOfSaleRepository
	logger            *zap.Logger
}

// NewPaymentMethodService creates a new payment-method service instance
func NewPaymentMethodService(
	paymentMethodRepo repository.PaymentMethodRepository,
	posRepo repository.PointOfSaleRepository,
	logger *zap.Logger,
) *PaymentMethodService {
	return &PaymentMethodService{
		paymentMethodRepo: paymentMethodRepo,
		posRepo:           posRepo,
		logger:            logger,
	}
}

// CreatePaymentMethodInput carries the fields accepted when declaring a
// payment method on a point of sale.
type CreatePaymentMethodInput struct {
	Name                     string
	Description              string
	RequiresConfirmation     bool
	ConfirmationInstructions string
}

// Create declares a payment method on a point of sale. New methods start
// active.
func (s *PaymentMethodService) Create(ctx context.Context, posID int64, input CreatePaymentMethodInput) (*model.PaymentMethod, error) {
	pos, err := s.posRepo.GetByID(ctx, posID)
	if err != nil {
		return nil, fmt.Errorf("failed to get point of sale: %w", err)
	}
	if pos == nil {
		return nil, domainErrors.ErrPointOfSaleNotFound
	}

	if input.RequiresConfirmation && input.ConfirmationInstructions == "" {
		s.logger.Warn("Payment method requires confirmation but has no instructions",
			zap.Int64("pos_id", posID),
			zap.String("name", input.Name))
	}

	pm := &model.PaymentMethod{
		Name:                     input.Name,
		Description:              input.Description,
		PointOfSaleID:            posID,
		IsActive:                 true,
		RequiresConfirmation:     input.RequiresConfirmation,
		ConfirmationInstructions: input.ConfirmationInstructions,
	}

	if err := s.paymentMethodRepo.Create(ctx, pm); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	s.logger.Info("Payment method created",
		zap.Int64("pos_id", posID),
		zap.String("name", pm.Name))

	return pm, nil
}

// GetByID fetches a payment method and checks it belongs to the given point
// of sale.
func (s *PaymentMethodService) GetByID(ctx context.Context, posID, id int64) (*model.PaymentMethod, error) {
	pm, err := s.paymentMethodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	if pm == nil {
		return nil, domainErrors.ErrPaymentMethodNotFound
	}
	if pm.PointOfSaleID != posID {
		return nil, domainErrors.ErrPaymentMethodMismatch
	}
	return pm, nil
}

// ListByPointOfSale returns every payment method declared on a point of sale
func (s *PaymentMethodService) ListByPointOfSale(ctx context.Context, posID int64) ([]*model.PaymentMethod, error) {
	items, err := s.paymentMethodRepo.GetByPointOfSaleID(ctx, posID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return items, nil
}

// UpdatePaymentMethodInput carries optional changes; nil fields keep their
// current value.
type UpdatePaymentMethodInput struct {
	Name                     *string
	Description              *string
	IsActive                 *bool
	RequiresConfirmation     *bool
	ConfirmationInstructions *string
}

// Update applies partial changes to a payment method
func (s *PaymentMethodService) Update(ctx context.Context, posID, id int64, input UpdatePaymentMethodInput) (*model.PaymentMethod, error) {
	pm, err := s.GetByID(ctx, posID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pm.Name = *input.Name
	}
	if input.Description != nil {
		pm.Description = *input.Description
	}
	if input.IsActive != nil {
		pm.IsActive = *input.IsActive
	}
	if input.RequiresConfirmation != nil {
		pm.RequiresConfirmation = *input.RequiresConfirmation
	}
	if input.ConfirmationInstructions != nil {
		pm.ConfirmationInstructions = *input.ConfirmationInstructions
	}

	if pm.RequiresConfirmation && pm.ConfirmationInstructions == "" {
		s.logger.Warn("Payment method requires confirmation but has no instructions",
			zap.Int64("id", pm.ID),
			zap.String("name", pm.Name))
	}

	if err := s.paymentMethodRepo.Update(ctx, pm); err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}
	return pm, nil
}

// ToggleStatus flips the active flag of a payment method
func (s *PaymentMethodService) ToggleStatus(ctx context.Context, posID, id int64) (*model.PaymentMethod, error) {
	pm, err := s.GetByID(ctx, posID, id)
	if err != nil {
		return nil, err
	}

	pm.IsActive = !pm.IsActive
	if err := s.paymentMethodRepo.Update(ctx, pm); err != nil {
		return nil, fmt.Errorf("failed to toggle payment method status: %w", err)
	}

	s.logger.Info("Payment method status toggled",
		zap.Int64("id", pm.ID),
		zap.Bool("is_active", pm.IsActive))

	return pm, nil
}

// Delete removes a payment method from a point of sale
func (s *PaymentMethodService) Delete(ctx context.Context, posID, id int64) error {
	if _, err := s.GetByID(ctx, posID, id); err != nil {
		return err
	}
	if err := s.paymentMethodRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}
