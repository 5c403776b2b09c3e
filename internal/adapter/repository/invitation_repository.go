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

type invitationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB, logger *zap.Logger) domainRepo.InvitationRepository {
	return &invitationRepository{
		db:     db,
		logger: logger,
	}
}

// GetByToken retrieves an invitation by its token
func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var inv model.Invitation

	err := r.db.WithContext(ctx).Where("token = ?", token).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get invitation by token", zap.Error(err))
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &inv, nil
}

// GetByPointOfSaleID retrieves the invitations of a point of sale
func (r *invitationRepository) GetByPointOfSaleID(ctx context.Context, posID int64) ([]*model.Invitation, error) {
	var list []*model.Invitation

	err := r.db.WithContext(ctx).
		Where("point_of_sale_id = ?", posID).
		Order("created_at DESC").
		Find(&list).Error

	if err != nil {
		r.logger.Error("Failed to list invitations",
			zap.Int64("point_of_sale_id", posID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return list, nil
}

// Create creates a new invitation
func (r *invitationRepository) Create(ctx context.Context, inv *model.Invitation) error {
	err := r.db.WithContext(ctx).Create(inv).Error
	if err != nil {
		r.logger.Error("Failed to create invitation",
			zap.String("email", inv.Email),
			zap.Error(err))
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	return nil
}

// Update updates an existing invitation
func (r *invitationRepository) Update(ctx context.Context, inv *model.Invitation) error {
	err := r.db.WithContext(ctx).
		Model(&model.Invitation{}).
		Where("id = ?", inv.ID).
		Select("status", "expires_at").
		Updates(inv).Error

	if err != nil {
		r.logger.Error("Failed to update invitation",
			zap.Int64("id", inv.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	return nil
}
