package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/domain/entity"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
	"github.com/stockplus/stockplus-server/internal/domain/repository"
)

// InvitationMailer delivers invitation emails. The SMTP implementation lives
// in the infrastructure layer.
type InvitationMailer interface {
	SendInvitation(email, posName, token string) error
}

// InvitationService handles collaborator invitations and their lifecycle
// from PENDING through VALIDATED or EXPIRED.
type InvitationService struct {
	invitationRepo repository.InvitationRepository
	posRepo        repository.PointOfSaleRepository
	posService     *PointOfSaleService
	mailer         InvitationMailer
	ttl            time.Duration
	logger         *zap.Logger
}

// NewInvitationService creates a new invitation service instance
func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	posRepo repository.PointOfSaleRepository,
	posService *PointOfSaleService,
	mailer InvitationMailer,
	ttl time.Duration,
	logger *zap.Logger,
) *InvitationService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &InvitationService{
		invitationRepo: invitationRepo,
		posRepo:        posRepo,
		posService:     posService,
		mailer:         mailer,
		ttl:            ttl,
		logger:         logger,
	}
}

// Create issues a PENDING invitation for an email address to join a point of
// sale and mails the invite link. A mail failure does not roll back the
// invitation; it can be re-sent.
func (s *InvitationService) Create(ctx context.Context, posID, invitedByID int64, email string) (*model.Invitation, error) {
	pos, err := s.posRepo.GetByID(ctx, posID)
	if err != nil {
		return nil, fmt.Errorf("failed to get point of sale: %w", err)
	}
	if pos == nil {
		return nil, domainErrors.ErrPointOfSaleNotFound
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	inv := &model.Invitation{
		Email:         email,
		PointOfSaleID: posID,
		InvitedByID:   invitedByID,
		Status:        entity.InvitationStatusPending,
		Token:         token,
		ExpiresAt:     time.Now().Add(s.ttl),
	}

	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	if err := s.mailer.SendInvitation(email, pos.Name, token); err != nil {
		s.logger.Warn("Failed to send invitation email",
			zap.String("email", email),
			zap.Int64("pos_id", posID),
			zap.Error(err))
	}

	s.logger.Info("Invitation created",
		zap.String("email", email),
		zap.Int64("pos_id", posID))

	return inv, nil
}

// Validate consumes an invitation token and adds the joining user as a
// collaborator. Expired invitations are marked EXPIRED on sight.
func (s *InvitationService) Validate(ctx context.Context, token string, userID int64) (*model.Invitation, error) {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv == nil {
		return nil, domainErrors.ErrInvitationNotFound
	}

	switch inv.Status {
	case entity.InvitationStatusValidated:
		return nil, domainErrors.ErrInvitationAlreadyValidated
	case entity.InvitationStatusExpired:
		return nil, domainErrors.ErrInvitationExpired
	}

	if time.Now().After(inv.ExpiresAt) {
		inv.Status = entity.InvitationStatusExpired
		if err := s.invitationRepo.Update(ctx, inv); err != nil {
			s.logger.Error("Failed to mark invitation expired",
				zap.Int64("id", inv.ID),
				zap.Error(err))
		}
		return nil, domainErrors.ErrInvitationExpired
	}

	if err := s.posService.AddCollaborator(ctx, inv.PointOfSaleID, userID); err != nil {
		// An already-added collaborator still consumes the invitation.
		if !errors.Is(err, domainErrors.ErrCollaboratorAlreadyAdded) {
			return nil, err
		}
	}

	inv.Status = entity.InvitationStatusValidated
	if err := s.invitationRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to validate invitation: %w", err)
	}

	s.logger.Info("Invitation validated",
		zap.Int64("id", inv.ID),
		zap.Int64("user_id", userID))

	return inv, nil
}

// ListByPointOfSale returns the invitations issued for a point of sale
func (s *InvitationService) ListByPointOfSale(ctx context.Context, posID int64) ([]*model.Invitation, error) {
	items, err := s.invitationRepo.GetByPointOfSaleID(ctx, posID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return items, nil
}

// newInvitationToken returns a 64-character hex token.
func newInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
