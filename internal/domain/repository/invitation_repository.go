package repository

import (
	"context"

	"github.com/stockplus/stockplus-server/internal/domain/model"
)

// InvitationRepository handles collaborator invitation storage
type InvitationRepository interface {
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	GetByPointOfSaleID(ctx context.Context, posID int64) ([]*model.Invitation, error)
	Create(ctx context.Context, inv *model.Invitation) error
	Update(ctx context.Context, inv *model.Invitation) error
}
