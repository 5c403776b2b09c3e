package repository

import (
	"context"

	"github.com/stockplus/stockplus-server/internal/domain/model"
)

// PointOfSaleRepository handles point-of-sale storage
type PointOfSaleRepository interface {
	GetByID(ctx context.Context, id int64) (*model.PointOfSale, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]*model.PointOfSale, error)
	CountByCompanyID(ctx context.Context, companyID int64) (int64, error)
	Create(ctx context.Context, pos *model.PointOfSale) error
	Update(ctx context.Context, pos *model.PointOfSale) error
	Delete(ctx context.Context, id int64) error
	AddCollaborator(ctx context.Context, posID, userID int64) error
	RemoveCollaborator(ctx context.Context, posID, userID int64) error
	ListCollaborators(ctx context.Context, posID int64) ([]*model.Collaborator, error)
}

// PaymentMethodRepository handles payment-method storage
type PaymentMethodRepository interface {
	GetByID(ctx context.Context, id int64) (*model.PaymentMethod, error)
	GetByPointOfSaleID(ctx context.Context, posID int64) ([]*model.PaymentMethod, error)
	Create(ctx context.Context, pm *model.PaymentMethod) error
	Update(ctx context.Context, pm *model.PaymentMethod) error
	Delete(ctx context.Context, id int64) error
}
