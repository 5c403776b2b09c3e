package repository

import (
	"context"

	"github.com/stockplus/stockplus-server/internal/domain/model"
)

// CustomerRepository handles customer storage
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Customer, error)
	GetByStripeID(ctx context.Context, stripeID string) (*model.Customer, error)
	List(ctx context.Context, offset, limit int) ([]*model.Customer, int64, error)
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int64) error
}
