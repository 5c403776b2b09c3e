package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
)

func TestPaymentMethodService_Create(t *testing.T) {
	logger := zap.NewNop()

	t.Run("new methods start active", func(t *testing.T) {
		pmRepo := new(MockPaymentMethodRepository)
		posRepo := new(MockPointOfSaleRepository)
		posRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.PointOfSale{ID: 1}, nil)
		pmRepo.On("Create", mock.Anything, mock.MatchedBy(func(pm *model.PaymentMethod) bool {
			return pm.IsActive && !pm.RequiresConfirmation && pm.PointOfSaleID == 1
		})).Return(nil)

		service := NewPaymentMethodService(pmRepo, posRepo, logger)
		pm, err := service.Create(context.Background(), 1, CreatePaymentMethodInput{Name: "Cash"})

		assert.NoError(t, err)
		assert.True(t, pm.IsActive)
		pmRepo.AssertExpectations(t)
	})

	t.Run("confirmation without instructions is accepted", func(t *testing.T) {
		pmRepo := new(MockPaymentMethodRepository)
		posRepo := new(MockPointOfSaleRepository)
		posRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.PointOfSale{ID: 1}, nil)
		pmRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PaymentMethod")).Return(nil)

		service := NewPaymentMethodService(pmRepo, posRepo, logger)
		pm, err := service.Create(context.Background(), 1, CreatePaymentMethodInput{
			Name:                 "Bank transfer",
			RequiresConfirmation: true,
		})

		assert.NoError(t, err)
		assert.True(t, pm.RequiresConfirmation)
		assert.Empty(t, pm.ConfirmationInstructions)
	})

	t.Run("unknown point of sale", func(t *testing.T) {
		posRepo := new(MockPointOfSaleRepository)
		posRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)

		service := NewPaymentMethodService(new(MockPaymentMethodRepository), posRepo, logger)
		pm, err := service.Create(context.Background(), 1, CreatePaymentMethodInput{Name: "Cash"})

		assert.ErrorIs(t, err, domainErrors.ErrPointOfSaleNotFound)
		assert.Nil(t, pm)
	})
}

func TestPaymentMethodService_GetByID(t *testing.T) {
	logger := zap.NewNop()

	t.Run("rejects a method from another point of sale", func(t *testing.T) {
		pmRepo := new(MockPaymentMethodRepository)
		pmRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&model.PaymentMethod{ID: 5, PointOfSaleID: 2}, nil)

		service := NewPaymentMethodService(pmRepo, new(MockPointOfSaleRepository), logger)
		pm, err := service.GetByID(context.Background(), 1, 5)

		assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodMismatch)
		assert.Nil(t, pm)
	})

	t.Run("unknown method", func(t *testing.T) {
		pmRepo := new(MockPaymentMethodRepository)
		pmRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

		service := NewPaymentMethodService(pmRepo, new(MockPointOfSaleRepository), logger)
		pm, err := service.GetByID(context.Background(), 1, 5)

		assert.ErrorIs(t, err, domainErrors.ErrPaymentMethodNotFound)
		assert.Nil(t, pm)
	})
}

func TestPaymentMethodService_ToggleStatus(t *testing.T) {
	logger := zap.NewNop()
	pmRepo := new(MockPaymentMethodRepository)
	pmRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&model.PaymentMethod{ID: 5, PointOfSaleID: 1, IsActive: true}, nil)
	pmRepo.On("Update", mock.Anything, mock.MatchedBy(func(pm *model.PaymentMethod) bool {
		return !pm.IsActive
	})).Return(nil)

	service := NewPaymentMethodService(pmRepo, new(MockPointOfSaleRepository), logger)
	pm, err := service.ToggleStatus(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.False(t, pm.IsActive)
	pmRepo.AssertExpectations(t)
}
