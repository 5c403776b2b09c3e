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

func TestCustomerService_GetOrCreate(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns the existing record", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		billing := new(MockBillingProvider)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Customer{ID: 1, UserID: 10, StripeID: "cus_123"}, nil)

		service := NewCustomerService(customerRepo, billing, logger)
		cust, err := service.GetOrCreate(context.Background(), 10, "user@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "cus_123", cust.StripeID)
		billing.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creates a record with a billing counterpart", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		billing := new(MockBillingProvider)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).Return(nil, nil)
		billing.On("CreateCustomer", mock.Anything, int64(10), "user@example.com").Return("cus_456", nil)
		customerRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return c.UserID == 10 && c.IsActive && c.StripeID == "cus_456"
		})).Return(nil)

		service := NewCustomerService(customerRepo, billing, logger)
		cust, err := service.GetOrCreate(context.Background(), 10, "user@example.com")

		assert.NoError(t, err)
		assert.True(t, cust.IsActive)
		assert.Equal(t, "cus_456", cust.StripeID)
		customerRepo.AssertExpectations(t)
		billing.AssertExpectations(t)
	})

	t.Run("billing failure still creates the local record", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		billing := new(MockBillingProvider)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).Return(nil, nil)
		billing.On("CreateCustomer", mock.Anything, int64(10), "user@example.com").Return("", assert.AnError)
		customerRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return c.UserID == 10 && c.StripeID == ""
		})).Return(nil)

		service := NewCustomerService(customerRepo, billing, logger)
		cust, err := service.GetOrCreate(context.Background(), 10, "user@example.com")

		assert.NoError(t, err)
		assert.Empty(t, cust.StripeID)
	})
}

func TestCustomerService_Deactivate(t *testing.T) {
	logger := zap.NewNop()

	t.Run("marks the customer inactive", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Customer{ID: 1, UserID: 10, IsActive: true}, nil)
		customerRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return !c.IsActive
		})).Return(nil)

		service := NewCustomerService(customerRepo, new(MockBillingProvider), logger)
		cust, err := service.Deactivate(context.Background(), 10)

		assert.NoError(t, err)
		assert.False(t, cust.IsActive)
	})

	t.Run("unknown customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).Return(nil, nil)

		service := NewCustomerService(customerRepo, new(MockBillingProvider), logger)
		cust, err := service.Deactivate(context.Background(), 10)

		assert.ErrorIs(t, err, domainErrors.ErrCustomerNotFound)
		assert.Nil(t, cust)
	})
}

func TestCustomerService_EnsureStripeID(t *testing.T) {
	logger := zap.NewNop()

	t.Run("provisions a missing billing customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		billing := new(MockBillingProvider)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Customer{ID: 1, UserID: 10, IsActive: true}, nil)
		billing.On("CreateCustomer", mock.Anything, int64(10), "user@example.com").Return("cus_789", nil)
		customerRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return c.StripeID == "cus_789"
		})).Return(nil)

		service := NewCustomerService(customerRepo, billing, logger)
		cust, err := service.EnsureStripeID(context.Background(), 10, "user@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "cus_789", cust.StripeID)
	})

	t.Run("keeps an already provisioned id", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		billing := new(MockBillingProvider)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Customer{ID: 1, UserID: 10, StripeID: "cus_123"}, nil)

		service := NewCustomerService(customerRepo, billing, logger)
		cust, err := service.EnsureStripeID(context.Background(), 10, "user@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "cus_123", cust.StripeID)
		billing.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("provider failure is surfaced", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		billing := new(MockBillingProvider)
		customerRepo.On("GetByUserID", mock.Anything, int64(10)).
			Return(&model.Customer{ID: 1, UserID: 10}, nil)
		billing.On("CreateCustomer", mock.Anything, int64(10), "user@example.com").
			Return("", assert.AnError)

		service := NewCustomerService(customerRepo, billing, logger)
		_, err := service.EnsureStripeID(context.Background(), 10, "user@example.com")

		assert.Error(t, err)
		customerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
