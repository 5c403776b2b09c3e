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

func TestPointOfSaleService_Create(t *testing.T) {
	logger := zap.NewNop()
	planID := int64(1)

	tests := []struct {
		name          string
		mockSetup     func(*MockPointOfSaleRepository, *MockSubscriptionRepository, *MockPlanRepository)
		expectedError error
	}{
		{
			name: "creates under the plan limit",
			mockSetup: func(posRepo *MockPointOfSaleRepository, subRepo *MockSubscriptionRepository, planRepo *MockPlanRepository) {
				subRepo.On("GetByUserID", mock.Anything, int64(10)).
					Return(&model.Subscription{UserID: 10, PlanID: &planID, Status: model.SubscriptionStatusActive}, nil)
				planRepo.On("GetByID", mock.Anything, planID).
					Return(&model.SubscriptionPlan{ID: planID, PosLimit: 3}, nil)
				posRepo.On("CountByCompanyID", mock.Anything, int64(20)).Return(int64(2), nil)
				posRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PointOfSale")).Return(nil)
			},
		},
		{
			name: "rejects at the plan limit",
			mockSetup: func(posRepo *MockPointOfSaleRepository, subRepo *MockSubscriptionRepository, planRepo *MockPlanRepository) {
				subRepo.On("GetByUserID", mock.Anything, int64(10)).
					Return(&model.Subscription{UserID: 10, PlanID: &planID, Status: model.SubscriptionStatusActive}, nil)
				planRepo.On("GetByID", mock.Anything, planID).
					Return(&model.SubscriptionPlan{ID: planID, PosLimit: 3}, nil)
				posRepo.On("CountByCompanyID", mock.Anything, int64(20)).Return(int64(3), nil)
			},
			expectedError: domainErrors.ErrPosLimitReached,
		},
		{
			name: "zero pos_limit lifts the cap",
			mockSetup: func(posRepo *MockPointOfSaleRepository, subRepo *MockSubscriptionRepository, planRepo *MockPlanRepository) {
				subRepo.On("GetByUserID", mock.Anything, int64(10)).
					Return(&model.Subscription{UserID: 10, PlanID: &planID, Status: model.SubscriptionStatusActive}, nil)
				planRepo.On("GetByID", mock.Anything, planID).
					Return(&model.SubscriptionPlan{ID: planID, PosLimit: 0}, nil)
				posRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PointOfSale")).Return(nil)
			},
		},
		{
			name: "no subscription falls back to the default cap",
			mockSetup: func(posRepo *MockPointOfSaleRepository, subRepo *MockSubscriptionRepository, planRepo *MockPlanRepository) {
				subRepo.On("GetByUserID", mock.Anything, int64(10)).Return(nil, nil)
				posRepo.On("CountByCompanyID", mock.Anything, int64(20)).Return(int64(3), nil)
			},
			expectedError: domainErrors.ErrPosLimitReached,
		},
		{
			name: "pending subscription does not raise the cap",
			mockSetup: func(posRepo *MockPointOfSaleRepository, subRepo *MockSubscriptionRepository, planRepo *MockPlanRepository) {
				subRepo.On("GetByUserID", mock.Anything, int64(10)).
					Return(&model.Subscription{UserID: 10, PlanID: &planID, Status: model.SubscriptionStatusPending}, nil)
				posRepo.On("CountByCompanyID", mock.Anything, int64(20)).Return(int64(3), nil)
			},
			expectedError: domainErrors.ErrPosLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posRepo := new(MockPointOfSaleRepository)
			subRepo := new(MockSubscriptionRepository)
			planRepo := new(MockPlanRepository)
			tt.mockSetup(posRepo, subRepo, planRepo)

			service := NewPointOfSaleService(posRepo, subRepo, planRepo, logger)
			pos, err := service.Create(context.Background(), 10, 20, CreatePointOfSaleInput{Name: "Main store"})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, pos)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, pos)
				assert.Equal(t, "store", pos.Type)
				assert.True(t, pos.IsActive)
			}
			posRepo.AssertExpectations(t)
			subRepo.AssertExpectations(t)
			planRepo.AssertExpectations(t)
		})
	}
}

func TestPointOfSaleService_AddCollaborator(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name          string
		mockSetup     func(*MockPointOfSaleRepository)
		expectedError error
	}{
		{
			name: "adds a new collaborator",
			mockSetup: func(posRepo *MockPointOfSaleRepository) {
				posRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.PointOfSale{ID: 1}, nil)
				posRepo.On("ListCollaborators", mock.Anything, int64(1)).Return([]*model.Collaborator{}, nil)
				posRepo.On("AddCollaborator", mock.Anything, int64(1), int64(99)).Return(nil)
			},
		},
		{
			name: "rejects a duplicate collaborator",
			mockSetup: func(posRepo *MockPointOfSaleRepository) {
				posRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.PointOfSale{ID: 1}, nil)
				posRepo.On("ListCollaborators", mock.Anything, int64(1)).
					Return([]*model.Collaborator{{PointOfSaleID: 1, UserID: 99}}, nil)
			},
			expectedError: domainErrors.ErrCollaboratorAlreadyAdded,
		},
		{
			name: "unknown point of sale",
			mockSetup: func(posRepo *MockPointOfSaleRepository) {
				posRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)
			},
			expectedError: domainErrors.ErrPointOfSaleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posRepo := new(MockPointOfSaleRepository)
			tt.mockSetup(posRepo)

			service := NewPointOfSaleService(posRepo, new(MockSubscriptionRepository), new(MockPlanRepository), logger)
			err := service.AddCollaborator(context.Background(), 1, 99)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			posRepo.AssertExpectations(t)
		})
	}
}

func TestPointOfSaleService_Update(t *testing.T) {
	logger := zap.NewNop()
	posRepo := new(MockPointOfSaleRepository)
	posRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&model.PointOfSale{ID: 5, Name: "Old", Type: "store", IsActive: true}, nil)
	posRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.PointOfSale")).Return(nil)

	service := NewPointOfSaleService(posRepo, new(MockSubscriptionRepository), new(MockPlanRepository), logger)

	newName := "New"
	inactive := false
	pos, err := service.Update(context.Background(), 5, UpdatePointOfSaleInput{Name: &newName, IsActive: &inactive})

	assert.NoError(t, err)
	assert.Equal(t, "New", pos.Name)
	assert.False(t, pos.IsActive)
	assert.Equal(t, "store", pos.Type)
	posRepo.AssertExpectations(t)
}
