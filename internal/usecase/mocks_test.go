package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stockplus/stockplus-server/internal/domain/model"
	domainRepo "github.com/stockplus/stockplus-server/internal/domain/repository"
)

// MockPointOfSaleRepository is a mock implementation of PointOfSaleRepository
type MockPointOfSaleRepository struct {
	mock.Mock
}

func (m *MockPointOfSaleRepository) GetByID(ctx context.Context, id int64) (*model.PointOfSale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PointOfSale), args.Error(1)
}

func (m *MockPointOfSaleRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]*model.PointOfSale, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PointOfSale), args.Error(1)
}

func (m *MockPointOfSaleRepository) CountByCompanyID(ctx context.Context, companyID int64) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPointOfSaleRepository) Create(ctx context.Context, pos *model.PointOfSale) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}

func (m *MockPointOfSaleRepository) Update(ctx context.Context, pos *model.PointOfSale) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}

func (m *MockPointOfSaleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPointOfSaleRepository) AddCollaborator(ctx context.Context, posID, userID int64) error {
	args := m.Called(ctx, posID, userID)
	return args.Error(0)
}

func (m *MockPointOfSaleRepository) RemoveCollaborator(ctx context.Context, posID, userID int64) error {
	args := m.Called(ctx, posID, userID)
	return args.Error(0)
}

func (m *MockPointOfSaleRepository) ListCollaborators(ctx context.Context, posID int64) ([]*model.Collaborator, error) {
	args := m.Called(ctx, posID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Collaborator), args.Error(1)
}

// MockPaymentMethodRepository is a mock implementation of PaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) GetByID(ctx context.Context, id int64) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) GetByPointOfSaleID(ctx context.Context, posID int64) ([]*model.PaymentMethod, error) {
	args := m.Called(ctx, posID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, pm *model.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Update(ctx context.Context, pm *model.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlanRepository is a mock implementation of PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetAll(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) GetByName(ctx context.Context, name string) (*model.SubscriptionPlan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) GetFreeTrialPlan(ctx context.Context) (*model.SubscriptionPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *model.SubscriptionPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *model.SubscriptionPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlanRepository) Upsert(ctx context.Context, plan *model.SubscriptionPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetPricings(ctx context.Context, planID int64) ([]*model.SubscriptionPricing, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SubscriptionPricing), args.Error(1)
}

func (m *MockPlanRepository) CreatePricing(ctx context.Context, pricing *model.SubscriptionPricing) error {
	args := m.Called(ctx, pricing)
	return args.Error(0)
}

func (m *MockPlanRepository) DeactivateSiblingPricings(ctx context.Context, pricing *model.SubscriptionPricing) error {
	args := m.Called(ctx, pricing)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetByID(ctx context.Context, id int64) (*model.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*model.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetExpiring(ctx context.Context, withinDays int) ([]*model.Subscription, error) {
	args := m.Called(ctx, withinDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(ctx context.Context, userID int64) (*model.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByStripeID(ctx context.Context, stripeID string) (*model.Customer, error) {
	args := m.Called(ctx, stripeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, offset, limit int) ([]*model.Customer, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInvitationRepository is a mock implementation of InvitationRepository
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) GetByPointOfSaleID(ctx context.Context, posID int64) ([]*model.Invitation, error) {
	args := m.Called(ctx, posID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) Create(ctx context.Context, inv *model.Invitation) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvitationRepository) Update(ctx context.Context, inv *model.Invitation) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

// MockSaleRepository is a mock implementation of SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetByPointOfSaleID(ctx context.Context, posID int64, offset, limit int) ([]*model.Sale, int64, error) {
	args := m.Called(ctx, posID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Sale), args.Get(1).(int64), args.Error(2)
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *model.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) SummarizeByPointOfSale(ctx context.Context, companyID int64, from, to time.Time) ([]*domainRepo.PosSalesSummary, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainRepo.PosSalesSummary), args.Error(1)
}

func (m *MockSaleRepository) ListForExport(ctx context.Context, companyID int64, from, to time.Time) ([]*model.Sale, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Sale), args.Error(1)
}

// MockMediaFileRepository is a mock implementation of MediaFileRepository
type MockMediaFileRepository struct {
	mock.Mock
}

func (m *MockMediaFileRepository) GetByID(ctx context.Context, id int64) (*model.MediaFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaFile), args.Error(1)
}

func (m *MockMediaFileRepository) GetByKey(ctx context.Context, key string) (*model.MediaFile, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaFile), args.Error(1)
}

func (m *MockMediaFileRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*model.MediaFile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MediaFile), args.Error(1)
}

func (m *MockMediaFileRepository) Create(ctx context.Context, file *model.MediaFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockMediaFileRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBillingProvider is a mock implementation of BillingProvider
type MockBillingProvider struct {
	mock.Mock
}

func (m *MockBillingProvider) CreateCustomer(ctx context.Context, userID int64, email string) (string, error) {
	args := m.Called(ctx, userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockBillingProvider) CreateProduct(ctx context.Context, plan *model.SubscriptionPlan) (string, error) {
	args := m.Called(ctx, plan)
	return args.String(0), args.Error(1)
}

func (m *MockBillingProvider) CreatePrice(ctx context.Context, productID string, pricing *model.SubscriptionPricing) (string, error) {
	args := m.Called(ctx, productID, pricing)
	return args.String(0), args.Error(1)
}

// MockInvitationMailer is a mock implementation of InvitationMailer
type MockInvitationMailer struct {
	mock.Mock
}

func (m *MockInvitationMailer) SendInvitation(email, posName, token string) error {
	args := m.Called(email, posName, token)
	return args.Error(0)
}

// MockMediaUploader is a mock implementation of MediaUploader
type MockMediaUploader struct {
	mock.Mock
}

func (m *MockMediaUploader) Upload(ctx context.Context, key, contentType string, body []byte) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockMediaUploader) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
