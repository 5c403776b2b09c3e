package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockplus/stockplus-server/internal/adapter/repository"
	domainRepo "github.com/stockplus/stockplus-server/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	PointOfSale   domainRepo.PointOfSaleRepository
	PaymentMethod domainRepo.PaymentMethodRepository
	Customer      domainRepo.CustomerRepository
	Plan          domainRepo.PlanRepository
	Subscription  domainRepo.SubscriptionRepository
	Invitation    domainRepo.InvitationRepository
	Sale          domainRepo.SaleRepository
	MediaFile     domainRepo.MediaFileRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		PointOfSale:   repository.NewPointOfSaleRepository(db, logger),
		PaymentMethod: repository.NewPaymentMethodRepository(db, logger),
		Customer:      repository.NewCustomerRepository(db, logger),
		Plan:          repository.NewPlanRepository(db, logger),
		Subscription:  repository.NewSubscriptionRepository(db, logger),
		Invitation:    repository.NewInvitationRepository(db, logger),
		Sale:          repository.NewSaleRepository(db, logger),
		MediaFile:     repository.NewMediaFileRepository(db, logger),
	}
}
