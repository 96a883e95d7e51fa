package services

import (
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/paystack"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/storage"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService    AuthService
	TalentService  TalentService
	RequestService RequestService
	PaymentService PaymentService
	AdService      AdService
	ContactService ContactService
	AdminService   AdminService

	Storage storage.Storage
}

// NewServiceContainer wires repositories and services against one DB pool.
func NewServiceContainer(db *gorm.DB, gateway paystack.Gateway, mailer *email.Mailer, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	talentRepo := repositories.NewTalentRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	adRepo := repositories.NewAdRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	return &ServiceContainer{
		AuthService:    NewAuthService(db, userRepo, clientRepo, mailer),
		TalentService:  NewTalentService(db, userRepo, talentRepo, mailer),
		RequestService: NewRequestService(requestRepo, clientRepo, talentRepo, userRepo, mailer),
		PaymentService: NewPaymentService(db, paymentRepo, requestRepo, clientRepo, userRepo, gateway, mailer),
		AdService:      NewAdService(db, adRepo, paymentRepo, requestRepo, clientRepo, talentRepo, userRepo, mailer),
		ContactService: NewContactService(contactRepo, mailer),
		AdminService:   NewAdminService(userRepo),
		Storage:        store,
	}
}
