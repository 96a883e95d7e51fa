package handlers

import (
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/validator"
)

// AppHandlers bundles every HTTP handler behind a single wiring point.
type AppHandlers struct {
	Auth    *AuthHandler
	Talent  *TalentHandler
	Request *RequestHandler
	Payment *PaymentHandler
	Ad      *AdHandler
	Contact *ContactHandler
	Admin   *AdminHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		Talent:  NewTalentHandler(base, sc.TalentService, sc.Storage),
		Request: NewRequestHandler(base, sc.RequestService),
		Payment: NewPaymentHandler(base, sc.PaymentService),
		Ad:      NewAdHandler(base, sc.AdService, sc.Storage),
		Contact: NewContactHandler(base, sc.ContactService),
		Admin:   NewAdminHandler(base, sc.AdminService),
	}
}
