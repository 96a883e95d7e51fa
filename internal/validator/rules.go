package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("user-role", validateUserRole)
	mustRegister("talent-category", validateTalentCategory)
	mustRegister("ad-category", validateAdCategory)
	mustRegister("request-status", validateRequestStatus)
	mustRegister("contact-status", validateContactStatus)
	mustRegister("review-decision", validateReviewDecision)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	switch models.UserRole(value) {
	case models.UserRoleSuperadmin, models.UserRoleAdmin, models.UserRoleClient,
		models.UserRoleTalent, models.UserRoleArcon:
		return true
	default:
		return false
	}
}

func validateTalentCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidTalentCategory(value)
}

func validateAdCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidAdCategory(value)
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.RequestStatus(value) {
	case models.RequestStatusPending, models.RequestStatusAccepted, models.RequestStatusDeclined,
		models.RequestStatusCancelled, models.RequestStatusCompleted:
		return true
	default:
		return false
	}
}

func validateContactStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ContactStatus(value) {
	case models.ContactStatusNew, models.ContactStatusInProgress,
		models.ContactStatusResolved, models.ContactStatusClosed:
		return true
	default:
		return false
	}
}

func validateReviewDecision(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "approved", "rejected", "under-review":
		return true
	default:
		return false
	}
}
