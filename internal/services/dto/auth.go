package dto

import (
	"time"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

// SignupRequest registers a client or a talent with credentials.
type SignupRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required,oneof=client talent"`

	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone,omitempty"`

	// Client signup also creates the company profile.
	CompanyName string `json:"companyName,omitempty" binding:"required_if=Role client"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// AuthResponse carries the signed token and the user's public view.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the public projection of a User.
type UserDTO struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	Role            models.UserRole `json:"role"`
	Name            string          `json:"name,omitempty"`
	FirstName       string          `json:"firstName,omitempty"`
	LastName        string          `json:"lastName,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	IsEmailVerified bool            `json:"isEmailVerified"`
	IsActive        bool            `json:"isActive"`
	IsAnonymous     bool            `json:"isAnonymous"`
	LastLogin       *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NewUserDTO projects a model into its public view.
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role,
		Name:            user.Name,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Phone:           user.Phone,
		IsEmailVerified: user.IsEmailVerified,
		IsActive:        user.IsActive,
		IsAnonymous:     user.IsAnonymous,
		LastLogin:       user.LastLogin,
		CreatedAt:       user.CreatedAt,
	}
}
