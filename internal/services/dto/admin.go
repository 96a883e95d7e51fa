package dto

import "github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"

// AdminUsersQuery filters the user listing.
type AdminUsersQuery struct {
	Role     string `form:"role,omitempty" validate:"user-role"`
	IsActive *bool  `form:"isActive,omitempty"`
	Search   string `form:"search,omitempty"`
	Page     int    `form:"page,omitempty"`
	Limit    int    `form:"limit,omitempty"`
}

// UpdateUserStatusRequest activates or deactivates an account.
type UpdateUserStatusRequest struct {
	UserID   string `json:"userId" binding:"required"`
	IsActive bool   `json:"isActive"`
}

// CreateStaffUserRequest provisions an admin or regulator account.
type CreateStaffUserRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	Role      models.UserRole `json:"role" binding:"required,oneof=admin arcon"`
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
}
