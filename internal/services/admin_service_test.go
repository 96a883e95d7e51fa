package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

func TestCreateStaffUser(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.services.AdminService.CreateStaffUser(&dto.CreateStaffUserRequest{
		Email:     "Reviewer@Arcon.gov.ng",
		Password:  "password123",
		Role:      models.UserRoleArcon,
		FirstName: "Bola",
		LastName:  "Musa",
	})
	require.NoError(t, err)
	assert.Equal(t, "reviewer@arcon.gov.ng", user.Email)
	assert.Equal(t, models.UserRoleArcon, user.Role)
	assert.True(t, user.IsEmailVerified)
	assert.True(t, user.IsActive)

	// Staff accounts can log in straight away.
	_, err = env.services.AuthService.Login(&dto.LoginRequest{Email: "reviewer@arcon.gov.ng", Password: "password123"})
	assert.NoError(t, err)

	_, err = env.services.AdminService.CreateStaffUser(&dto.CreateStaffUserRequest{
		Email: "reviewer@arcon.gov.ng", Password: "password123",
		Role: models.UserRoleAdmin, FirstName: "B", LastName: "M",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdateUserStatus(t *testing.T) {
	env := newTestEnv(t)
	user := createClientUser(t, env.db, "client@example.com")

	updated, err := env.services.AdminService.UpdateUserStatus(&dto.UpdateUserStatusRequest{UserID: user.ID, IsActive: false})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = env.services.AuthService.Login(&dto.LoginRequest{Email: "client@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountInactive)

	updated, err = env.services.AdminService.UpdateUserStatus(&dto.UpdateUserStatusRequest{UserID: user.ID, IsActive: true})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestSuperadminCannotBeDeactivated(t *testing.T) {
	env := newTestEnv(t)

	super := &models.User{
		Email:           "root@example.com",
		PasswordHash:    "x",
		Role:            models.UserRoleSuperadmin,
		IsEmailVerified: true,
		IsActive:        true,
	}
	require.NoError(t, env.db.Create(super).Error)

	_, err := env.services.AdminService.UpdateUserStatus(&dto.UpdateUserStatusRequest{UserID: super.ID, IsActive: false})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestListUsersFilters(t *testing.T) {
	env := newTestEnv(t)
	createClientUser(t, env.db, "client@example.com")
	createTalentUser(t, env.db, "talent@example.com", true)

	clients, pagination, err := env.services.AdminService.ListUsers(&dto.AdminUsersQuery{Role: "client", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, int64(1), pagination.TotalRecords)

	all, _, err := env.services.AdminService.ListUsers(&dto.AdminUsersQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byEmail, _, err := env.services.AdminService.ListUsers(&dto.AdminUsersQuery{Search: "talent@", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)
}
