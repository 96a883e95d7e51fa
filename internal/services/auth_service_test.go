package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

func TestSignupCreatesClientProfile(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.services.AuthService.Signup(&dto.SignupRequest{
		Email:       "Ada@Example.com",
		Password:    "password123",
		Role:        models.UserRoleClient,
		FirstName:   "Ada",
		LastName:    "Obi",
		CompanyName: "Acme Media",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.False(t, resp.User.IsEmailVerified)

	var client models.Client
	require.NoError(t, env.db.Where("user_id = ?", resp.User.ID).First(&client).Error)
	assert.Equal(t, "Acme Media", client.CompanyName)
	assert.Equal(t, "Ada Obi", client.GetContactPerson().Name)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	createClientUser(t, env.db, "taken@example.com")

	_, err := env.services.AuthService.Signup(&dto.SignupRequest{
		Email:       "taken@example.com",
		Password:    "password123",
		Role:        models.UserRoleClient,
		FirstName:   "Ada",
		LastName:    "Obi",
		CompanyName: "Acme Media",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginChecks(t *testing.T) {
	env := newTestEnv(t)
	user := createClientUser(t, env.db, "login@example.com")

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.services.AuthService.Login(&dto.LoginRequest{Email: "login@example.com", Password: "nope-nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.services.AuthService.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("success records last login", func(t *testing.T) {
		resp, err := env.services.AuthService.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		var fresh models.User
		require.NoError(t, env.db.First(&fresh, "id = ?", user.ID).Error)
		assert.NotNil(t, fresh.LastLogin)
	})

	t.Run("deactivated account", func(t *testing.T) {
		require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
		_, err := env.services.AuthService.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
		assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
	})
}

func TestLoginUnverifiedEmail(t *testing.T) {
	env := newTestEnv(t)
	user := createClientUser(t, env.db, "unverified@example.com")
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_email_verified", false).Error)

	_, err := env.services.AuthService.Login(&dto.LoginRequest{Email: "unverified@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrEmailNotVerified)
}

func TestLoginAnonymousTalent(t *testing.T) {
	env := newTestEnv(t)

	talent, err := env.services.TalentService.SubmitAnonymous(&dto.SubmitTalentRequest{
		FirstName:      "Tola",
		LastName:       "Ade",
		Email:          "anon@example.com",
		Phone:          "+2348111111111",
		Location:       "Abuja",
		TalentCategory: "actor",
	}, &dto.TalentUploads{})
	require.NoError(t, err)
	require.NotEmpty(t, talent.ID)

	_, err = env.services.AuthService.Login(&dto.LoginRequest{Email: "anon@example.com", Password: "anything1"})
	assert.ErrorIs(t, err, apperrors.ErrPasswordNotSet)
}

func TestSetPasswordActivatesAnonymousAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.TalentService.SubmitAnonymous(&dto.SubmitTalentRequest{
		FirstName:      "Tola",
		LastName:       "Ade",
		Email:          "setpw@example.com",
		Phone:          "+2348111111111",
		Location:       "Abuja",
		TalentCategory: "actor",
	}, &dto.TalentUploads{})
	require.NoError(t, err)

	// The raw token only travels by email, so yank it out of the database and
	// rewrite the stored hash to a value we know.
	raw := "known-test-token"
	var user models.User
	require.NoError(t, env.db.First(&user, "email = ?", "setpw@example.com").Error)
	require.NotEmpty(t, user.PasswordSetToken)
	require.True(t, user.IsAnonymous)

	setKnownToken(t, env, &user, raw)

	resp, err := env.services.AuthService.SetPassword(&dto.SetPasswordRequest{Token: raw, Password: "newpassword1"})
	require.NoError(t, err)
	assert.False(t, resp.User.IsAnonymous)
	assert.True(t, resp.User.IsEmailVerified)

	login, err := env.services.AuthService.Login(&dto.LoginRequest{Email: "setpw@example.com", Password: "newpassword1"})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleTalent, login.User.Role)

	// The token is single-use.
	_, err = env.services.AuthService.SetPassword(&dto.SetPasswordRequest{Token: raw, Password: "another-pass1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyEmailInvalidToken(t *testing.T) {
	env := newTestEnv(t)
	err := env.services.AuthService.VerifyEmail("garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, env.services.AuthService.ForgotPassword("nobody@example.com"))
}

func TestUpdatePasswordRequiresCurrent(t *testing.T) {
	env := newTestEnv(t)
	user := createClientUser(t, env.db, "update@example.com")

	err := env.services.AuthService.UpdatePassword(user.ID, &dto.UpdatePasswordRequest{
		CurrentPassword: "wrong-current",
		NewPassword:     "newpassword1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = env.services.AuthService.UpdatePassword(user.ID, &dto.UpdatePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
	})
	require.NoError(t, err)

	_, err = env.services.AuthService.Login(&dto.LoginRequest{Email: "update@example.com", Password: "newpassword1"})
	assert.NoError(t, err)
}
