package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/config"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))
	assert.False(t, CheckPassword("", "anything"))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.False(t, ValidatePasswordStrength("short"))
	assert.True(t, ValidatePasswordStrength("longenough"))
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "a@example.com",
		Role:      models.UserRoleClient,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleClient, claims.Role)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSecureTokenHashing(t *testing.T) {
	raw, hashed, err := GenerateSecureToken()
	require.NoError(t, err)
	assert.Len(t, raw, 64)
	assert.NotEqual(t, raw, hashed)
	assert.Equal(t, hashed, HashToken(raw))

	raw2, _, err := GenerateSecureToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}
