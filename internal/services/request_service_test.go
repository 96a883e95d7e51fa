package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

func TestCreateRequest(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)

	request, err := env.services.RequestService.Create(client.ID, &dto.CreateRequestRequest{
		TalentID:           talentUser.ID,
		ProjectTitle:       "Billboard campaign",
		ProjectDescription: "Lagos mainland billboards",
		BudgetAmount:       500000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, "NGN", request.BudgetCurrency)
	assert.Equal(t, talentUser.ID, request.TalentUserID)
}

func TestCreateRequestPreconditions(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	pendingUser, _ := createTalentUser(t, env.db, "pending@example.com", false)

	t.Run("unapproved talent", func(t *testing.T) {
		_, err := env.services.RequestService.Create(client.ID, &dto.CreateRequestRequest{
			TalentID: pendingUser.ID, ProjectTitle: "x", ProjectDescription: "y", BudgetAmount: 1000,
		})
		assert.ErrorIs(t, err, apperrors.ErrTalentNotApproved)
	})

	t.Run("unknown talent", func(t *testing.T) {
		_, err := env.services.RequestService.Create(client.ID, &dto.CreateRequestRequest{
			TalentID: "nope", ProjectTitle: "x", ProjectDescription: "y", BudgetAmount: 1000,
		})
		assert.ErrorIs(t, err, apperrors.ErrTalentProfileNotFound)
	})

	t.Run("caller without client profile", func(t *testing.T) {
		approvedUser, _ := createTalentUser(t, env.db, "other@example.com", true)
		_, err := env.services.RequestService.Create(approvedUser.ID, &dto.CreateRequestRequest{
			TalentID: approvedUser.ID, ProjectTitle: "x", ProjectDescription: "y", BudgetAmount: 1000,
		})
		assert.ErrorIs(t, err, apperrors.ErrClientProfileNotFound)
	})
}

func TestRespondResolvesOnce(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)

	created, err := env.services.RequestService.Create(client.ID, &dto.CreateRequestRequest{
		TalentID: talentUser.ID, ProjectTitle: "x", ProjectDescription: "y", BudgetAmount: 1000,
	})
	require.NoError(t, err)

	t.Run("only the requested talent may respond", func(t *testing.T) {
		stranger, _ := createTalentUser(t, env.db, "stranger@example.com", true)
		_, err := env.services.RequestService.Respond(created.ID, stranger.ID, &dto.RespondToRequestRequest{Decision: "accepted"})
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 403, appErr.HTTPCode)
	})

	responded, err := env.services.RequestService.Respond(created.ID, talentUser.ID, &dto.RespondToRequestRequest{
		Decision: "accepted",
		Message:  "Happy to take this on",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, responded.Status)
	assert.Equal(t, "accepted", responded.ResponseDecision)
	assert.NotNil(t, responded.RespondedAt)

	// Resolved requests are terminal.
	_, err = env.services.RequestService.Respond(created.ID, talentUser.ID, &dto.RespondToRequestRequest{Decision: "declined"})
	assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyResolved)
}

func TestCancelRequest(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)

	created, err := env.services.RequestService.Create(client.ID, &dto.CreateRequestRequest{
		TalentID: talentUser.ID, ProjectTitle: "x", ProjectDescription: "y", BudgetAmount: 1000,
	})
	require.NoError(t, err)

	t.Run("only the owning client may cancel", func(t *testing.T) {
		other := createClientUser(t, env.db, "other-client@example.com")
		err := env.services.RequestService.Cancel(created.ID, other.ID)
		require.Error(t, err)
	})

	require.NoError(t, env.services.RequestService.Cancel(created.ID, client.ID))

	var fresh models.Request
	require.NoError(t, env.db.First(&fresh, "id = ?", created.ID).Error)
	assert.Equal(t, models.RequestStatusCancelled, fresh.Status)

	// A cancelled request cannot be accepted afterwards.
	_, err = env.services.RequestService.Respond(created.ID, talentUser.ID, &dto.RespondToRequestRequest{Decision: "accepted"})
	assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyResolved)
}

func TestRequestVisibility(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)

	created, err := env.services.RequestService.Create(client.ID, &dto.CreateRequestRequest{
		TalentID: talentUser.ID, ProjectTitle: "x", ProjectDescription: "y", BudgetAmount: 1000,
	})
	require.NoError(t, err)

	_, err = env.services.RequestService.GetByID(created.ID, client.ID, models.UserRoleClient)
	assert.NoError(t, err)

	_, err = env.services.RequestService.GetByID(created.ID, talentUser.ID, models.UserRoleTalent)
	assert.NoError(t, err)

	_, err = env.services.RequestService.GetByID(created.ID, "someone-else", models.UserRoleClient)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	_, err = env.services.RequestService.GetByID(created.ID, "someone-else", models.UserRoleAdmin)
	assert.NoError(t, err)
}

func TestRequestListings(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)

	for i := 0; i < 3; i++ {
		_, err := env.services.RequestService.Create(client.ID, &dto.CreateRequestRequest{
			TalentID: talentUser.ID, ProjectTitle: "x", ProjectDescription: "y", BudgetAmount: 1000,
		})
		require.NoError(t, err)
	}

	forClient, pagination, err := env.services.RequestService.ListForClient(client.ID, &dto.RequestListQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, forClient, 2)
	assert.Equal(t, int64(3), pagination.TotalRecords)
	assert.Equal(t, 2, pagination.TotalPages)

	forTalent, _, err := env.services.RequestService.ListForTalent(talentUser.ID, &dto.RequestListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, forTalent, 3)

	pending, _, err := env.services.RequestService.ListForTalent(talentUser.ID, &dto.RequestListQuery{Status: "pending", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}
