package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

func clientTotalSpent(t *testing.T, env *testEnv, clientUserID string) float64 {
	t.Helper()
	var client models.Client
	require.NoError(t, env.db.First(&client, "user_id = ?", clientUserID).Error)
	return client.TotalSpent
}

func TestInitializePayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	resp, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
		RequestID: request.ID,
		Amount:    250000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
	assert.NotEmpty(t, resp.AuthorizationURL)
	assert.Equal(t, models.PaymentStatusPending, resp.Payment.Status)
	assert.Equal(t, "NGN", resp.Payment.Currency)

	// The persisted row carries the gateway reference.
	var payment models.Payment
	require.NoError(t, env.db.First(&payment, "id = ?", resp.Payment.ID).Error)
	assert.Equal(t, resp.Reference, payment.Reference)
}

func TestInitializePaymentWithoutRequestLink(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")

	resp, err := env.services.PaymentService.Initialize(context.Background(), client.ID, &dto.InitializePaymentRequest{
		Amount:   5000,
		Metadata: map[string]any{"purpose": "listing-boost"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Payment.RequestID)
	assert.Equal(t, models.PaymentStatusPending, resp.Payment.Status)

	var payment models.Payment
	require.NoError(t, env.db.First(&payment, "id = ?", resp.Payment.ID).Error)
	assert.Nil(t, payment.RequestID)
	assert.Equal(t, "listing-boost", payment.GetMetadata()["purpose"])
}

func TestInitializePaymentGatewayFailureIsRecorded(t *testing.T) {
	env := newTestEnv(t)
	client := createClientUser(t, env.db, "client@example.com")
	env.gateway.initErr = errors.New("gateway down")

	_, err := env.services.PaymentService.Initialize(context.Background(), client.ID, &dto.InitializePaymentRequest{
		Amount: 1000,
	})
	require.Error(t, err)

	// The pending row was created before the gateway call and marked failed.
	var payments []models.Payment
	require.NoError(t, env.db.Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, models.PaymentStatusFailed, payments[0].Status)
}

func TestInitializePaymentPreconditions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
			RequestID: request.ID, Amount: 0,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentAmount)
	})

	t.Run("request must be accepted", func(t *testing.T) {
		pending := &models.Request{
			ClientUserID: client.ID, TalentUserID: talentUser.ID,
			ProjectTitle: "x", ProjectDescription: "y",
			BudgetAmount: 1000, BudgetCurrency: "NGN",
			Status: models.RequestStatusPending,
		}
		require.NoError(t, env.db.Create(pending).Error)

		_, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
			RequestID: pending.ID, Amount: 1000,
		})
		assert.ErrorIs(t, err, apperrors.ErrRequestNotAccepted)
	})

	t.Run("request must belong to the caller", func(t *testing.T) {
		other := createClientUser(t, env.db, "other@example.com")
		_, err := env.services.PaymentService.Initialize(ctx, other.ID, &dto.InitializePaymentRequest{
			RequestID: request.ID, Amount: 1000,
		})
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 403, appErr.HTTPCode)
	})
}

func TestVerifyCreditsSpendExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	resp, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
		RequestID: request.ID, Amount: 250000,
	})
	require.NoError(t, err)

	env.gateway.scriptVerification(resp.Reference, "success", 250000)

	verified, err := env.services.PaymentService.Verify(ctx, resp.Reference)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, verified.Status)
	assert.NotNil(t, verified.PaidAt)
	assert.Equal(t, float64(250000), clientTotalSpent(t, env, client.ID))

	// Re-verifying a settled payment changes nothing.
	verified, err = env.services.PaymentService.Verify(ctx, resp.Reference)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, verified.Status)
	assert.Equal(t, float64(250000), clientTotalSpent(t, env, client.ID))
}

func TestVerifyNonSuccessOutcomesFail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	for _, status := range []string{"failed", "abandoned", "ongoing"} {
		t.Run(status, func(t *testing.T) {
			resp, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
				RequestID: request.ID, Amount: 1000,
			})
			require.NoError(t, err)

			env.gateway.scriptVerification(resp.Reference, status, 1000)
			verified, err := env.services.PaymentService.Verify(ctx, resp.Reference)
			require.NoError(t, err)
			assert.Equal(t, models.PaymentStatusFailed, verified.Status)
			assert.Zero(t, clientTotalSpent(t, env, client.ID))
		})
	}
}

func TestVerifyUnknownReference(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.services.PaymentService.Verify(context.Background(), "no-such-ref")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestRefundDebitsSpend(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	resp, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
		RequestID: request.ID, Amount: 50000,
	})
	require.NoError(t, err)
	env.gateway.scriptVerification(resp.Reference, "success", 50000)
	_, err = env.services.PaymentService.Verify(ctx, resp.Reference)
	require.NoError(t, err)
	require.Equal(t, float64(50000), clientTotalSpent(t, env, client.ID))

	refunded, err := env.services.PaymentService.Refund(ctx, &dto.RefundPaymentRequest{
		PaymentID: resp.Payment.ID,
		Reason:    "Campaign cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	assert.Equal(t, float64(50000), refunded.RefundAmount)
	assert.NotNil(t, refunded.RefundedAt)
	assert.Zero(t, clientTotalSpent(t, env, client.ID))

	// A refunded payment cannot be refunded again.
	_, err = env.services.PaymentService.Refund(ctx, &dto.RefundPaymentRequest{
		PaymentID: resp.Payment.ID,
		Reason:    "again",
	})
	assert.ErrorIs(t, err, apperrors.ErrPaymentNotRefundable)
}

func TestRefundRequiresSuccessfulPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	resp, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
		RequestID: request.ID, Amount: 1000,
	})
	require.NoError(t, err)

	_, err = env.services.PaymentService.Refund(ctx, &dto.RefundPaymentRequest{
		PaymentID: resp.Payment.ID,
		Reason:    "not settled yet",
	})
	assert.ErrorIs(t, err, apperrors.ErrPaymentNotRefundable)
}

func TestPaymentListSummaries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	first, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
		RequestID: request.ID, Amount: 10000,
	})
	require.NoError(t, err)
	env.gateway.scriptVerification(first.Reference, "success", 10000)
	_, err = env.services.PaymentService.Verify(ctx, first.Reference)
	require.NoError(t, err)

	second, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
		RequestID: request.ID, Amount: 5000,
	})
	require.NoError(t, err)
	env.gateway.scriptVerification(second.Reference, "failed", 5000)
	_, err = env.services.PaymentService.Verify(ctx, second.Reference)
	require.NoError(t, err)

	payments, summary, pagination, err := env.services.PaymentService.ListForClient(client.ID, &dto.PaymentListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, int64(2), pagination.TotalRecords)
	assert.Equal(t, float64(10000), summary.TotalSuccessful)

	onlyFailed, _, _, err := env.services.PaymentService.ListAll(&dto.PaymentListQuery{Status: "failed", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, onlyFailed, 1)
}

func TestGetPaymentVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	client := createClientUser(t, env.db, "client@example.com")
	talentUser, _ := createTalentUser(t, env.db, "talent@example.com", true)
	request := createAcceptedRequest(t, env.db, client.ID, talentUser.ID)

	resp, err := env.services.PaymentService.Initialize(ctx, client.ID, &dto.InitializePaymentRequest{
		RequestID: request.ID, Amount: 1000,
	})
	require.NoError(t, err)

	_, err = env.services.PaymentService.GetByID(resp.Payment.ID, client.ID, models.UserRoleClient)
	assert.NoError(t, err)

	// An existing payment the caller does not own is forbidden, not hidden.
	_, err = env.services.PaymentService.GetByID(resp.Payment.ID, "someone-else", models.UserRoleClient)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	_, err = env.services.PaymentService.GetByID(resp.Payment.ID, "someone-else", models.UserRoleSuperadmin)
	assert.NoError(t, err)
}
