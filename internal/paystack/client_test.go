package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "buyer@example.com", payload["email"])
		// 2500.50 NGN travels as 250050 kobo.
		assert.Equal(t, float64(250050), payload["amount"])
		assert.Equal(t, "https://app.test/callback", payload["callback_url"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "ref-777"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key", "https://app.test/callback")
	tx, err := client.InitializeTransaction(context.Background(), "buyer@example.com", 2500.50, map[string]any{"requestId": "r1"})
	require.NoError(t, err)
	assert.Equal(t, "ref-777", tx.Reference)
	assert.Equal(t, "abc123", tx.AccessCode)
	assert.Equal(t, "https://checkout.paystack.com/abc123", tx.AuthorizationURL)
}

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/ref-777", r.URL.Path)

		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"reference": "ref-777",
				"status": "success",
				"amount": 250050,
				"channel": "card",
				"paid_at": "2026-08-01T10:00:00.000Z"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key", "")
	v, err := client.VerifyTransaction(context.Background(), "ref-777")
	require.NoError(t, err)
	assert.Equal(t, "success", v.Status)
	assert.Equal(t, 2500.50, v.Amount)
	assert.Equal(t, "card", v.Channel)
}

func TestCreateRefund(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refund", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ref-777", payload["transaction"])

		w.Write([]byte(`{
			"status": true,
			"message": "Refund has been queued for processing",
			"data": {"status": "pending", "currency": "NGN", "amount": 250050}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key", "")
	refund, err := client.CreateRefund(context.Background(), "ref-777")
	require.NoError(t, err)
	assert.Equal(t, "pending", refund.Status)
	assert.Equal(t, 2500.50, refund.Amount)
}

func TestAPIErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key", "")
	_, err := client.VerifyTransaction(context.Background(), "nope")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	assert.Equal(t, "Transaction reference not found", apiErr.Message)
}
