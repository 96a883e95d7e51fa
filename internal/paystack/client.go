// Package paystack is a minimal client for the Paystack transactions API.
// Amounts cross the wire in subunits (kobo for NGN).
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway is the payment-provider surface the services depend on.
// The real implementation is Client; tests substitute a fake.
type Gateway interface {
	InitializeTransaction(ctx context.Context, email string, amount float64, metadata map[string]any) (*Transaction, error)
	VerifyTransaction(ctx context.Context, reference string) (*Verification, error)
	CreateRefund(ctx context.Context, reference string) (*Refund, error)
}

// Transaction is the result of initializing a checkout.
type Transaction struct {
	Reference        string
	AccessCode       string
	AuthorizationURL string
}

// Verification is the provider's view of a transaction's outcome.
type Verification struct {
	Reference string
	Status    string // "success", "failed", "abandoned", ...
	Amount    float64
	Channel   string
	PaidAt    string
}

// Refund is the result of a refund request.
type Refund struct {
	Status   string
	Currency string
	Amount   float64
}

// Client talks to the Paystack REST API.
type Client struct {
	BaseURL     string
	SecretKey   string
	CallbackURL string
	HTTPClient  *http.Client
}

func NewClient(baseURL, secretKey, callbackURL string) *Client {
	return &Client{
		BaseURL:     baseURL,
		SecretKey:   secretKey,
		CallbackURL: callbackURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a non-2xx or status=false response from Paystack.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack api error (status %d): %s", e.HTTPStatus, e.Message)
}

// InitializeTransaction starts a checkout session. amount is in major units.
func (c *Client) InitializeTransaction(ctx context.Context, email string, amount float64, metadata map[string]any) (*Transaction, error) {
	payload := map[string]any{
		"email":  email,
		"amount": toSubunits(amount),
	}
	if c.CallbackURL != "" {
		payload["callback_url"] = c.CallbackURL
	}
	if len(metadata) > 0 {
		payload["metadata"] = metadata
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", payload, &data); err != nil {
		return nil, err
	}

	return &Transaction{
		Reference:        data.Reference,
		AccessCode:       data.AccessCode,
		AuthorizationURL: data.AuthorizationURL,
	}, nil
}

// VerifyTransaction fetches the current state of a transaction by reference.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*Verification, error) {
	var data struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Channel   string `json:"channel"`
		PaidAt    string `json:"paid_at"`
	}
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return nil, err
	}

	return &Verification{
		Reference: data.Reference,
		Status:    data.Status,
		Amount:    fromSubunits(data.Amount),
		Channel:   data.Channel,
		PaidAt:    data.PaidAt,
	}, nil
}

// CreateRefund asks Paystack to refund the full transaction.
func (c *Client) CreateRefund(ctx context.Context, reference string) (*Refund, error) {
	payload := map[string]any{
		"transaction": reference,
	}

	var data struct {
		Status   string `json:"status"`
		Currency string `json:"currency"`
		Amount   int64  `json:"amount"`
	}
	if err := c.do(ctx, http.MethodPost, "/refund", payload, &data); err != nil {
		return nil, err
	}

	return &Refund{
		Status:   data.Status,
		Currency: data.Currency,
		Amount:   fromSubunits(data.Amount),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Status {
		return &APIError{HTTPStatus: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func toSubunits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func fromSubunits(amount int64) float64 {
	return float64(amount) / 100
}
