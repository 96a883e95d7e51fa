package dto

import (
	"time"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

// InitializePaymentRequest starts a checkout. The request link is optional;
// when set it must point at an accepted request owned by the caller.
type InitializePaymentRequest struct {
	RequestID string         `json:"requestId,omitempty"`
	Amount    float64        `json:"amount" binding:"required,gt=0"`
	Currency  string         `json:"currency,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// RefundPaymentRequest asks the gateway to reverse a successful payment.
type RefundPaymentRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// PaymentListQuery filters a payment listing.
type PaymentListQuery struct {
	Status string `form:"status,omitempty"`
	Page   int    `form:"page,omitempty"`
	Limit  int    `form:"limit,omitempty"`
}

// InitializePaymentResponse carries the gateway checkout handle.
type InitializePaymentResponse struct {
	Payment          PaymentDTO `json:"payment"`
	AuthorizationURL string     `json:"authorizationUrl"`
	AccessCode       string     `json:"accessCode"`
	Reference        string     `json:"reference"`
}

// PaymentDTO is the API projection of a Payment.
type PaymentDTO struct {
	ID            string               `json:"id"`
	ClientUserID  string               `json:"client"`
	RequestID     string               `json:"request,omitempty"`
	AdID          *string              `json:"ad,omitempty"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Gateway       string               `json:"gateway"`
	Reference     string               `json:"reference"`
	Status        models.PaymentStatus `json:"status"`
	PaymentMethod string               `json:"paymentMethod,omitempty"`
	PaidAt        *time.Time           `json:"paidAt,omitempty"`
	RefundedAt    *time.Time           `json:"refundedAt,omitempty"`
	RefundReason  string               `json:"refundReason,omitempty"`
	RefundAmount  float64              `json:"refundAmount,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func NewPaymentDTO(p *models.Payment) PaymentDTO {
	out := PaymentDTO{
		ID:            p.ID,
		ClientUserID:  p.ClientUserID,
		AdID:          p.AdID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Gateway:       p.Gateway,
		Reference:     p.Reference,
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		PaidAt:        p.PaidAt,
		RefundedAt:    p.RefundedAt,
		RefundReason:  p.RefundReason,
		RefundAmount:  p.RefundAmount,
		CreatedAt:     p.CreatedAt,
	}
	if p.RequestID != nil {
		out.RequestID = *p.RequestID
	}
	return out
}

func NewPaymentDTOs(payments []models.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentDTO(&payments[i]))
	}
	return out
}

// PaymentListSummary aggregates a listing.
type PaymentListSummary struct {
	TotalSuccessful float64 `json:"totalSuccessful"`
	TotalRefunded   float64 `json:"totalRefunded"`
	Count           int64   `json:"count"`
}
