package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Payment records a gateway transaction made by a client, optionally tied
// to a booking request.
type Payment struct {
	BaseModel
	ClientUserID string  `gorm:"not null;index" json:"client"`
	RequestID    *string `gorm:"index" json:"request,omitempty"`

	// AdID is set when the payment is consumed by an ad submission.
	// A NULL AdID marks the payment as available for claiming.
	AdID *string `gorm:"index" json:"ad,omitempty"`

	Amount    float64       `gorm:"not null" json:"amount"`
	Currency  string        `gorm:"type:varchar(10);default:'NGN'" json:"currency"`
	Gateway   string        `gorm:"type:varchar(20);default:'paystack'" json:"gateway"`
	Reference string        `gorm:"uniqueIndex;not null" json:"reference"`
	Status    PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	PaymentMethod    string         `json:"paymentMethod,omitempty"`
	AuthorizationURL string         `json:"authorizationUrl,omitempty"`
	AccessCode       string         `json:"-"`
	PaidAt           *time.Time     `json:"paidAt,omitempty"`
	RefundedAt       *time.Time     `json:"refundedAt,omitempty"`
	RefundReason     string         `json:"refundReason,omitempty"`
	RefundAmount     float64        `gorm:"default:0" json:"refundAmount,omitempty"`
	Metadata         datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	Request *Request `gorm:"foreignKey:RequestID" json:"requestDetails,omitempty"`
}

// IsClaimable reports whether the payment can still back a new ad.
func (p *Payment) IsClaimable() bool {
	return p.Status == PaymentStatusSuccess && p.AdID == nil
}

// GetMetadata decodes the free-form metadata map.
func (p *Payment) GetMetadata() map[string]any {
	meta := map[string]any{}
	if len(p.Metadata) > 0 {
		_ = json.Unmarshal(p.Metadata, &meta)
	}
	return meta
}

// SetMetadata encodes the free-form metadata map.
func (p *Payment) SetMetadata(meta map[string]any) {
	data, _ := json.Marshal(meta)
	p.Metadata = datatypes.JSON(data)
}
