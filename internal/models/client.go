package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Client is the hiring-side profile, owned 1:1 by a User with role=client.
type Client struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null" json:"user"`

	CompanyName   string         `gorm:"not null" json:"companyName"`
	ContactPerson datatypes.JSON `gorm:"type:jsonb" json:"contactPerson,omitempty"` // ContactPerson
	Industry      string         `json:"industry,omitempty"`
	Location      string         `json:"location,omitempty"`
	Website       string         `json:"website,omitempty"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	LogoURL       string         `json:"logoUrl,omitempty"`
	LogoStorageID string         `json:"logoStorageId,omitempty"`

	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verificationStatus"`
	TotalAdsSubmitted  int                `gorm:"default:0" json:"totalAdsSubmitted"`
	TotalSpent         float64            `gorm:"default:0" json:"totalSpent"`
}

// GetContactPerson decodes the embedded contact record.
func (c *Client) GetContactPerson() ContactPerson {
	var cp ContactPerson
	if len(c.ContactPerson) > 0 {
		_ = json.Unmarshal(c.ContactPerson, &cp)
	}
	return cp
}

// SetContactPerson encodes the embedded contact record.
func (c *Client) SetContactPerson(cp ContactPerson) {
	data, _ := json.Marshal(cp)
	c.ContactPerson = datatypes.JSON(data)
}
