package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a uuid when none was provided. Generating ids in the
// application keeps the models portable across postgres and sqlite.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MediaItem is one uploaded media entry (portfolio or ad media).
type MediaItem struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
	Type      string `json:"type"` // image, video
	Caption   string `json:"caption,omitempty"`
}

// Photo is a plain uploaded photo reference.
type Photo struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// SocialMedia groups a talent's social links.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
	Other     string `json:"other,omitempty"`
}

// ContactPerson is the client's named contact.
type ContactPerson struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}
