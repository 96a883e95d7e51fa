package models

import "time"

// User is the account record. Talent and Client rows reference it 1:1.
//
// The talent-related columns near the bottom are a denormalized read model of
// the owning Talent profile. They are refreshed on every Talent write and are
// never treated as the source of truth.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"column:password_hash" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'talent'" json:"role"`

	IsAnonymous     bool `gorm:"default:false" json:"isAnonymous"`
	IsEmailVerified bool `gorm:"default:false" json:"isEmailVerified"`
	IsActive        bool `gorm:"default:true" json:"isActive"`

	EmailVerificationToken   string     `json:"-"`
	EmailVerificationExpires *time.Time `json:"-"`
	PasswordResetToken       string     `json:"-"`
	PasswordResetExpires     *time.Time `json:"-"`
	PasswordSetToken         string     `json:"-"`
	PasswordSetExpires       *time.Time `json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`

	// Talent mirror (read convenience only)
	FirstName         string         `json:"firstName,omitempty"`
	LastName          string         `json:"lastName,omitempty"`
	Name              string         `json:"name,omitempty"`
	Phone             string         `json:"phone,omitempty"`
	Location          string         `json:"location,omitempty"`
	TalentCategory    string         `json:"talentCategory,omitempty"`
	Bio               string         `json:"bio,omitempty"`
	ApprovalStatus    ApprovalStatus `gorm:"type:varchar(20)" json:"arconApprovalStatus,omitempty"`
	IsPubliclyVisible bool           `gorm:"default:false" json:"isPubliclyVisible"`
	Rating            float64        `gorm:"default:0" json:"rating"`

	// Relations
	Talent *Talent `gorm:"foreignKey:UserID" json:"-"`
	Client *Client `gorm:"foreignKey:UserID" json:"-"`
}

// HasPassword reports whether a credential has been set. Anonymous accounts
// have none until the set-password flow completes.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// FullName prefers the explicit name, falling back to first+last.
func (u *User) FullName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.FirstName == "" && u.LastName == "" {
		return ""
	}
	return u.FirstName + " " + u.LastName
}
