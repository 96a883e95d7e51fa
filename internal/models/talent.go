package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Talent is the talent profile, owned 1:1 by a User with role=talent.
type Talent struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null" json:"user"`

	FirstName      string     `gorm:"not null" json:"firstName"`
	LastName       string     `gorm:"not null" json:"lastName"`
	Phone          string     `gorm:"not null" json:"phone"`
	Location       string     `gorm:"not null;index" json:"location"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	TalentCategory string     `gorm:"type:varchar(30);not null;index" json:"talentCategory"`
	Bio            string     `gorm:"type:text" json:"bio,omitempty"`
	Experience     string     `json:"experience,omitempty"`

	Specialties datatypes.JSON `gorm:"type:jsonb" json:"specialties,omitempty"` // []string
	Portfolio   datatypes.JSON `gorm:"type:jsonb" json:"portfolio,omitempty"`   // []MediaItem
	Photos      datatypes.JSON `gorm:"type:jsonb" json:"photos,omitempty"`      // []Photo
	SocialMedia datatypes.JSON `gorm:"type:jsonb" json:"socialMedia,omitempty"` // SocialMedia

	// Identity verification document
	NINDocumentURL         string     `json:"ninDocumentUrl,omitempty"`
	NINStorageID           string     `json:"ninStorageId,omitempty"`
	NINVerified            bool       `gorm:"default:false" json:"ninVerified"`
	NINSubmittedToARCON    bool       `gorm:"default:false" json:"ninSubmittedToArcon"`
	NINArconSubmissionDate *time.Time `json:"ninArconSubmissionDate,omitempty"`

	ArconApprovalStatus  ApprovalStatus `gorm:"type:varchar(20);default:'pending';index" json:"arconApprovalStatus"`
	ArconApprovalDate    *time.Time     `json:"arconApprovalDate,omitempty"`
	ArconRejectionReason string         `json:"arconRejectionReason,omitempty"`

	Rating            float64 `gorm:"default:0" json:"rating"`
	ReviewCount       int     `gorm:"default:0" json:"reviewCount"`
	IsPubliclyVisible bool    `gorm:"default:false" json:"isPubliclyVisible"`
	CompletedJobs     int     `gorm:"default:0" json:"completedJobs"`
}

func (t *Talent) FullName() string {
	return t.FirstName + " " + t.LastName
}

// GetSpecialties decodes the specialties list.
func (t *Talent) GetSpecialties() []string {
	var specialties []string
	if len(t.Specialties) > 0 {
		_ = json.Unmarshal(t.Specialties, &specialties)
	}
	return specialties
}

// SetSpecialties encodes the specialties list.
func (t *Talent) SetSpecialties(specialties []string) {
	data, _ := json.Marshal(specialties)
	t.Specialties = datatypes.JSON(data)
}

// GetPortfolio decodes the portfolio media entries.
func (t *Talent) GetPortfolio() []MediaItem {
	var items []MediaItem
	if len(t.Portfolio) > 0 {
		_ = json.Unmarshal(t.Portfolio, &items)
	}
	return items
}

// SetPortfolio encodes the portfolio media entries.
func (t *Talent) SetPortfolio(items []MediaItem) {
	data, _ := json.Marshal(items)
	t.Portfolio = datatypes.JSON(data)
}

// GetPhotos decodes the photo set.
func (t *Talent) GetPhotos() []Photo {
	var photos []Photo
	if len(t.Photos) > 0 {
		_ = json.Unmarshal(t.Photos, &photos)
	}
	return photos
}

// SetPhotos encodes the photo set.
func (t *Talent) SetPhotos(photos []Photo) {
	data, _ := json.Marshal(photos)
	t.Photos = datatypes.JSON(data)
}

// GetSocialMedia decodes the social links.
func (t *Talent) GetSocialMedia() SocialMedia {
	var sm SocialMedia
	if len(t.SocialMedia) > 0 {
		_ = json.Unmarshal(t.SocialMedia, &sm)
	}
	return sm
}

// SetSocialMedia encodes the social links.
func (t *Talent) SetSocialMedia(sm SocialMedia) {
	data, _ := json.Marshal(sm)
	t.SocialMedia = datatypes.JSON(data)
}
