package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ArconReview is a single regulator decision on an ad, kept as history.
// The latest entry mirrors the scalar review columns.
type ArconReview struct {
	Decision        string    `json:"decision"`
	Notes           string    `json:"notes,omitempty"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	ReviewedBy      string    `json:"reviewedBy"`
	ReviewedAt      time.Time `json:"reviewedAt"`
}

// Ad is an advertisement submitted by a client against a paid, accepted request.
type Ad struct {
	BaseModel
	ClientUserID string `gorm:"not null;index" json:"client"`
	TalentUserID string `gorm:"index" json:"talent,omitempty"`
	RequestID    string `gorm:"not null;index" json:"request"`
	PaymentID    string `gorm:"not null;index" json:"payment"`

	Title          string `gorm:"not null" json:"title"`
	Description    string `gorm:"type:text;not null" json:"description"`
	Category       string `gorm:"type:varchar(30);not null;index" json:"category"`
	TargetAudience string `json:"targetAudience,omitempty"`

	MediaFiles datatypes.JSON `gorm:"type:jsonb" json:"mediaFiles,omitempty"` // []MediaItem

	ArconStatus          ArconStatus    `gorm:"type:varchar(20);default:'pending';index" json:"arconStatus"`
	ArconSubmissionDate  *time.Time     `json:"arconSubmissionDate,omitempty"`
	ArconReviewDate      *time.Time     `json:"arconReviewDate,omitempty"`
	ArconReviewNotes     string         `gorm:"type:text" json:"arconReviewNotes,omitempty"`
	ArconRejectionReason string         `json:"arconRejectionReason,omitempty"`
	ArconReviewedBy      string         `json:"arconReviewedBy,omitempty"`
	ArconReviews         datatypes.JSON `gorm:"type:jsonb" json:"arconReviews,omitempty"` // []ArconReview

	// Audit flags for regulator document access. Set once, never reset.
	ArconDownloadedNIN    bool `gorm:"default:false" json:"arconDownloadedNin"`
	ArconDownloadedPhotos bool `gorm:"default:false" json:"arconDownloadedPhotos"`

	PublishStatus PublishStatus `gorm:"type:varchar(20);default:'pending-arcon';index" json:"publishStatus"`
	PublishDate   *time.Time    `json:"publishDate,omitempty"`
	ExpiryDate    *time.Time    `json:"expiryDate,omitempty"`
	Views         int           `gorm:"default:0" json:"views"`

	Request *Request `gorm:"foreignKey:RequestID" json:"requestDetails,omitempty"`
	Payment *Payment `gorm:"foreignKey:PaymentID" json:"paymentDetails,omitempty"`
}

// GetMediaFiles decodes the attached media entries.
func (a *Ad) GetMediaFiles() []MediaItem {
	var items []MediaItem
	if len(a.MediaFiles) > 0 {
		_ = json.Unmarshal(a.MediaFiles, &items)
	}
	return items
}

// SetMediaFiles encodes the attached media entries.
func (a *Ad) SetMediaFiles(items []MediaItem) {
	data, _ := json.Marshal(items)
	a.MediaFiles = datatypes.JSON(data)
}

// GetArconReviews decodes the review history, oldest first.
func (a *Ad) GetArconReviews() []ArconReview {
	var reviews []ArconReview
	if len(a.ArconReviews) > 0 {
		_ = json.Unmarshal(a.ArconReviews, &reviews)
	}
	return reviews
}

// AppendArconReview adds a decision to the review history.
func (a *Ad) AppendArconReview(review ArconReview) {
	reviews := append(a.GetArconReviews(), review)
	data, _ := json.Marshal(reviews)
	a.ArconReviews = datatypes.JSON(data)
}
