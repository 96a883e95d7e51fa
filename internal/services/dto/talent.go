package dto

import (
	"time"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

// SubmitTalentRequest is the public multipart submission form. File parts
// (nin, photos, portfolio) are handled by the handler separately.
type SubmitTalentRequest struct {
	FirstName      string `form:"firstName" binding:"required"`
	LastName       string `form:"lastName" binding:"required"`
	Email          string `form:"email" binding:"required,email"`
	Phone          string `form:"phone" binding:"required"`
	Location       string `form:"location" binding:"required"`
	DateOfBirth    string `form:"dateOfBirth,omitempty"`
	TalentCategory string `form:"talentCategory" binding:"required" validate:"talent-category"`
	Bio            string `form:"bio,omitempty"`
	Experience     string `form:"experience,omitempty"`

	// Comma-separated in the form.
	Specialties string `form:"specialties,omitempty"`

	Instagram string `form:"instagram,omitempty"`
	Twitter   string `form:"twitter,omitempty"`
	Website   string `form:"website,omitempty"`
}

// UpdateTalentProfileRequest is the authenticated create-or-update form.
type UpdateTalentProfileRequest struct {
	FirstName      string `form:"firstName,omitempty"`
	LastName       string `form:"lastName,omitempty"`
	Phone          string `form:"phone,omitempty"`
	Location       string `form:"location,omitempty"`
	DateOfBirth    string `form:"dateOfBirth,omitempty"`
	TalentCategory string `form:"talentCategory,omitempty" validate:"talent-category"`
	Bio            string `form:"bio,omitempty"`
	Experience     string `form:"experience,omitempty"`
	Specialties    string `form:"specialties,omitempty"`

	Instagram string `form:"instagram,omitempty"`
	Twitter   string `form:"twitter,omitempty"`
	Website   string `form:"website,omitempty"`
}

// UploadedFile is a stored media part handed from handler to service.
type UploadedFile struct {
	URL         string
	StorageID   string
	ContentType string
	Caption     string
}

// TalentUploads groups the stored file parts of a submission.
type TalentUploads struct {
	NIN       *UploadedFile
	Photos    []UploadedFile
	Portfolio []UploadedFile
}

// ArconApprovalRequest is the regulator's decision on a talent profile.
type ArconApprovalRequest struct {
	TalentID        string `json:"talentId" binding:"required"`
	Status          string `json:"status" binding:"required,oneof=approved rejected under-review"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// ApprovedTalentsQuery filters the public listing.
type ApprovedTalentsQuery struct {
	Category string `form:"category,omitempty" validate:"talent-category"`
	Location string `form:"location,omitempty"`
	Search   string `form:"search,omitempty"`
	Page     int    `form:"page,omitempty"`
	Limit    int    `form:"limit,omitempty"`
}

// TalentDTO is the API projection of a Talent.
type TalentDTO struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"user"`
	FirstName            string                `json:"firstName"`
	LastName             string                `json:"lastName"`
	Phone                string                `json:"phone,omitempty"`
	Location             string                `json:"location"`
	DateOfBirth          *time.Time            `json:"dateOfBirth,omitempty"`
	TalentCategory       string                `json:"talentCategory"`
	Bio                  string                `json:"bio,omitempty"`
	Experience           string                `json:"experience,omitempty"`
	Specialties          []string              `json:"specialties,omitempty"`
	Portfolio            []models.MediaItem    `json:"portfolio,omitempty"`
	Photos               []models.Photo        `json:"photos,omitempty"`
	SocialMedia          models.SocialMedia    `json:"socialMedia,omitempty"`
	ArconApprovalStatus  models.ApprovalStatus `json:"arconApprovalStatus"`
	ArconApprovalDate    *time.Time            `json:"arconApprovalDate,omitempty"`
	ArconRejectionReason string                `json:"arconRejectionReason,omitempty"`
	Rating               float64               `json:"rating"`
	ReviewCount          int                   `json:"reviewCount"`
	IsPubliclyVisible    bool                  `json:"isPubliclyVisible"`
	CompletedJobs        int                   `json:"completedJobs"`
	CreatedAt            time.Time             `json:"createdAt"`
}

// NewTalentDTO projects a model. Identity document fields are omitted:
// they are served only through the documents endpoint.
func NewTalentDTO(t *models.Talent) TalentDTO {
	return TalentDTO{
		ID:                   t.ID,
		UserID:               t.UserID,
		FirstName:            t.FirstName,
		LastName:             t.LastName,
		Phone:                t.Phone,
		Location:             t.Location,
		DateOfBirth:          t.DateOfBirth,
		TalentCategory:       t.TalentCategory,
		Bio:                  t.Bio,
		Experience:           t.Experience,
		Specialties:          t.GetSpecialties(),
		Portfolio:            t.GetPortfolio(),
		Photos:               t.GetPhotos(),
		SocialMedia:          t.GetSocialMedia(),
		ArconApprovalStatus:  t.ArconApprovalStatus,
		ArconApprovalDate:    t.ArconApprovalDate,
		ArconRejectionReason: t.ArconRejectionReason,
		Rating:               t.Rating,
		ReviewCount:          t.ReviewCount,
		IsPubliclyVisible:    t.IsPubliclyVisible,
		CompletedJobs:        t.CompletedJobs,
		CreatedAt:            t.CreatedAt,
	}
}

// PublicTalentDTO strips contact details for the public listing.
func PublicTalentDTO(t *models.Talent) TalentDTO {
	d := NewTalentDTO(t)
	d.Phone = ""
	return d
}

// TalentDocumentsDTO is the regulator's document view.
type TalentDocumentsDTO struct {
	TalentID string   `json:"talentId"`
	Type     string   `json:"type"`
	URLs     []string `json:"urls"`
}
