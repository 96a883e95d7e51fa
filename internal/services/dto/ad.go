package dto

import (
	"time"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

// CreateAdRequest is the multipart ad submission form. Media parts are
// handled by the handler separately.
type CreateAdRequest struct {
	RequestID      string `form:"requestId" binding:"required"`
	PaymentID      string `form:"paymentId" binding:"required"`
	Title          string `form:"title" binding:"required"`
	Description    string `form:"description" binding:"required"`
	Category       string `form:"category" binding:"required" validate:"ad-category"`
	TargetAudience string `form:"targetAudience,omitempty"`
}

// ArconReviewRequest is the regulator's decision on an ad.
type ArconReviewRequest struct {
	AdID            string `json:"adId" binding:"required"`
	Decision        string `json:"decision" binding:"required,oneof=approved rejected under-review"`
	Notes           string `json:"notes,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// AdListQuery filters an ad listing.
type AdListQuery struct {
	Status   string `form:"status,omitempty"`
	Category string `form:"category,omitempty" validate:"ad-category"`
	Page     int    `form:"page,omitempty"`
	Limit    int    `form:"limit,omitempty"`
}

// AdDTO is the API projection of an Ad.
type AdDTO struct {
	ID                   string             `json:"id"`
	ClientUserID         string             `json:"client"`
	TalentUserID         string             `json:"talent,omitempty"`
	RequestID            string             `json:"request"`
	PaymentID            string             `json:"payment"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	Category             string             `json:"category"`
	TargetAudience       string             `json:"targetAudience,omitempty"`
	MediaFiles           []models.MediaItem `json:"mediaFiles,omitempty"`
	ArconStatus          models.ArconStatus `json:"arconStatus"`
	ArconSubmissionDate  *time.Time         `json:"arconSubmissionDate,omitempty"`
	ArconReviewDate      *time.Time         `json:"arconReviewDate,omitempty"`
	ArconReviewNotes     string             `json:"arconReviewNotes,omitempty"`
	ArconRejectionReason string             `json:"arconRejectionReason,omitempty"`
	ArconReviewedBy      string             `json:"arconReviewedBy,omitempty"`
	PublishStatus        models.PublishStatus `json:"publishStatus"`
	PublishDate          *time.Time         `json:"publishDate,omitempty"`
	Views                int                `json:"views"`
	CreatedAt            time.Time          `json:"createdAt"`
}

func NewAdDTO(a *models.Ad) AdDTO {
	return AdDTO{
		ID:                   a.ID,
		ClientUserID:         a.ClientUserID,
		TalentUserID:         a.TalentUserID,
		RequestID:            a.RequestID,
		PaymentID:            a.PaymentID,
		Title:                a.Title,
		Description:          a.Description,
		Category:             a.Category,
		TargetAudience:       a.TargetAudience,
		MediaFiles:           a.GetMediaFiles(),
		ArconStatus:          a.ArconStatus,
		ArconSubmissionDate:  a.ArconSubmissionDate,
		ArconReviewDate:      a.ArconReviewDate,
		ArconReviewNotes:     a.ArconReviewNotes,
		ArconRejectionReason: a.ArconRejectionReason,
		ArconReviewedBy:      a.ArconReviewedBy,
		PublishStatus:        a.PublishStatus,
		PublishDate:          a.PublishDate,
		Views:                a.Views,
		CreatedAt:            a.CreatedAt,
	}
}

func NewAdDTOs(ads []models.Ad) []AdDTO {
	out := make([]AdDTO, 0, len(ads))
	for i := range ads {
		out = append(out, NewAdDTO(&ads[i]))
	}
	return out
}

// AdStats is the per-status breakdown for the admin listing.
type AdStats struct {
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"underReview"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
}

// AdDocumentsDTO is the regulator's view of the talent documents
// attached to an ad.
type AdDocumentsDTO struct {
	AdID     string   `json:"adId"`
	TalentID string   `json:"talentId"`
	Type     string   `json:"type"`
	URLs     []string `json:"urls"`
}
