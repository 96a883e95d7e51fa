package models

type UserRole string
type ApprovalStatus string
type RequestStatus string
type PaymentStatus string
type ArconStatus string
type PublishStatus string
type ContactStatus string
type VerificationStatus string

const (
	UserRoleSuperadmin UserRole = "superadmin"
	UserRoleAdmin      UserRole = "admin"
	UserRoleClient     UserRole = "client"
	UserRoleTalent     UserRole = "talent"
	UserRoleArcon      UserRole = "arcon"

	ApprovalStatusPending     ApprovalStatus = "pending"
	ApprovalStatusApproved    ApprovalStatus = "approved"
	ApprovalStatusRejected    ApprovalStatus = "rejected"
	ApprovalStatusUnderReview ApprovalStatus = "under-review"

	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusCompleted RequestStatus = "completed"

	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"

	ArconStatusPending     ArconStatus = "pending"
	ArconStatusUnderReview ArconStatus = "under-review"
	ArconStatusApproved    ArconStatus = "approved"
	ArconStatusRejected    ArconStatus = "rejected"

	PublishStatusDraft        PublishStatus = "draft"
	PublishStatusPendingArcon PublishStatus = "pending-arcon"
	PublishStatusApproved     PublishStatus = "approved"
	PublishStatusRejected     PublishStatus = "rejected"
	PublishStatusPublished    PublishStatus = "published"
	PublishStatusArchived     PublishStatus = "archived"

	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "inProgress"
	ContactStatusResolved   ContactStatus = "resolved"
	ContactStatusClosed     ContactStatus = "closed"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// TalentCategories is the closed set of talent categories.
var TalentCategories = []string{
	"actor", "model", "voice-artist", "musician", "dancer", "influencer", "other",
}

// AdCategories is the closed set of ad categories.
var AdCategories = []string{
	"tv-commercial", "radio", "print", "digital", "social-media", "billboard", "other",
}

// IsValidTalentCategory reports whether c is a known talent category.
func IsValidTalentCategory(c string) bool {
	for _, v := range TalentCategories {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidAdCategory reports whether c is a known ad category.
func IsValidAdCategory(c string) bool {
	for _, v := range AdCategories {
		if v == c {
			return true
		}
	}
	return false
}
