package dto

import (
	"time"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

// CreateRequestRequest opens a booking request against a talent.
type CreateRequestRequest struct {
	TalentID           string  `json:"talentId" binding:"required"`
	ProjectTitle       string  `json:"projectTitle" binding:"required"`
	ProjectDescription string  `json:"projectDescription" binding:"required"`
	BudgetAmount       float64 `json:"budgetAmount" binding:"required,gt=0"`
	BudgetCurrency     string  `json:"budgetCurrency,omitempty"`
	TimelineStart      string  `json:"timelineStart,omitempty"`
	TimelineEnd        string  `json:"timelineEnd,omitempty"`
	ClientNotes        string  `json:"clientNotes,omitempty"`
}

// RespondToRequestRequest is the talent's accept/decline decision.
type RespondToRequestRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted declined"`
	Message  string `json:"message,omitempty"`
}

// RequestListQuery filters a request listing.
type RequestListQuery struct {
	Status string `form:"status,omitempty" validate:"request-status"`
	Page   int    `form:"page,omitempty"`
	Limit  int    `form:"limit,omitempty"`
}

// RequestDTO is the API projection of a Request.
type RequestDTO struct {
	ID                 string               `json:"id"`
	ClientUserID       string               `json:"client"`
	TalentUserID       string               `json:"talent"`
	ProjectTitle       string               `json:"projectTitle"`
	ProjectDescription string               `json:"projectDescription"`
	BudgetAmount       float64              `json:"budgetAmount"`
	BudgetCurrency     string               `json:"budgetCurrency"`
	TimelineStart      *time.Time           `json:"timelineStart,omitempty"`
	TimelineEnd        *time.Time           `json:"timelineEnd,omitempty"`
	ClientNotes        string               `json:"clientNotes,omitempty"`
	Status             models.RequestStatus `json:"status"`
	ResponseDecision   string               `json:"responseDecision,omitempty"`
	ResponseMessage    string               `json:"responseMessage,omitempty"`
	RespondedAt        *time.Time           `json:"respondedAt,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
}

func NewRequestDTO(r *models.Request) RequestDTO {
	return RequestDTO{
		ID:                 r.ID,
		ClientUserID:       r.ClientUserID,
		TalentUserID:       r.TalentUserID,
		ProjectTitle:       r.ProjectTitle,
		ProjectDescription: r.ProjectDescription,
		BudgetAmount:       r.BudgetAmount,
		BudgetCurrency:     r.BudgetCurrency,
		TimelineStart:      r.TimelineStart,
		TimelineEnd:        r.TimelineEnd,
		ClientNotes:        r.ClientNotes,
		Status:             r.Status,
		ResponseDecision:   r.ResponseDecision,
		ResponseMessage:    r.ResponseMessage,
		RespondedAt:        r.RespondedAt,
		CreatedAt:          r.CreatedAt,
	}
}

func NewRequestDTOs(requests []models.Request) []RequestDTO {
	out := make([]RequestDTO, 0, len(requests))
	for i := range requests {
		out = append(out, NewRequestDTO(&requests[i]))
	}
	return out
}
