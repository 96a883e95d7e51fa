package dto

import (
	"time"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

// CreateContactRequest is the public contact form.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	Reason  string `json:"reason,omitempty"`
}

// UpdateContactStatusRequest moves a message through the triage states.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"contact-status"`
}

// AddContactNoteRequest appends an internal note.
type AddContactNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// RespondToContactRequest sends a reply to the submitter.
type RespondToContactRequest struct {
	Message string `json:"message" binding:"required"`
}

// ContactListQuery filters the admin listing.
type ContactListQuery struct {
	Status string `form:"status,omitempty" validate:"contact-status"`
	Page   int    `form:"page,omitempty"`
	Limit  int    `form:"limit,omitempty"`
}

// ContactDTO is the API projection of a Contact.
type ContactDTO struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone,omitempty"`
	Subject       string                   `json:"subject"`
	Message       string                   `json:"message"`
	Reason        string                   `json:"reason,omitempty"`
	Status        models.ContactStatus     `json:"status"`
	AssignedToID  *string                  `json:"assignedTo,omitempty"`
	InternalNotes []models.ContactNote     `json:"internalNotes,omitempty"`
	ResponsesSent []models.ContactResponse `json:"responsesSent,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
}

func NewContactDTO(c *models.Contact) ContactDTO {
	return ContactDTO{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Subject:       c.Subject,
		Message:       c.Message,
		Reason:        c.Reason,
		Status:        c.Status,
		AssignedToID:  c.AssignedToID,
		InternalNotes: c.GetInternalNotes(),
		ResponsesSent: c.GetResponsesSent(),
		CreatedAt:     c.CreatedAt,
	}
}

func NewContactDTOs(contacts []models.Contact) []ContactDTO {
	out := make([]ContactDTO, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactDTO(&contacts[i]))
	}
	return out
}
