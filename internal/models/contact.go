package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ContactNote is one internal note on a contact message.
type ContactNote struct {
	Note    string    `json:"note"`
	AddedBy string    `json:"addedBy"`
	AddedAt time.Time `json:"addedAt"`
}

// ContactResponse is one reply sent to the submitter.
type ContactResponse struct {
	Message string    `json:"message"`
	SentBy  string    `json:"sentBy"`
	SentAt  time.Time `json:"sentAt"`
}

// Contact is a public contact-form submission.
type Contact struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null;index" json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Reason  string `json:"reason,omitempty"`

	Status       ContactStatus `gorm:"type:varchar(20);default:'new';index" json:"status"`
	AssignedToID *string       `json:"assignedTo,omitempty"`

	// Append-only logs.
	InternalNotes datatypes.JSON `gorm:"type:jsonb" json:"internalNotes,omitempty"` // []ContactNote
	ResponsesSent datatypes.JSON `gorm:"type:jsonb" json:"responsesSent,omitempty"` // []ContactResponse
}

// GetInternalNotes decodes the note log, oldest first.
func (c *Contact) GetInternalNotes() []ContactNote {
	var notes []ContactNote
	if len(c.InternalNotes) > 0 {
		_ = json.Unmarshal(c.InternalNotes, &notes)
	}
	return notes
}

// AppendInternalNote adds a note to the log.
func (c *Contact) AppendInternalNote(note ContactNote) {
	notes := append(c.GetInternalNotes(), note)
	data, _ := json.Marshal(notes)
	c.InternalNotes = datatypes.JSON(data)
}

// GetResponsesSent decodes the response log, oldest first.
func (c *Contact) GetResponsesSent() []ContactResponse {
	var responses []ContactResponse
	if len(c.ResponsesSent) > 0 {
		_ = json.Unmarshal(c.ResponsesSent, &responses)
	}
	return responses
}

// AppendResponse adds a sent reply to the log.
func (c *Contact) AppendResponse(response ContactResponse) {
	responses := append(c.GetResponsesSent(), response)
	data, _ := json.Marshal(responses)
	c.ResponsesSent = datatypes.JSON(data)
}
