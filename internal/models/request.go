package models

import "time"

// Request is a client's booking request to a talent.
type Request struct {
	BaseModel
	ClientUserID string `gorm:"not null;index" json:"client"`
	TalentUserID string `gorm:"not null;index" json:"talent"`

	ProjectTitle       string     `gorm:"not null" json:"projectTitle"`
	ProjectDescription string     `gorm:"type:text;not null" json:"projectDescription"`
	BudgetAmount       float64    `gorm:"not null" json:"budgetAmount"`
	BudgetCurrency     string     `gorm:"type:varchar(10);default:'NGN'" json:"budgetCurrency"`
	TimelineStart      *time.Time `json:"timelineStart,omitempty"`
	TimelineEnd        *time.Time `json:"timelineEnd,omitempty"`
	ClientNotes        string     `gorm:"type:text" json:"clientNotes,omitempty"`

	Status RequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Talent response, set once when the request leaves pending.
	ResponseDecision string     `json:"responseDecision,omitempty"`
	ResponseMessage  string     `json:"responseMessage,omitempty"`
	RespondedAt      *time.Time `json:"respondedAt,omitempty"`

	ClientUser *User `gorm:"foreignKey:ClientUserID" json:"clientUser,omitempty"`
	TalentUser *User `gorm:"foreignKey:TalentUserID" json:"talentUser,omitempty"`
}

// IsResolved reports whether the request left the pending state.
func (r *Request) IsResolved() bool {
	return r.Status != RequestStatusPending
}
