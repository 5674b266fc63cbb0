package models

import "time"

// Lead statuses. New leads always start as "new"; the rest are set by
// users working the pipeline.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusClosed    = "closed"
)

// LeadSourceWidget marks leads captured through the embeddable widget,
// the only source this API creates.
const LeadSourceWidget = "widget"

// Lead is a contact captured by an agent's widget.
type Lead struct {
	ID             string    `json:"id"`
	AgentID        string    `json:"agent_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	InitialMessage string    `json:"initial_message,omitempty"`
	Status         string    `json:"status"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
