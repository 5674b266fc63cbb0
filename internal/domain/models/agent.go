package models

import "time"

// Agent is a configured assistant that the lead-capture widget and CRM
// queries are attached to. WorkspaceSlug links it to an AnythingLLM
// workspace.
type Agent struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	WelcomeMessage string    `json:"welcome_message"`
	WorkspaceSlug  string    `json:"workspace_slug"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
