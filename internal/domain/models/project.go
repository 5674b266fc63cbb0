package models

import "time"

// Project member roles.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Project groups a user's work (chats, generated media) and can be
// shared with other users through memberships.
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectMember links a user to a project with a role. InviteAccepted
// stays false until the invited user confirms.
type ProjectMember struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	InviteAccepted bool      `json:"invite_accepted"`
	CreatedAt      time.Time `json:"created_at"`
}
