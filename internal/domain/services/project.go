package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	UserID      string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents a request to update a project
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddMemberRequest invites a user to a project
type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ProjectService defines business logic operations for projects.
// Resource-level authorization lives here: non-members get ErrNotFound
// (existence is hidden), members without the required role get
// ErrForbidden.
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id, userID string) (*models.Project, error)
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
	UpdateProject(ctx context.Context, id, userID string, req *UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id, userID string) error

	ListMembers(ctx context.Context, projectID, userID string) ([]models.ProjectMember, error)

	// AddMember is owner-only; other members get ErrForbidden
	AddMember(ctx context.Context, projectID, userID string, req *AddMemberRequest) (*models.ProjectMember, error)
}
