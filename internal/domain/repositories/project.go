package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// ProjectRepository defines data access for projects and memberships
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID without a membership check;
	// callers are expected to authorize separately.
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// ListForUser retrieves projects the user owns or is a member of,
	// ordered by updated_at DESC
	ListForUser(ctx context.Context, userID string) ([]models.Project, error)

	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error

	// GetMember returns the membership row for a user in a project,
	// or ErrNotFound if the user is not a member.
	GetMember(ctx context.Context, projectID, userID string) (*models.ProjectMember, error)

	ListMembers(ctx context.Context, projectID string) ([]models.ProjectMember, error)
	AddMember(ctx context.Context, member *models.ProjectMember) error
}
