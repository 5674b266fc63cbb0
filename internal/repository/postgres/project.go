package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a project and its owner membership in one transaction.
// Repositories run against GetExecutor so the service can wrap both
// writes in ExecTx.
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	exec := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Projects)

	err := exec.QueryRow(ctx, query,
		project.OwnerID,
		project.Name,
		project.Description,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("project '%s' already exists: %w", project.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID without a membership check
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Projects)

	var project models.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.OwnerID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// ListForUser retrieves projects the user owns or is a member of
func (r *PostgresProjectRepository) ListForUser(ctx context.Context, userID string) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at
		FROM %s p
		LEFT JOIN %s m ON m.project_id = p.id
		WHERE p.owner_id = $1 OR (m.user_id = $1 AND m.invite_accepted)
		ORDER BY p.updated_at DESC
	`, r.tables.Projects, r.tables.ProjectMembers)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.OwnerID,
			&project.Name,
			&project.Description,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// Update updates a project's name and description
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`, r.tables.Projects)

	tag, err := r.pool.Exec(ctx, query, project.ID, project.Name, project.Description, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a project; memberships cascade in the schema
func (r *PostgresProjectRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Projects)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetMember returns the membership row for a user in a project
func (r *PostgresProjectRepository) GetMember(ctx context.Context, projectID, userID string) (*models.ProjectMember, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, user_id, role, invite_accepted, created_at
		FROM %s
		WHERE project_id = $1 AND user_id = $2
	`, r.tables.ProjectMembers)

	var member models.ProjectMember
	err := r.pool.QueryRow(ctx, query, projectID, userID).Scan(
		&member.ID,
		&member.ProjectID,
		&member.UserID,
		&member.Role,
		&member.InviteAccepted,
		&member.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("membership for %s in %s: %w", userID, projectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get member: %w", err)
	}

	return &member, nil
}

// ListMembers retrieves all members of a project
func (r *PostgresProjectRepository) ListMembers(ctx context.Context, projectID string) ([]models.ProjectMember, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, user_id, role, invite_accepted, created_at
		FROM %s
		WHERE project_id = $1
		ORDER BY created_at ASC
	`, r.tables.ProjectMembers)

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []models.ProjectMember
	for rows.Next() {
		var member models.ProjectMember
		err := rows.Scan(
			&member.ID,
			&member.ProjectID,
			&member.UserID,
			&member.Role,
			&member.InviteAccepted,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

// AddMember inserts a membership row
func (r *PostgresProjectRepository) AddMember(ctx context.Context, member *models.ProjectMember) error {
	exec := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, user_id, role, invite_accepted, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.tables.ProjectMembers)

	err := exec.QueryRow(ctx, query,
		member.ProjectID,
		member.UserID,
		member.Role,
		member.InviteAccepted,
		member.CreatedAt,
	).Scan(&member.ID, &member.CreatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("user %s is already a member: %w", member.UserID, domain.ErrConflict)
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", member.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("add member: %w", err)
	}

	return nil
}
