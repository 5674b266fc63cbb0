package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresAgentRepository implements the AgentRepository interface
type PostgresAgentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(config *RepositoryConfig) repositories.AgentRepository {
	return &PostgresAgentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new agent
func (r *PostgresAgentRepository) Create(ctx context.Context, agent *models.Agent) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, welcome_message, workspace_slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Agents)

	err := r.pool.QueryRow(ctx, query,
		agent.UserID,
		agent.Name,
		agent.WelcomeMessage,
		agent.WorkspaceSlug,
		agent.CreatedAt,
		agent.UpdatedAt,
	).Scan(&agent.ID, &agent.CreatedAt, &agent.UpdatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("agent '%s' already exists: %w", agent.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create agent: %w", err)
	}

	return nil
}

// GetByID retrieves an agent by ID regardless of owner
func (r *PostgresAgentRepository) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, welcome_message, workspace_slug, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Agents)

	var agent models.Agent
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&agent.ID,
		&agent.UserID,
		&agent.Name,
		&agent.WelcomeMessage,
		&agent.WorkspaceSlug,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("agent %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}

	return &agent, nil
}

// List retrieves all agents owned by a user, newest first
func (r *PostgresAgentRepository) List(ctx context.Context, userID string) ([]models.Agent, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, welcome_message, workspace_slug, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.tables.Agents)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()

	var agents []models.Agent
	for rows.Next() {
		var agent models.Agent
		err := rows.Scan(
			&agent.ID,
			&agent.UserID,
			&agent.Name,
			&agent.WelcomeMessage,
			&agent.WorkspaceSlug,
			&agent.CreatedAt,
			&agent.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		agents = append(agents, agent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agents: %w", err)
	}

	return agents, nil
}
