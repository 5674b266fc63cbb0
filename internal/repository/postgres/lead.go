package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresLeadRepository implements the LeadRepository interface
type PostgresLeadRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(config *RepositoryConfig) repositories.LeadRepository {
	return &PostgresLeadRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a lead
func (r *PostgresLeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (agent_id, name, email, initial_message, status, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Leads)

	err := r.pool.QueryRow(ctx, query,
		lead.AgentID,
		lead.Name,
		lead.Email,
		lead.InitialMessage,
		lead.Status,
		lead.Source,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("agent %s: %w", lead.AgentID, domain.ErrNotFound)
		}
		return fmt.Errorf("create lead: %w", err)
	}

	return nil
}

// GetByID retrieves a lead by ID
func (r *PostgresLeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	query := fmt.Sprintf(`
		SELECT id, agent_id, name, email, initial_message, status, source, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Leads)

	var lead models.Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.AgentID,
		&lead.Name,
		&lead.Email,
		&lead.InitialMessage,
		&lead.Status,
		&lead.Source,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}

	return &lead, nil
}

// ListByAgent retrieves leads captured by an agent, newest first
func (r *PostgresLeadRepository) ListByAgent(ctx context.Context, agentID string) ([]models.Lead, error) {
	query := fmt.Sprintf(`
		SELECT id, agent_id, name, email, initial_message, status, source, created_at, updated_at
		FROM %s
		WHERE agent_id = $1
		ORDER BY created_at DESC
	`, r.tables.Leads)

	rows, err := r.pool.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		err := rows.Scan(
			&lead.ID,
			&lead.AgentID,
			&lead.Name,
			&lead.Email,
			&lead.InitialMessage,
			&lead.Status,
			&lead.Source,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	return leads, nil
}

// UpdateStatus updates a lead's pipeline status
func (r *PostgresLeadRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, agent_id, name, email, initial_message, status, source, created_at, updated_at
	`, r.tables.Leads)

	var lead models.Lead
	err := r.pool.QueryRow(ctx, query, id, status).Scan(
		&lead.ID,
		&lead.AgentID,
		&lead.Name,
		&lead.Email,
		&lead.InitialMessage,
		&lead.Status,
		&lead.Source,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update lead status: %w", err)
	}

	return &lead, nil
}
