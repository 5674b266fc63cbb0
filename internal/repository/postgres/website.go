package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresWebsiteRepository implements the WebsiteRepository interface
type PostgresWebsiteRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewWebsiteRepository creates a new website repository
func NewWebsiteRepository(config *RepositoryConfig) repositories.WebsiteRepository {
	return &PostgresWebsiteRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a website
func (r *PostgresWebsiteRepository) Create(ctx context.Context, site *models.Website) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name, prompt, html, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, r.tables.Websites)

	err := r.pool.QueryRow(ctx, query,
		site.UserID,
		site.Name,
		site.Prompt,
		site.HTML,
		site.Published,
		site.CreatedAt,
		site.UpdatedAt,
	).Scan(&site.ID, &site.CreatedAt, &site.UpdatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("website '%s' already exists: %w", site.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create website: %w", err)
	}

	return nil
}

// GetByID retrieves a website scoped to its owner
func (r *PostgresWebsiteRepository) GetByID(ctx context.Context, id, userID string) (*models.Website, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, prompt, html, published, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Websites)

	var site models.Website
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&site.ID,
		&site.UserID,
		&site.Name,
		&site.Prompt,
		&site.HTML,
		&site.Published,
		&site.CreatedAt,
		&site.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("website %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get website: %w", err)
	}

	return &site, nil
}

// List retrieves all websites for a user, newest first
func (r *PostgresWebsiteRepository) List(ctx context.Context, userID string) ([]models.Website, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, prompt, html, published, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, r.tables.Websites)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer rows.Close()

	var sites []models.Website
	for rows.Next() {
		var site models.Website
		err := rows.Scan(
			&site.ID,
			&site.UserID,
			&site.Name,
			&site.Prompt,
			&site.HTML,
			&site.Published,
			&site.CreatedAt,
			&site.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate websites: %w", err)
	}

	return sites, nil
}

// SetPublished flips the published flag
func (r *PostgresWebsiteRepository) SetPublished(ctx context.Context, id, userID string, published bool) (*models.Website, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET published = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, prompt, html, published, created_at, updated_at
	`, r.tables.Websites)

	var site models.Website
	err := r.pool.QueryRow(ctx, query, id, userID, published).Scan(
		&site.ID,
		&site.UserID,
		&site.Name,
		&site.Prompt,
		&site.HTML,
		&site.Published,
		&site.CreatedAt,
		&site.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("website %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("publish website: %w", err)
	}

	return &site, nil
}
