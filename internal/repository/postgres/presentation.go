package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresPresentationRepository implements the PresentationRepository interface
type PostgresPresentationRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPresentationRepository creates a new presentation repository
func NewPresentationRepository(config *RepositoryConfig) repositories.PresentationRepository {
	return &PostgresPresentationRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a presentation
func (r *PostgresPresentationRepository) Create(ctx context.Context, p *models.Presentation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, title, topic, markdown, theme, slide_count, ai_provider, ai_model, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, r.tables.Presentations)

	err := r.pool.QueryRow(ctx, query,
		p.UserID,
		p.Title,
		p.Topic,
		p.Markdown,
		p.Theme,
		p.SlideCount,
		p.AIProvider,
		p.AIModel,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create presentation: %w", err)
	}

	return nil
}

// GetByID retrieves a presentation scoped to its owner
func (r *PostgresPresentationRepository) GetByID(ctx context.Context, id, userID string) (*models.Presentation, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, topic, markdown, theme, slide_count, ai_provider, ai_model, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Presentations)

	var p models.Presentation
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Topic,
		&p.Markdown,
		&p.Theme,
		&p.SlideCount,
		&p.AIProvider,
		&p.AIModel,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("presentation %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get presentation: %w", err)
	}

	return &p, nil
}

// List retrieves all presentations for a user, newest first.
// Markdown is included; decks are small enough that a separate detail
// fetch isn't worth the round trip.
func (r *PostgresPresentationRepository) List(ctx context.Context, userID string) ([]models.Presentation, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, topic, markdown, theme, slide_count, ai_provider, ai_model, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, r.tables.Presentations)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	defer rows.Close()

	var presentations []models.Presentation
	for rows.Next() {
		var p models.Presentation
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&p.Topic,
			&p.Markdown,
			&p.Theme,
			&p.SlideCount,
			&p.AIProvider,
			&p.AIModel,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan presentation: %w", err)
		}
		presentations = append(presentations, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presentations: %w", err)
	}

	return presentations, nil
}

// Delete removes a presentation
func (r *PostgresPresentationRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.tables.Presentations)

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("presentation %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
