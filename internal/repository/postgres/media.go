package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresMediaRepository implements the MediaRepository interface
type PostgresMediaRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(config *RepositoryConfig) repositories.MediaRepository {
	return &PostgresMediaRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// CreateImage inserts a generated image row
func (r *PostgresMediaRepository) CreateImage(ctx context.Context, img *models.GeneratedImage) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, project_id, prompt, model, width, height, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, r.tables.GeneratedImages)

	err := r.pool.QueryRow(ctx, query,
		img.UserID,
		img.ProjectID,
		img.Prompt,
		img.Model,
		img.Width,
		img.Height,
		img.URL,
		img.CreatedAt,
	).Scan(&img.ID, &img.CreatedAt)

	if err != nil {
		return fmt.Errorf("create generated image: %w", err)
	}

	return nil
}

// ListImages retrieves a user's generated images, newest first
func (r *PostgresMediaRepository) ListImages(ctx context.Context, userID string) ([]models.GeneratedImage, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, project_id, prompt, model, width, height, url, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.tables.GeneratedImages)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list generated images: %w", err)
	}
	defer rows.Close()

	var images []models.GeneratedImage
	for rows.Next() {
		var img models.GeneratedImage
		err := rows.Scan(
			&img.ID,
			&img.UserID,
			&img.ProjectID,
			&img.Prompt,
			&img.Model,
			&img.Width,
			&img.Height,
			&img.URL,
			&img.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan generated image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generated images: %w", err)
	}

	return images, nil
}

// CreateAudio inserts a generated audio row
func (r *PostgresMediaRepository) CreateAudio(ctx context.Context, audio *models.GeneratedAudio) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, project_id, text, voice, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, r.tables.GeneratedAudio)

	err := r.pool.QueryRow(ctx, query,
		audio.UserID,
		audio.ProjectID,
		audio.Text,
		audio.Voice,
		audio.URL,
		audio.CreatedAt,
	).Scan(&audio.ID, &audio.CreatedAt)

	if err != nil {
		return fmt.Errorf("create generated audio: %w", err)
	}

	return nil
}

// ListAudio retrieves a user's generated audio, newest first
func (r *PostgresMediaRepository) ListAudio(ctx context.Context, userID string) ([]models.GeneratedAudio, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, project_id, text, voice, url, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.tables.GeneratedAudio)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list generated audio: %w", err)
	}
	defer rows.Close()

	var items []models.GeneratedAudio
	for rows.Next() {
		var audio models.GeneratedAudio
		err := rows.Scan(
			&audio.ID,
			&audio.UserID,
			&audio.ProjectID,
			&audio.Text,
			&audio.Voice,
			&audio.URL,
			&audio.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan generated audio: %w", err)
		}
		items = append(items, audio)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generated audio: %w", err)
	}

	return items, nil
}
