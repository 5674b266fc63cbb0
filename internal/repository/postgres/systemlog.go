package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresSystemLogRepository implements the SystemLogRepository interface
type PostgresSystemLogRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSystemLogRepository creates a new system log repository
func NewSystemLogRepository(config *RepositoryConfig) repositories.SystemLogRepository {
	return &PostgresSystemLogRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a log entry. Context is stored as JSONB.
func (r *PostgresSystemLogRepository) Create(ctx context.Context, entry *models.SystemLog) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (level, message, context, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.tables.SystemLogs)

	err := r.pool.QueryRow(ctx, query,
		entry.Level,
		entry.Message,
		entry.Context,
		entry.UserID,
		entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("create system log: %w", err)
	}

	return nil
}

// ListRecent returns the most recent entries, optionally filtered by level
func (r *PostgresSystemLogRepository) ListRecent(ctx context.Context, level string, limit int) ([]models.SystemLog, error) {
	var query string
	var args []interface{}

	if level != "" {
		query = fmt.Sprintf(`
			SELECT id, level, message, context, user_id, created_at
			FROM %s
			WHERE level = $1
			ORDER BY created_at DESC
			LIMIT $2
		`, r.tables.SystemLogs)
		args = []interface{}{level, limit}
	} else {
		query = fmt.Sprintf(`
			SELECT id, level, message, context, user_id, created_at
			FROM %s
			ORDER BY created_at DESC
			LIMIT $1
		`, r.tables.SystemLogs)
		args = []interface{}{limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list system logs: %w", err)
	}
	defer rows.Close()

	var entries []models.SystemLog
	for rows.Next() {
		var entry models.SystemLog
		err := rows.Scan(
			&entry.ID,
			&entry.Level,
			&entry.Message,
			&entry.Context,
			&entry.UserID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan system log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate system logs: %w", err)
	}

	return entries, nil
}
