package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
)

// PostgresChatRepository implements the ChatRepository interface
type PostgresChatRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewChatRepository creates a new chat repository
func NewChatRepository(config *RepositoryConfig) repositories.ChatRepository {
	return &PostgresChatRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new chat
func (r *PostgresChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, project_id, title, provider, model, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, r.tables.Chats)

	err := r.pool.QueryRow(ctx, query,
		chat.UserID,
		chat.ProjectID,
		chat.Title,
		chat.Provider,
		chat.Model,
		chat.CreatedAt,
		chat.UpdatedAt,
	).Scan(&chat.ID, &chat.CreatedAt, &chat.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("project: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create chat: %w", err)
	}

	return nil
}

// GetByID retrieves a chat scoped to its owner
func (r *PostgresChatRepository) GetByID(ctx context.Context, id, userID string) (*models.Chat, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, project_id, title, provider, model, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Chats)

	var chat models.Chat
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&chat.ID,
		&chat.UserID,
		&chat.ProjectID,
		&chat.Title,
		&chat.Provider,
		&chat.Model,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}

	return &chat, nil
}

// List retrieves all chats for a user, most recently active first
func (r *PostgresChatRepository) List(ctx context.Context, userID string) ([]models.Chat, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, project_id, title, provider, model, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, r.tables.Chats)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		var chat models.Chat
		err := rows.Scan(
			&chat.ID,
			&chat.UserID,
			&chat.ProjectID,
			&chat.Title,
			&chat.Provider,
			&chat.Model,
			&chat.CreatedAt,
			&chat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}

	return chats, nil
}

// Delete removes a chat and its messages (messages cascade in the schema)
func (r *PostgresChatRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.tables.Chats)

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Touch bumps the chat's updated_at
func (r *PostgresChatRepository) Touch(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`UPDATE %s SET updated_at = NOW() WHERE id = $1`, r.tables.Chats)

	if _, err := exec.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("touch chat: %w", err)
	}

	return nil
}

// CreateMessage inserts a message. Participates in a transaction when
// one is present so a turn's pair of messages commits atomically.
func (r *PostgresChatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	exec := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (chat_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.ChatMessages)

	err := exec.QueryRow(ctx, query,
		msg.ChatID,
		msg.Role,
		msg.Content,
		msg.CreatedAt,
	).Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("chat %s: %w", msg.ChatID, domain.ErrNotFound)
		}
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// ListMessages returns all messages in a chat, oldest first
func (r *PostgresChatRepository) ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	query := fmt.Sprintf(`
		SELECT id, chat_id, role, content, created_at
		FROM %s
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`, r.tables.ChatMessages)

	rows, err := r.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		err := rows.Scan(
			&msg.ID,
			&msg.ChatID,
			&msg.Role,
			&msg.Content,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}
