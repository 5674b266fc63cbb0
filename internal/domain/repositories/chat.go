package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// ChatRepository defines data access for chats and their messages
type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, id, userID string) (*models.Chat, error)
	List(ctx context.Context, userID string) ([]models.Chat, error)
	Delete(ctx context.Context, id, userID string) error

	// Touch bumps the chat's updated_at after new messages
	Touch(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, msg *models.ChatMessage) error

	// ListMessages returns all messages in a chat, oldest first
	ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
}
