package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// ChatCompleter produces one assistant reply for a conversation.
// Implemented by the OpenAI and Gemini upstream adapters.
type ChatCompleter interface {
	Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error)
}

// CreateChatRequest represents a request to create a chat
type CreateChatRequest struct {
	UserID    string  `json:"-"`
	ProjectID *string `json:"project_id"`
	Title     string  `json:"title"`
	Provider  string  `json:"provider"`
	Model     string  `json:"model"`
}

// SendMessageRequest appends a user message and requests a reply
type SendMessageRequest struct {
	Content string `json:"content"`
}

// SendMessageResponse carries both persisted turns
type SendMessageResponse struct {
	UserMessage      *models.ChatMessage `json:"user_message"`
	AssistantMessage *models.ChatMessage `json:"assistant_message"`
}

// ChatService defines business logic operations for chats
type ChatService interface {
	CreateChat(ctx context.Context, req *CreateChatRequest) (*models.Chat, error)
	GetChat(ctx context.Context, id, userID string) (*models.Chat, error)
	ListChats(ctx context.Context, userID string) ([]models.Chat, error)
	DeleteChat(ctx context.Context, id, userID string) error

	ListMessages(ctx context.Context, chatID, userID string) ([]models.ChatMessage, error)

	// SendMessage persists the user turn, calls the chat's provider for
	// a completion and persists the assistant turn.
	SendMessage(ctx context.Context, chatID, userID string, req *SendMessageRequest) (*SendMessageResponse, error)
}
