package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"omnidesk/internal/capabilities"
	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
)

// chatService implements the ChatService interface
type chatService struct {
	chatRepo   repositories.ChatRepository
	completers map[string]services.ChatCompleter
	registry   *capabilities.Registry
	txManager  repositories.TransactionManager
	defaults   ChatDefaults
	logger     *slog.Logger
}

// ChatDefaults fill in provider/model when a create request omits them
type ChatDefaults struct {
	Provider string
	Model    string
}

// NewChatService creates a new chat service. completers maps provider
// names ("openai", "gemini") to their upstream adapters.
func NewChatService(
	chatRepo repositories.ChatRepository,
	completers map[string]services.ChatCompleter,
	registry *capabilities.Registry,
	txManager repositories.TransactionManager,
	defaults ChatDefaults,
	logger *slog.Logger,
) services.ChatService {
	return &chatService{
		chatRepo:   chatRepo,
		completers: completers,
		registry:   registry,
		txManager:  txManager,
		defaults:   defaults,
		logger:     logger,
	}
}

// CreateChat creates a new chat
func (s *chatService) CreateChat(ctx context.Context, req *services.CreateChatRequest) (*models.Chat, error) {
	if req.Provider == "" {
		req.Provider = s.defaults.Provider
	}
	if req.Model == "" {
		req.Model = s.defaults.Model
	}

	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, ok := s.completers[req.Provider]; !ok {
		return nil, fmt.Errorf("%w: provider %s is not configured", domain.ErrValidation, req.Provider)
	}

	// Unknown models are allowed through (providers add models faster
	// than the registry updates) but known-provider mismatches are not.
	if !s.registry.HasProvider(req.Provider) {
		return nil, fmt.Errorf("%w: unknown provider %s", domain.ErrValidation, req.Provider)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "New chat"
	}

	chat := &models.Chat{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Title:     title,
		Provider:  req.Provider,
		Model:     req.Model,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}

	s.logger.Info("chat created",
		"id", chat.ID,
		"provider", chat.Provider,
		"model", chat.Model,
		"user_id", req.UserID,
	)

	return chat, nil
}

// GetChat retrieves a chat by ID
func (s *chatService) GetChat(ctx context.Context, id, userID string) (*models.Chat, error) {
	return s.chatRepo.GetByID(ctx, id, userID)
}

// ListChats retrieves all chats for a user
func (s *chatService) ListChats(ctx context.Context, userID string) ([]models.Chat, error) {
	return s.chatRepo.List(ctx, userID)
}

// DeleteChat deletes a chat and its messages
func (s *chatService) DeleteChat(ctx context.Context, id, userID string) error {
	return s.chatRepo.Delete(ctx, id, userID)
}

// ListMessages returns a chat's messages, oldest first
func (s *chatService) ListMessages(ctx context.Context, chatID, userID string) ([]models.ChatMessage, error) {
	// Ownership check before exposing messages
	if _, err := s.chatRepo.GetByID(ctx, chatID, userID); err != nil {
		return nil, err
	}

	return s.chatRepo.ListMessages(ctx, chatID)
}

// SendMessage persists the user turn, asks the chat's provider for a
// completion and persists the assistant turn. The user turn is kept
// even when the provider call fails, so the client can retry without
// losing what was typed.
func (s *chatService) SendMessage(ctx context.Context, chatID, userID string, req *services.SendMessageRequest) (*services.SendMessageResponse, error) {
	if err := s.validateSendRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	chat, err := s.chatRepo.GetByID(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}

	completer, ok := s.completers[chat.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: provider %s is not configured", domain.ErrValidation, chat.Provider)
	}

	userMsg := &models.ChatMessage{
		ChatID:    chatID,
		Role:      models.RoleUser,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.chatRepo.CreateMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := s.chatRepo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	reply, err := completer.Complete(ctx, chat.Model, history)
	if err != nil {
		return nil, err
	}

	assistantMsg := &models.ChatMessage{
		ChatID:    chatID,
		Role:      models.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.chatRepo.CreateMessage(txCtx, assistantMsg); err != nil {
			return err
		}
		return s.chatRepo.Touch(txCtx, chatID)
	})
	if err != nil {
		return nil, err
	}

	return &services.SendMessageResponse{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
	}, nil
}

func (s *chatService) validateCreateRequest(req *services.CreateChatRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title, validation.Length(0, config.MaxNameLength)),
		validation.Field(&req.Provider, validation.Required),
		validation.Field(&req.Model, validation.Required),
	)
}

func (s *chatService) validateSendRequest(req *services.SendMessageRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, config.MaxMessageLength)),
	)
}
