package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnidesk/internal/capabilities"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
)

// fakeChatRepo stores chats and messages in memory
type fakeChatRepo struct {
	chats    map[string]*models.Chat
	messages []*models.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: make(map[string]*models.Chat)}
}

func (f *fakeChatRepo) Create(ctx context.Context, chat *models.Chat) error {
	chat.ID = fmt.Sprintf("chat-%d", len(f.chats)+1)
	f.chats[chat.ID] = chat
	return nil
}

func (f *fakeChatRepo) GetByID(ctx context.Context, id, userID string) (*models.Chat, error) {
	chat, ok := f.chats[id]
	if !ok || chat.UserID != userID {
		return nil, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}
	return chat, nil
}

func (f *fakeChatRepo) List(ctx context.Context, userID string) ([]models.Chat, error) {
	var out []models.Chat
	for _, c := range f.chats {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) Delete(ctx context.Context, id, userID string) error {
	if _, err := f.GetByID(ctx, id, userID); err != nil {
		return err
	}
	delete(f.chats, id)
	return nil
}

func (f *fakeChatRepo) Touch(ctx context.Context, id string) error { return nil }

func (f *fakeChatRepo) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	msg.ID = fmt.Sprintf("msg-%d", len(f.messages)+1)
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeChatRepo) ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range f.messages {
		if m.ChatID == chatID {
			out = append(out, *m)
		}
	}
	return out, nil
}

// fakeTxManager runs the function without a real transaction
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeChatCompleter replays a scripted reply
type fakeChatCompleter struct {
	reply       string
	err         error
	gotMessages []models.ChatMessage
}

func (f *fakeChatCompleter) Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	f.gotMessages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newChatFixture(t *testing.T, completer *fakeChatCompleter) (services.ChatService, *fakeChatRepo) {
	t.Helper()

	registry, err := capabilities.NewRegistry()
	require.NoError(t, err)

	repo := newFakeChatRepo()
	svc := NewChatService(
		repo,
		map[string]services.ChatCompleter{"openai": completer},
		registry,
		fakeTxManager{},
		ChatDefaults{Provider: "openai", Model: "gpt-4o-mini"},
		testLogger(),
	)
	return svc, repo
}

func TestChatService_CreateChatDefaults(t *testing.T) {
	svc, _ := newChatFixture(t, &fakeChatCompleter{})

	chat, err := svc.CreateChat(context.Background(), &services.CreateChatRequest{UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, "openai", chat.Provider)
	assert.Equal(t, "gpt-4o-mini", chat.Model)
	assert.Equal(t, "New chat", chat.Title)
}

func TestChatService_CreateChatUnknownProvider(t *testing.T) {
	svc, _ := newChatFixture(t, &fakeChatCompleter{})

	_, err := svc.CreateChat(context.Background(), &services.CreateChatRequest{
		UserID:   "user-1",
		Provider: "acme-llm",
		Model:    "m1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestChatService_SendMessage(t *testing.T) {
	completer := &fakeChatCompleter{reply: "Hi! How can I help?"}
	svc, _ := newChatFixture(t, completer)

	ctx := context.Background()
	chat, err := svc.CreateChat(ctx, &services.CreateChatRequest{UserID: "user-1"})
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, chat.ID, "user-1", &services.SendMessageRequest{Content: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, resp.UserMessage.Role)
	assert.Equal(t, "Hello", resp.UserMessage.Content)
	assert.Equal(t, models.RoleAssistant, resp.AssistantMessage.Role)
	assert.Equal(t, "Hi! How can I help?", resp.AssistantMessage.Content)

	// The completer saw the persisted history including the new user turn
	require.Len(t, completer.gotMessages, 1)
	assert.Equal(t, "Hello", completer.gotMessages[0].Content)

	messages, err := svc.ListMessages(ctx, chat.ID, "user-1")
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestChatService_SendMessageProviderFailureKeepsUserTurn(t *testing.T) {
	completer := &fakeChatCompleter{err: &domain.UpstreamError{Upstream: "openai", Message: "overloaded"}}
	svc, repo := newChatFixture(t, completer)

	ctx := context.Background()
	chat, err := svc.CreateChat(ctx, &services.CreateChatRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, chat.ID, "user-1", &services.SendMessageRequest{Content: "Hello"})
	require.Error(t, err)

	messages, err := repo.ListMessages(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1, "user turn must survive provider failure")
	assert.Equal(t, models.RoleUser, messages[0].Role)
}

func TestChatService_SendMessageForeignChat(t *testing.T) {
	svc, _ := newChatFixture(t, &fakeChatCompleter{reply: "hi"})

	ctx := context.Background()
	chat, err := svc.CreateChat(ctx, &services.CreateChatRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, chat.ID, "intruder", &services.SendMessageRequest{Content: "Hello"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
