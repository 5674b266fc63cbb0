package handler

import (
	"log/slog"
	"net/http"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatService services.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// CreateChat creates a new chat session
// POST /api/chats
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.CreateChatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	chat, err := h.chatService.CreateChat(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"chat": chat,
	})
}

// GetChat retrieves a chat by ID
// GET /api/chats/{id}
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	chat, err := h.chatService.GetChat(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"chat": chat,
	})
}

// ListChats retrieves the user's chats
// GET /api/chats
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	chats, err := h.chatService.ListChats(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"chats": chats,
	})
}

// DeleteChat deletes a chat and its messages
// DELETE /api/chats/{id}
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	if err := h.chatService.DeleteChat(r.Context(), r.PathValue("id"), userID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}

// ListMessages retrieves a chat's messages, oldest first
// GET /api/chats/{id}/messages
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	messages, err := h.chatService.ListMessages(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// SendMessage appends a user message and returns the assistant reply
// POST /api/chats/{id}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.SendMessageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.chatService.SendMessage(r.Context(), r.PathValue("id"), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"user_message":      resp.UserMessage,
		"assistant_message": resp.AssistantMessage,
	})
}
