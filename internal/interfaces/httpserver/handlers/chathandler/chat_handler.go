package chathandler

import (
	"context"

	"chat-api/internal/domain/chat"
	chatrequests "chat-api/internal/interfaces/httpserver/requests/chat"
	chatresponses "chat-api/internal/interfaces/httpserver/responses/chat"
	"chat-api/internal/utils/platformerrors"
)

// ChatHandler maps transport DTOs onto the chat service.
type ChatHandler struct {
	chatService *chat.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *chat.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// CreateChat creates a new chat
func (h *ChatHandler) CreateChat(ctx context.Context, req chatrequests.CreateChatRequest) (*chatresponses.ChatResponse, error) {
	created, err := h.chatService.CreateChat(ctx, chat.CreateChatInput{
		ID:    req.ID,
		Title: req.Title,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create chat")
	}
	return chatresponses.NewChatResponse(created), nil
}

// GetChat retrieves a chat by ID
func (h *ChatHandler) GetChat(ctx context.Context, chatID string) (*chatresponses.ChatResponse, error) {
	found, err := h.chatService.GetChat(ctx, chatID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get chat")
	}
	return chatresponses.NewChatResponse(found), nil
}

// ListChats lists all chats, most recently active first
func (h *ChatHandler) ListChats(ctx context.Context) ([]chatresponses.ChatResponse, error) {
	chats, err := h.chatService.ListChats(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list chats")
	}
	return chatresponses.NewChatListResponse(chats), nil
}

// ListMessages lists a chat's messages in chronological order
func (h *ChatHandler) ListMessages(ctx context.Context, chatID string) ([]chatresponses.MessageResponse, error) {
	messages, err := h.chatService.ListMessages(ctx, chatID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list messages")
	}
	return chatresponses.NewMessageListResponse(messages), nil
}

// SendMessage runs the message-send flow and returns the persisted pair
func (h *ChatHandler) SendMessage(ctx context.Context, chatID string, req chatrequests.SendMessageRequest) ([]chatresponses.MessageResponse, error) {
	exchange, err := h.chatService.SendMessage(ctx, chatID, req.Content)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to process message")
	}
	return chatresponses.NewExchangeResponse(exchange), nil
}
