package chatresponses

import (
	"time"

	"chat-api/internal/domain/chat"
)

// ChatResponse is the wire shape of a chat.
type ChatResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageResponse is the wire shape of a message.
type MessageResponse struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewChatResponse creates a response from a domain chat
func NewChatResponse(record *chat.Chat) *ChatResponse {
	return &ChatResponse{
		ID:        record.ID,
		Title:     record.Title,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// NewChatListResponse creates responses for a list of chats, preserving order
func NewChatListResponse(records []*chat.Chat) []ChatResponse {
	result := make([]ChatResponse, 0, len(records))
	for _, record := range records {
		result = append(result, *NewChatResponse(record))
	}
	return result
}

// NewMessageResponse creates a response from a domain message
func NewMessageResponse(record *chat.Message) *MessageResponse {
	return &MessageResponse{
		ID:        record.ID,
		ChatID:    record.ChatID,
		Role:      string(record.Role),
		Content:   record.Content,
		CreatedAt: record.CreatedAt,
	}
}

// NewMessageListResponse creates responses for a list of messages, preserving order
func NewMessageListResponse(records []*chat.Message) []MessageResponse {
	result := make([]MessageResponse, 0, len(records))
	for _, record := range records {
		result = append(result, *NewMessageResponse(record))
	}
	return result
}

// NewExchangeResponse returns the persisted (user, assistant) pair in
// chronological order.
func NewExchangeResponse(exchange *chat.Exchange) []MessageResponse {
	return []MessageResponse{
		*NewMessageResponse(exchange.UserMessage),
		*NewMessageResponse(exchange.AssistantMessage),
	}
}
