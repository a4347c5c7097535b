package chat

import (
	"context"
	"errors"
	"time"
)

// DefaultTitle is the placeholder title assigned to a chat until one is
// derived from its first exchange.
const DefaultTitle = "New Chat"

// Role tags one turn of a conversation. It is a closed two-value set.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Chat is a named, timestamped conversation container. UpdatedAt is
// refreshed on every appended message so listings surface the most recently
// active chat first.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Message is one turn in a chat. Messages are immutable after creation.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository sentinel errors. Repositories signal misses with these;
// the service layer maps them to typed platform errors.
var (
	ErrChatNotFound    = errors.New("chat not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrChatExists      = errors.New("chat already exists")
)

// CreateChatInput carries the caller-controllable fields for chat creation.
// Zero values are defaulted by the repository: ID is generated, Title becomes
// DefaultTitle, timestamps become the current time.
type CreateChatInput struct {
	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatUpdate is a partial update; nil fields are preserved.
type ChatUpdate struct {
	Title     *string
	UpdatedAt *time.Time
}

// ChatRepository stores chats queryable by identity and recency.
type ChatRepository interface {
	Create(ctx context.Context, input CreateChatInput) (*Chat, error)
	FindByID(ctx context.Context, id string) (*Chat, error)
	Update(ctx context.Context, id string, update ChatUpdate) (*Chat, error)
	// List returns all chats ordered by UpdatedAt descending, ties broken
	// by insertion order.
	List(ctx context.Context) ([]*Chat, error)
}

// CreateMessageInput carries the caller-controllable fields for message
// creation. CreatedAt is always stamped by the repository; an empty ID is
// generated.
type CreateMessageInput struct {
	ID      string
	ChatID  string
	Role    Role
	Content string
}

// MessageRepository stores messages queryable by identity and by owning chat.
type MessageRepository interface {
	// Append inserts the message and refreshes the owning chat's UpdatedAt
	// as one atomic unit. Fails with ErrChatNotFound when the chat is absent.
	Append(ctx context.Context, input CreateMessageInput) (*Message, error)
	FindByID(ctx context.Context, id string) (*Message, error)
	// ListByChatID returns the chat's messages ordered by CreatedAt
	// ascending, ties broken by insertion order.
	ListByChatID(ctx context.Context, chatID string) ([]*Message, error)
}
