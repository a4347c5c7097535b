// Package memstore provides process-lifetime storage for chats and messages.
// Both repositories share one Store guarded by a single RWMutex; Append
// combines the message insert with the owning chat's UpdatedAt refresh so
// concurrent senders cannot interleave between the two writes.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"chat-api/internal/domain/chat"
	"chat-api/internal/utils/idgen"
)

const (
	chatIDPrefix    = "chat"
	messageIDPrefix = "msg"
	idLength        = 16
)

// Store holds all chat and message state in memory.
type Store struct {
	mu sync.RWMutex

	chats     map[string]*chat.Chat
	chatOrder []string

	messages     map[string]*chat.Message
	messageOrder []string

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		chats:    make(map[string]*chat.Chat),
		messages: make(map[string]*chat.Message),
		now:      time.Now,
	}
}

// ChatRepository implements chat.ChatRepository on top of a Store.
type ChatRepository struct {
	store *Store
}

// NewChatRepository creates a chat repository backed by store.
func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{store: store}
}

// Create inserts a chat, generating an ID and defaulting title and
// timestamps when absent. Caller-supplied timestamps are honored for chats.
func (r *ChatRepository) Create(ctx context.Context, input chat.CreateChatInput) (*chat.Chat, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id := input.ID
	if id == "" {
		generated, err := idgen.GenerateSecureID(chatIDPrefix, idLength)
		if err != nil {
			return nil, fmt.Errorf("generate chat id: %w", err)
		}
		id = generated
	}
	if _, exists := s.chats[id]; exists {
		return nil, fmt.Errorf("chat %q: %w", id, chat.ErrChatExists)
	}

	now := s.now()
	record := &chat.Chat{
		ID:        id,
		Title:     input.Title,
		CreatedAt: input.CreatedAt,
		UpdatedAt: input.UpdatedAt,
	}
	if record.Title == "" {
		record.Title = chat.DefaultTitle
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = now
	}

	s.chats[id] = record
	s.chatOrder = append(s.chatOrder, id)

	return cloneChat(record), nil
}

// FindByID returns the chat or chat.ErrChatNotFound.
func (r *ChatRepository) FindByID(ctx context.Context, id string) (*chat.Chat, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.chats[id]
	if !ok {
		return nil, fmt.Errorf("chat %q: %w", id, chat.ErrChatNotFound)
	}
	return cloneChat(record), nil
}

// Update merges non-nil fields into an existing chat.
func (r *ChatRepository) Update(ctx context.Context, id string, update chat.ChatUpdate) (*chat.Chat, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.chats[id]
	if !ok {
		return nil, fmt.Errorf("chat %q: %w", id, chat.ErrChatNotFound)
	}

	if update.Title != nil {
		record.Title = *update.Title
	}
	if update.UpdatedAt != nil {
		record.UpdatedAt = *update.UpdatedAt
	}

	return cloneChat(record), nil
}

// List returns all chats ordered by UpdatedAt descending. Equal timestamps
// keep insertion order.
func (r *ChatRepository) List(ctx context.Context) ([]*chat.Chat, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*chat.Chat, 0, len(s.chatOrder))
	for _, id := range s.chatOrder {
		result = append(result, cloneChat(s.chats[id]))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

// MessageRepository implements chat.MessageRepository on top of a Store.
type MessageRepository struct {
	store *Store
}

// NewMessageRepository creates a message repository backed by store.
func NewMessageRepository(store *Store) *MessageRepository {
	return &MessageRepository{store: store}
}

// Append inserts a message and refreshes the owning chat's UpdatedAt under
// one lock. CreatedAt is always stamped server-side; an empty ID is
// generated.
func (r *MessageRepository) Append(ctx context.Context, input chat.CreateMessageInput) (*chat.Message, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.chats[input.ChatID]
	if !ok {
		return nil, fmt.Errorf("chat %q: %w", input.ChatID, chat.ErrChatNotFound)
	}

	id := input.ID
	if id == "" {
		generated, err := idgen.GenerateSecureID(messageIDPrefix, idLength)
		if err != nil {
			return nil, fmt.Errorf("generate message id: %w", err)
		}
		id = generated
	}

	now := s.now()
	record := &chat.Message{
		ID:        id,
		ChatID:    input.ChatID,
		Role:      input.Role,
		Content:   input.Content,
		CreatedAt: now,
	}

	s.messages[id] = record
	s.messageOrder = append(s.messageOrder, id)
	owner.UpdatedAt = now

	return cloneMessage(record), nil
}

// FindByID returns the message or chat.ErrMessageNotFound.
func (r *MessageRepository) FindByID(ctx context.Context, id string) (*chat.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.messages[id]
	if !ok {
		return nil, fmt.Errorf("message %q: %w", id, chat.ErrMessageNotFound)
	}
	return cloneMessage(record), nil
}

// ListByChatID returns a chat's messages ordered by CreatedAt ascending.
// Equal timestamps keep insertion order.
func (r *MessageRepository) ListByChatID(ctx context.Context, chatID string) ([]*chat.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*chat.Message, 0)
	for _, id := range s.messageOrder {
		if record := s.messages[id]; record.ChatID == chatID {
			result = append(result, cloneMessage(record))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func cloneChat(record *chat.Chat) *chat.Chat {
	clone := *record
	return &clone
}

func cloneMessage(record *chat.Message) *chat.Message {
	clone := *record
	return &clone
}
