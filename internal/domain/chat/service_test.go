package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-api/internal/utils/platformerrors"
)

// fakeStore implements ChatRepository and MessageRepository in one struct so
// tests can observe the exact write sequence the service performs.
type fakeStore struct {
	chats    map[string]*Chat
	messages []*Message
	sequence int
	clock    time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		chats: make(map[string]*Chat),
		clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) addChat(id string) *Chat {
	now := f.tick()
	record := &Chat{ID: id, Title: DefaultTitle, CreatedAt: now, UpdatedAt: now}
	f.chats[id] = record
	return record
}

func (f *fakeStore) Create(ctx context.Context, input CreateChatInput) (*Chat, error) {
	id := input.ID
	if id == "" {
		f.sequence++
		id = fmt.Sprintf("chat_%04d", f.sequence)
	}
	if _, exists := f.chats[id]; exists {
		return nil, ErrChatExists
	}
	record := f.addChat(id)
	if input.Title != "" {
		record.Title = input.Title
	}
	clone := *record
	return &clone, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (*Chat, error) {
	record, ok := f.chats[id]
	if !ok {
		return nil, ErrChatNotFound
	}
	clone := *record
	return &clone, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, update ChatUpdate) (*Chat, error) {
	record, ok := f.chats[id]
	if !ok {
		return nil, ErrChatNotFound
	}
	if update.Title != nil {
		record.Title = *update.Title
	}
	if update.UpdatedAt != nil {
		record.UpdatedAt = *update.UpdatedAt
	}
	clone := *record
	return &clone, nil
}

func (f *fakeStore) List(ctx context.Context) ([]*Chat, error) {
	result := make([]*Chat, 0, len(f.chats))
	for _, record := range f.chats {
		clone := *record
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeStore) Append(ctx context.Context, input CreateMessageInput) (*Message, error) {
	owner, ok := f.chats[input.ChatID]
	if !ok {
		return nil, ErrChatNotFound
	}
	f.sequence++
	now := f.tick()
	record := &Message{
		ID:        fmt.Sprintf("msg_%04d", f.sequence),
		ChatID:    input.ChatID,
		Role:      input.Role,
		Content:   input.Content,
		CreatedAt: now,
	}
	f.messages = append(f.messages, record)
	owner.UpdatedAt = now
	clone := *record
	return &clone, nil
}

func (f *fakeStore) FindMessageByID(id string) (*Message, bool) {
	for _, record := range f.messages {
		if record.ID == id {
			return record, true
		}
	}
	return nil, false
}

func (f *fakeStore) FindByIDMessage(ctx context.Context, id string) (*Message, error) {
	if record, ok := f.FindMessageByID(id); ok {
		clone := *record
		return &clone, nil
	}
	return nil, ErrMessageNotFound
}

func (f *fakeStore) ListByChatID(ctx context.Context, chatID string) ([]*Message, error) {
	result := make([]*Message, 0)
	for _, record := range f.messages {
		if record.ChatID == chatID {
			clone := *record
			result = append(result, &clone)
		}
	}
	return result, nil
}

// messageRepo adapts fakeStore to the MessageRepository interface without
// colliding with the chat FindByID method.
type messageRepo struct {
	*fakeStore
}

func (m messageRepo) FindByID(ctx context.Context, id string) (*Message, error) {
	return m.fakeStore.FindByIDMessage(ctx, id)
}

// stubGenerator returns scripted replies and records its inputs.
type stubGenerator struct {
	reply         string
	replyErr      error
	title         string
	titleErr      error
	replyHistory  []*Message
	titleRequests []string
}

func (g *stubGenerator) GenerateReply(ctx context.Context, history []*Message) (string, error) {
	g.replyHistory = history
	if g.replyErr != nil {
		return "", g.replyErr
	}
	return g.reply, nil
}

func (g *stubGenerator) GenerateTitle(ctx context.Context, content string) (string, error) {
	g.titleRequests = append(g.titleRequests, content)
	if g.titleErr != nil {
		return "", g.titleErr
	}
	return g.title, nil
}

func newTestService(store *fakeStore, generator *stubGenerator) *ChatService {
	return NewChatService(store, messageRepo{store}, generator, zerolog.Nop())
}

func TestSendMessage_MissingChatWritesNothing(t *testing.T) {
	store := newFakeStore()
	generator := &stubGenerator{reply: "hi"}
	service := newTestService(store, generator)

	_, err := service.SendMessage(context.Background(), "chat_missing", "hello")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
	assert.Empty(t, store.messages)
}

func TestSendMessage_EmptyContentRejected(t *testing.T) {
	store := newFakeStore()
	store.addChat("chat_1")
	service := newTestService(store, &stubGenerator{reply: "hi"})

	_, err := service.SendMessage(context.Background(), "chat_1", "   ")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Empty(t, store.messages)
}

func TestSendMessage_PersistsOrderedPair(t *testing.T) {
	store := newFakeStore()
	created := store.addChat("chat_1")
	priorUpdatedAt := created.UpdatedAt
	generator := &stubGenerator{reply: "Hello! How can I help?", title: "Greetings"}
	service := newTestService(store, generator)

	exchange, err := service.SendMessage(context.Background(), "chat_1", "hello")
	require.NoError(t, err)

	assert.Equal(t, RoleUser, exchange.UserMessage.Role)
	assert.Equal(t, "hello", exchange.UserMessage.Content)
	assert.Equal(t, RoleAssistant, exchange.AssistantMessage.Role)
	assert.Equal(t, "Hello! How can I help?", exchange.AssistantMessage.Content)
	assert.True(t, exchange.UserMessage.CreatedAt.Before(exchange.AssistantMessage.CreatedAt))

	require.Len(t, store.messages, 2)
	assert.False(t, store.chats["chat_1"].UpdatedAt.Before(priorUpdatedAt))
}

func TestSendMessage_HistoryEndsWithUserTurnOnce(t *testing.T) {
	store := newFakeStore()
	store.addChat("chat_1")
	generator := &stubGenerator{reply: "sure"}
	service := newTestService(store, generator)

	_, err := service.SendMessage(context.Background(), "chat_1", "first question")
	require.NoError(t, err)

	// The generator sees the persisted history with the new turn exactly once.
	require.Len(t, generator.replyHistory, 1)
	assert.Equal(t, "first question", generator.replyHistory[0].Content)
	assert.Equal(t, RoleUser, generator.replyHistory[0].Role)
}

func TestSendMessage_FirstExchangeDerivesTitle(t *testing.T) {
	store := newFakeStore()
	store.addChat("chat_1")
	generator := &stubGenerator{reply: "sure", title: "Trip Planning\nextra line"}
	service := newTestService(store, generator)

	_, err := service.SendMessage(context.Background(), "chat_1", "plan a trip")
	require.NoError(t, err)

	require.Len(t, generator.titleRequests, 1)
	assert.Equal(t, "plan a trip", generator.titleRequests[0])
	assert.Equal(t, "Trip Planning", store.chats["chat_1"].Title)

	// The second exchange does not re-derive the title.
	_, err = service.SendMessage(context.Background(), "chat_1", "anything else?")
	require.NoError(t, err)
	assert.Len(t, generator.titleRequests, 1)
	assert.Equal(t, "Trip Planning", store.chats["chat_1"].Title)
}

func TestSendMessage_GeneratorFailurePersistsApology(t *testing.T) {
	store := newFakeStore()
	store.addChat("chat_1")
	generator := &stubGenerator{replyErr: errors.New("provider unreachable")}
	service := newTestService(store, generator)

	exchange, err := service.SendMessage(context.Background(), "chat_1", "hello")
	require.NoError(t, err)

	assert.Equal(t, apologyReply, exchange.AssistantMessage.Content)
	require.Len(t, store.messages, 2)
	assert.Equal(t, RoleAssistant, store.messages[1].Role)
}

func TestSendMessage_TitleFailureKeepsPlaceholder(t *testing.T) {
	store := newFakeStore()
	store.addChat("chat_1")
	generator := &stubGenerator{reply: "sure", titleErr: errors.New("provider unreachable")}
	service := newTestService(store, generator)

	_, err := service.SendMessage(context.Background(), "chat_1", "hello")
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, store.chats["chat_1"].Title)
}

func TestCreateChat_DuplicateIsConflict(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &stubGenerator{})

	_, err := service.CreateChat(context.Background(), CreateChatInput{ID: "chat_dup"})
	require.NoError(t, err)

	_, err = service.CreateChat(context.Background(), CreateChatInput{ID: "chat_dup"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))
}

func TestGetMessage_NotFound(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &stubGenerator{})

	_, err := service.GetMessage(context.Background(), "msg_missing")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}
