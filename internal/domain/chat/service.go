package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"chat-api/internal/utils/platformerrors"
	"chat-api/internal/utils/stringutils"
)

// apologyReply is persisted as the assistant turn when the completion
// provider fails, so the conversation stays well-formed for the client.
const apologyReply = "I apologize, but I encountered an error processing your request. Please try again later."

// titleMaxLen bounds derived chat titles.
const titleMaxLen = 48

// Exchange is the persisted (user, assistant) message pair produced by one
// send operation, in chronological order.
type Exchange struct {
	UserMessage      *Message
	AssistantMessage *Message
}

// ChatService sequences store reads/writes around the completion calls for
// the message-send flow and fronts plain chat/message lookups.
type ChatService struct {
	chats     ChatRepository
	messages  MessageRepository
	generator ReplyGenerator
	logger    zerolog.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	chats ChatRepository,
	messages MessageRepository,
	generator ReplyGenerator,
	logger zerolog.Logger,
) *ChatService {
	return &ChatService{
		chats:     chats,
		messages:  messages,
		generator: generator,
		logger:    logger,
	}
}

// CreateChat creates a chat, defaulting title and timestamps.
func (s *ChatService) CreateChat(ctx context.Context, input CreateChatInput) (*Chat, error) {
	created, err := s.chats.Create(ctx, input)
	if err != nil {
		if errors.Is(err, ErrChatExists) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
				"chat already exists", err, "9d41e1d2-6c0a-4f0e-8b3a-57d2f1c4a8e6")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create chat")
	}
	return created, nil
}

// GetChat retrieves a chat by ID.
func (s *ChatService) GetChat(ctx context.Context, id string) (*Chat, error) {
	found, err := s.chats.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrChatNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
				"chat not found", err, "0f7c3b8a-1d25-47e9-9a6c-b4e8d0f3c7a1")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get chat")
	}
	return found, nil
}

// ListChats returns all chats, most recently active first.
func (s *ChatService) ListChats(ctx context.Context) ([]*Chat, error) {
	chats, err := s.chats.List(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list chats")
	}
	return chats, nil
}

// GetMessage retrieves a single message by ID.
func (s *ChatService) GetMessage(ctx context.Context, id string) (*Message, error) {
	found, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
				"message not found", err, "5a2e9c47-8b13-4d6f-a0e5-c9d7b2f8e1a3")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get message")
	}
	return found, nil
}

// ListMessages returns a chat's messages in chronological order.
func (s *ChatService) ListMessages(ctx context.Context, chatID string) ([]*Message, error) {
	messages, err := s.messages.ListByChatID(ctx, chatID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list messages")
	}
	return messages, nil
}

// SendMessage runs the message-send flow: persist the user turn, generate an
// assistant reply from the accumulated history, persist it, and derive a
// title when this was the chat's first exchange. A completion failure is
// absorbed into an apology reply; the exchange itself still succeeds.
func (s *ChatService) SendMessage(ctx context.Context, chatID, content string) (*Exchange, error) {
	if strings.TrimSpace(content) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message content must not be empty", nil, "e6b0d1f4-3a78-4c2e-95d6-1f8a7c3b9e05")
	}

	// Resolve the target chat first so a miss writes nothing.
	if _, err := s.GetChat(ctx, chatID); err != nil {
		return nil, err
	}

	userMessage, err := s.messages.Append(ctx, CreateMessageInput{
		ChatID:  chatID,
		Role:    RoleUser,
		Content: content,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to persist user message")
	}

	// Re-read so the generator sees the full history, newest user turn last.
	history, err := s.messages.ListByChatID(ctx, chatID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load chat history")
	}
	firstExchange := len(history) == 1

	reply, err := s.generator.GenerateReply(ctx, history)
	if err != nil {
		s.logger.Error().Err(err).Str("chat_id", chatID).Msg("generate reply")
		reply = apologyReply
	}

	assistantMessage, err := s.messages.Append(ctx, CreateMessageInput{
		ChatID:  chatID,
		Role:    RoleAssistant,
		Content: reply,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to persist assistant message")
	}

	if firstExchange {
		s.deriveTitle(ctx, chatID, content)
	}

	return &Exchange{UserMessage: userMessage, AssistantMessage: assistantMessage}, nil
}

// deriveTitle asks the generator for a short title and applies its first
// line. On failure the placeholder title stays in place; the exchange has
// already succeeded and is not rolled back.
func (s *ChatService) deriveTitle(ctx context.Context, chatID, content string) {
	raw, err := s.generator.GenerateTitle(ctx, content)
	if err != nil {
		s.logger.Warn().Err(err).Str("chat_id", chatID).Msg("generate title")
		return
	}

	title := stringutils.GenerateTitle(raw, titleMaxLen)
	if title == "" {
		return
	}

	if _, err := s.chats.Update(ctx, chatID, ChatUpdate{Title: &title}); err != nil {
		s.logger.Warn().Err(err).Str("chat_id", chatID).Msg("apply derived title")
	}
}
