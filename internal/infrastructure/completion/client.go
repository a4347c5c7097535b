// Package completion adapts an OpenAI-compatible chat-completion API to the
// domain's ReplyGenerator contract.
package completion

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"

	"chat-api/internal/config"
	"chat-api/internal/domain/chat"
	"chat-api/internal/infrastructure/metrics"
	"chat-api/internal/infrastructure/observability"
	"chat-api/internal/utils/platformerrors"
)

// Sampling policy for all completion calls. These are fixed constants, not
// tunables.
const (
	temperature = 0.7
	maxTokens   = 1000
)

const systemPrompt = "You are a helpful, friendly, and knowledgeable AI assistant. " +
	"Provide detailed and accurate responses to user questions. Be concise when " +
	"appropriate, but provide comprehensive information when needed."

const titlePromptFormat = `Based on this user message: %q, generate a very short chat title (max 5 words).`

// emptyReplyFallback is returned when the provider answers successfully but
// with no content. It is a normal reply, not an error.
const emptyReplyFallback = "I'm sorry, I couldn't generate a response."

// Client calls the completion provider. It implements chat.ReplyGenerator.
type Client struct {
	api         *openai.Client
	model       string
	serviceName string
	logger      zerolog.Logger
}

// NewClient creates a completion client from configuration. The base URL is
// overridable so tests can point the client at a local server.
func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.CompletionTimeout}

	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       cfg.CompletionModel,
		serviceName: cfg.ServiceName,
		logger:      logger,
	}
}

// GenerateReply produces one assistant reply for the given history. The
// history already ends with the newest user turn.
func (c *Client) GenerateReply(ctx context.Context, history []*chat.Message) (string, error) {
	return c.complete(ctx, buildMessages(history))
}

// GenerateTitle derives a short chat title from the first user message.
func (c *Client) GenerateTitle(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(titlePromptFormat, content)
	return c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	ctx, span := observability.StartSpan(ctx, c.serviceName, "completion.create")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", c.model),
		attribute.Int("llm.message_count", len(messages)),
	)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		metrics.CompletionErrorsTotal.Inc()
		observability.RecordError(ctx, err)
		c.logger.Error().Err(err).Str("model", c.model).Msg("chat completion request")
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"completion provider request failed", err, "c4f8a2d6-7e19-4b3c-8a05-d2e6f9b1c743")
	}

	metrics.RecordTokenUsage(c.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return emptyReplyFallback, nil
	}
	return resp.Choices[0].Message.Content, nil
}

// buildMessages converts domain history into provider messages. The fixed
// system instruction always leads; domain roles are only user/assistant so a
// history can never carry its own.
func buildMessages(history []*chat.Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, message := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}
	return messages
}
