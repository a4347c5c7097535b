package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"chat-api/internal/config"
	"chat-api/internal/domain/chat"
	"chat-api/internal/infrastructure/completion"
	"chat-api/internal/infrastructure/logger"
	"chat-api/internal/infrastructure/memstore"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger provides the application logger built from configuration
func ProvideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

// InfrastructureProvider provides config, logging, storage and the
// completion client.
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	ProvideLogger,

	// In-memory storage
	memstore.New,
	memstore.NewChatRepository,
	memstore.NewMessageRepository,
	wire.Bind(new(chat.ChatRepository), new(*memstore.ChatRepository)),
	wire.Bind(new(chat.MessageRepository), new(*memstore.MessageRepository)),

	// Completion provider
	completion.NewClient,
	wire.Bind(new(chat.ReplyGenerator), new(*completion.Client)),
)
