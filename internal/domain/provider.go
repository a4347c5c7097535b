package domain

import (
	"github.com/google/wire"

	"chat-api/internal/domain/chat"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	chat.NewChatService,
)
