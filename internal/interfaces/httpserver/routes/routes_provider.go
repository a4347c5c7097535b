package routes

import (
	"github.com/google/wire"

	"chat-api/internal/interfaces/httpserver/handlers/chathandler"
	"chat-api/internal/interfaces/httpserver/routes/v1/chat"
)

var RouteProvider = wire.NewSet(
	// Handlers
	chathandler.NewChatHandler,

	// Routes
	chat.NewChatRoute,
)
