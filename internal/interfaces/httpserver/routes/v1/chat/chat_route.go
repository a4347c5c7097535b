package chat

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-api/internal/domain/chat"
	"chat-api/internal/infrastructure/metrics"
	"chat-api/internal/interfaces/httpserver/handlers/chathandler"
	chatrequests "chat-api/internal/interfaces/httpserver/requests/chat"
	"chat-api/internal/interfaces/httpserver/responses"
	"chat-api/internal/utils/platformerrors"
)

// ChatRoute registers the chat endpoints
type ChatRoute struct {
	chatHandler *chathandler.ChatHandler
}

// NewChatRoute creates a new chat route
func NewChatRoute(chatHandler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{chatHandler: chatHandler}
}

// RegisterRouter registers chat routes on the given router group
func (route *ChatRoute) RegisterRouter(router gin.IRouter) {
	chats := router.Group("/chats")
	chats.GET("", route.ListChats)
	chats.POST("", route.CreateChat)
	chats.GET("/:chatId", route.GetChat)
	chats.GET("/:chatId/messages", route.ListMessages)
	chats.POST("/:chatId/messages", route.SendMessage)
}

// CreateChat creates a new chat session
func (route *ChatRoute) CreateChat(reqCtx *gin.Context) {
	var req chatrequests.CreateChatRequest
	// io.EOF means an absent body, which is valid; everything is defaulted.
	if err := reqCtx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid request body: "+err.Error(),
			"7c1d93f0-5a42-4f8e-9d11-3b6a82c4e0f1")
		return
	}

	resp, err := route.chatHandler.CreateChat(reqCtx.Request.Context(), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to create chat")
		return
	}

	metrics.ChatsCreatedTotal.Inc()
	reqCtx.JSON(http.StatusCreated, resp)
}

// ListChats lists all chats, most recently active first
func (route *ChatRoute) ListChats(reqCtx *gin.Context) {
	resp, err := route.chatHandler.ListChats(reqCtx.Request.Context())
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list chats")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}

// GetChat returns a single chat by ID
func (route *ChatRoute) GetChat(reqCtx *gin.Context) {
	chatID := reqCtx.Param("chatId")
	resp, err := route.chatHandler.GetChat(reqCtx.Request.Context(), chatID)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to get chat")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}

// ListMessages returns a chat's messages in chronological order
func (route *ChatRoute) ListMessages(reqCtx *gin.Context) {
	chatID := reqCtx.Param("chatId")
	resp, err := route.chatHandler.ListMessages(reqCtx.Request.Context(), chatID)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list messages")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}

// SendMessage persists a user message and the generated assistant reply
func (route *ChatRoute) SendMessage(reqCtx *gin.Context) {
	chatID := reqCtx.Param("chatId")

	var req chatrequests.SendMessageRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid request body: "+err.Error(),
			"e52b7a18-90cd-4d36-b1f4-6aa0c29d857e")
		return
	}

	resp, err := route.chatHandler.SendMessage(reqCtx.Request.Context(), chatID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to process message")
		return
	}

	metrics.MessagesTotal.WithLabelValues(string(chat.RoleUser)).Inc()
	metrics.MessagesTotal.WithLabelValues(string(chat.RoleAssistant)).Inc()
	reqCtx.JSON(http.StatusCreated, resp)
}
