package chatrequests

// CreateChatRequest represents the request to create a chat. Both fields are
// optional; the store generates an ID and a placeholder title when absent.
type CreateChatRequest struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
}

// SendMessageRequest represents one inbound user turn. Only the user role is
// accepted; assistant turns are produced server-side.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=user"`
}
