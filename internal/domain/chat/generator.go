package chat

import "context"

// ReplyGenerator produces assistant text from conversation state. The
// completion provider behind it is treated as a black box; failures surface
// as typed errors and the caller decides what to persist.
type ReplyGenerator interface {
	// GenerateReply returns one assistant reply for the given history. The
	// history already ends with the newest user turn; implementations must
	// not re-append it.
	GenerateReply(ctx context.Context, history []*Message) (string, error)

	// GenerateTitle derives a short chat title from the first user message.
	GenerateTitle(ctx context.Context, content string) (string, error)
}
