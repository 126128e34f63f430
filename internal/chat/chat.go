// Package chat manages the assistant widget's session state: the append-only
// message history and the orchestration of chat and speech calls through the
// AI gateway.
package chat

import (
	"context"

	"github.com/gamal-store/server/internal/gateway"
)

// Message is one turn of a chat session. Sources carries the grounding
// citations attached to model turns.
type Message struct {
	Role    gateway.Role     `json:"role"`
	Text    string           `json:"text"`
	Sources []gateway.Source `json:"sources,omitempty"`
}

// HistoryRepository stores the rolling message history of a session.
type HistoryRepository interface {
	// Append adds a message to the session history.
	Append(ctx context.Context, sessionID string, msg Message) error

	// Load retrieves the session history in insertion order.
	Load(ctx context.Context, sessionID string) ([]Message, error)

	// Clear removes the whole session history.
	Clear(ctx context.Context, sessionID string) error

	// Count returns the number of stored messages.
	Count(ctx context.Context, sessionID string) (int, error)
}

// Assistant is the slice of the gateway the session drives.
type Assistant interface {
	Chat(ctx context.Context, query string, history []gateway.Turn) gateway.Reply
	Speak(ctx context.Context, text string) []byte
}
