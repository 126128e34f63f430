package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gamal-store/server/internal/gateway"
	logx "github.com/gamal-store/server/pkg/logger"
)

// ErrEmptyQuery rejects a blank chat input before any provider call.
var ErrEmptyQuery = errors.New("empty query")

// narrationLimit caps how much of a reply is sent to speech synthesis.
const narrationLimit = 200

// Session drives one chat conversation: it loads the rolling history, calls
// the gateway, and appends both turns. The store contact number, when set,
// is injected into the model-facing query so the assistant can hand it out.
type Session struct {
	id        string
	assistant Assistant
	history   HistoryRepository
	contact   string
}

func NewSession(id string, assistant Assistant, history HistoryRepository, contactNumber string) *Session {
	return &Session{
		id:        id,
		assistant: assistant,
		history:   history,
		contact:   contactNumber,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Send submits a user query and returns the model's message. The gateway's
// failure boundary guarantees a reply; only a blank query yields an error.
func (s *Session) Send(ctx context.Context, query string) (Message, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Message{}, ErrEmptyQuery
	}

	past, err := s.history.Load(ctx, s.id)
	if err != nil {
		// degrade to a history-less turn rather than blocking the user
		logx.Warn().Err(err).Str("sessionID", s.id).Msg("history unavailable, answering without it")
		past = nil
	}
	turns := make([]gateway.Turn, 0, len(past))
	for _, m := range past {
		turns = append(turns, gateway.Turn{Role: m.Role, Text: m.Text})
	}

	outgoing := query
	if s.contact != "" {
		outgoing = fmt.Sprintf("%s (Note for AI: The store's contact number is %s)", query, s.contact)
	}

	reply := s.assistant.Chat(ctx, outgoing, turns)

	modelMsg := Message{Role: gateway.RoleModel, Text: reply.Text, Sources: reply.Sources}
	if err := s.history.Append(ctx, s.id, Message{Role: gateway.RoleUser, Text: query}); err != nil {
		logx.Warn().Err(err).Str("sessionID", s.id).Msg("failed to record user turn")
	}
	if err := s.history.Append(ctx, s.id, modelMsg); err != nil {
		logx.Warn().Err(err).Str("sessionID", s.id).Msg("failed to record model turn")
	}
	return modelMsg, nil
}

// Narrate synthesizes the leading part of a reply as speech and returns the
// raw audio bytes, or nil when synthesis was not possible. Playback is the
// caller's concern.
func (s *Session) Narrate(ctx context.Context, text string) []byte {
	if r := []rune(text); len(r) > narrationLimit {
		text = string(r[:narrationLimit])
	}
	return s.assistant.Speak(ctx, text)
}
