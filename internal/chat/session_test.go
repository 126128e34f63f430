package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamal-store/server/internal/gateway"
)

type fakeAssistant struct {
	reply gateway.Reply
	audio []byte

	gotQuery   string
	gotHistory []gateway.Turn
	gotSpeech  string
}

func (f *fakeAssistant) Chat(_ context.Context, query string, history []gateway.Turn) gateway.Reply {
	f.gotQuery = query
	f.gotHistory = history
	return f.reply
}

func (f *fakeAssistant) Speak(_ context.Context, text string) []byte {
	f.gotSpeech = text
	return f.audio
}

type memoryHistory struct {
	messages map[string][]Message
	loadErr  error
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{messages: map[string][]Message{}}
}

func (m *memoryHistory) Append(_ context.Context, sessionID string, msg Message) error {
	m.messages[sessionID] = append(m.messages[sessionID], msg)
	return nil
}

func (m *memoryHistory) Load(_ context.Context, sessionID string) ([]Message, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.messages[sessionID], nil
}

func (m *memoryHistory) Clear(_ context.Context, sessionID string) error {
	delete(m.messages, sessionID)
	return nil
}

func (m *memoryHistory) Count(_ context.Context, sessionID string) (int, error) {
	return len(m.messages[sessionID]), nil
}

func TestSessionSend(t *testing.T) {
	assistant := &fakeAssistant{reply: gateway.Reply{
		Text:    "ننصحك بالبدلة الكلاسيكية",
		Sources: []gateway.Source{{URI: "https://example.com", Title: "Trends"}},
	}}
	history := newMemoryHistory()
	session := NewSession("sess-1", assistant, history, "+20 123 456 789")

	msg, err := session.Send(context.Background(), "  ماذا أرتدي لحفل زفاف؟  ")

	require.NoError(t, err)
	assert.Equal(t, gateway.RoleModel, msg.Role)
	assert.Equal(t, "ننصحك بالبدلة الكلاسيكية", msg.Text)
	require.Len(t, msg.Sources, 1)

	// contact number is injected into the model-facing query only
	assert.Equal(t, "ماذا أرتدي لحفل زفاف؟ (Note for AI: The store's contact number is +20 123 456 789)", assistant.gotQuery)

	stored := history.messages["sess-1"]
	require.Len(t, stored, 2)
	assert.Equal(t, gateway.RoleUser, stored[0].Role)
	assert.Equal(t, "ماذا أرتدي لحفل زفاف؟", stored[0].Text, "stored user turn keeps the original text")
	assert.Equal(t, gateway.RoleModel, stored[1].Role)
}

func TestSessionSendPassesHistory(t *testing.T) {
	assistant := &fakeAssistant{reply: gateway.Reply{Text: "تابع", Sources: []gateway.Source{}}}
	history := newMemoryHistory()
	history.messages["sess-1"] = []Message{
		{Role: gateway.RoleUser, Text: "مرحباً"},
		{Role: gateway.RoleModel, Text: "أهلاً بك"},
	}
	session := NewSession("sess-1", assistant, history, "")

	_, err := session.Send(context.Background(), "سؤال جديد")

	require.NoError(t, err)
	require.Len(t, assistant.gotHistory, 2)
	assert.Equal(t, gateway.Turn{Role: gateway.RoleUser, Text: "مرحباً"}, assistant.gotHistory[0])
	assert.Equal(t, gateway.Turn{Role: gateway.RoleModel, Text: "أهلاً بك"}, assistant.gotHistory[1])
	assert.Equal(t, "سؤال جديد", assistant.gotQuery, "no contact configured, query goes out untouched")
}

func TestSessionSendEmptyQuery(t *testing.T) {
	session := NewSession("sess-1", &fakeAssistant{}, newMemoryHistory(), "")

	_, err := session.Send(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSessionSendHistoryUnavailable(t *testing.T) {
	assistant := &fakeAssistant{reply: gateway.Reply{Text: "إجابة", Sources: []gateway.Source{}}}
	history := newMemoryHistory()
	history.loadErr = errors.New("redis down")
	session := NewSession("sess-1", assistant, history, "")

	msg, err := session.Send(context.Background(), "سؤال")

	require.NoError(t, err, "an unavailable history must not block the turn")
	assert.Equal(t, "إجابة", msg.Text)
	assert.Empty(t, assistant.gotHistory)
}

func TestSessionNarrateTruncates(t *testing.T) {
	assistant := &fakeAssistant{audio: []byte{1, 2, 3}}
	session := NewSession("sess-1", assistant, newMemoryHistory(), "")

	long := strings.Repeat("كلمة ", 100)
	audio := session.Narrate(context.Background(), long)

	assert.Equal(t, []byte{1, 2, 3}, audio)
	assert.Len(t, []rune(assistant.gotSpeech), 200)
}

func TestSessionNarrateShortText(t *testing.T) {
	assistant := &fakeAssistant{}
	session := NewSession("sess-1", assistant, newMemoryHistory(), "")

	audio := session.Narrate(context.Background(), "نص قصير")

	assert.Nil(t, audio)
	assert.Equal(t, "نص قصير", assistant.gotSpeech)
}
