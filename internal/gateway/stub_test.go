package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end tests against an httptest provider stub, exercising the real
// genai client and its wire decoding instead of the in-process fakes.

func newStubGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.BaseURL = srv.URL
	gw, err := New(context.Background(), cfg)
	require.NoError(t, err)
	return gw
}

func TestGenerateDescriptionAgainstStub(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-3-flash-preview")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"وصف تجريبي"}]}}]}`))
	})

	got := gw.GenerateDescription(context.Background(), "قميص أبيض", "قمصان")

	assert.Equal(t, "وصف تجريبي", got)
}

func TestGenerateDescriptionAgainstFailingStub(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":500,"message":"internal"}}`, http.StatusInternalServerError)
	})

	got := gw.GenerateDescription(context.Background(), "قميص أبيض", "قمصان")

	assert.Equal(t, "تشكيلة حصرية من متجر جمال للرجل العصري.", got)
}

func TestGenerateProductImageAgainstStub(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"inlineData":{"mimeType":"image/png","data":"QQ=="}}]}}]}`))
	})

	uri, ok := gw.GenerateProductImage(context.Background(), "بدلة سوداء", Size1K)

	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,QQ==", uri)
}

func TestChatAgainstStub(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates":[{
				"content":{"role":"model","parts":[{"text":"أقرب فرع في وسط المدينة"}]},
				"groundingMetadata":{"groundingChunks":[{"web":{"uri":"https://example.com","title":"GAMAL Stores"}}]}
			}]
		}`))
	})

	reply := gw.Chat(context.Background(), "أين أقرب فرع؟", nil)

	assert.Equal(t, "أقرب فرع في وسط المدينة", reply.Text)
	require.Len(t, reply.Sources, 1)
	assert.Equal(t, Source{URI: "https://example.com", Title: "GAMAL Stores"}, reply.Sources[0])
}
