package generative

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/zap"
)

// fakeModel answers generateContent calls with queued reply texts and records the strings of every request.
type fakeModel struct {
	mu       sync.Mutex
	replies  []string
	status   int
	requests []string
}

func (f *fakeModel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var decoded any
	_ = json.Unmarshal(body, &decoded)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, strings.Join(collectStrings(decoded, nil), "\n"))

	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"boom","status":"INVALID_ARGUMENT"}}`))
		return
	}

	text := ""
	if len(f.replies) > 0 {
		text, f.replies = f.replies[0], f.replies[1:]
	}
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func collectStrings(v any, into []string) []string {
	switch val := v.(type) {
	case string:
		into = append(into, val)
	case []any:
		for _, item := range val {
			into = collectStrings(item, into)
		}
	case map[string]any:
		for _, item := range val {
			into = collectStrings(item, into)
		}
	}
	return into
}

func (f *fakeModel) lastRequest() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return ""
	}
	return f.requests[len(f.requests)-1]
}

func newTestService(t *testing.T, replies ...string) (Service, *fakeModel) {
	fake := &fakeModel{replies: replies}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	provider, err := config.NewStaticProvider(map[string]interface{}{
		_configKey: map[string]interface{}{
			"name":              "test-model",
			"baseURL":           srv.URL,
			"requestsPerMinute": 6000,
			"burst":             10,
		},
	})
	require.NoError(t, err)

	g, err := New(Params{
		Config: provider,
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NewTestScope("testing", nil),
	})
	require.NoError(t, err)

	s, err := g.Configure(context.Background(), " test-key ")
	require.NoError(t, err)
	return s, fake
}

func TestConfigure(t *testing.T) {
	provider, err := config.NewStaticProvider(map[string]interface{}{})
	require.NoError(t, err)
	g, err := New(Params{
		Config: provider,
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NewTestScope("testing", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, _defaultModel, g.(*gateway).cfg.Name)

	_, err = g.Configure(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.IsService(err))
	assert.Equal(t, "[Gemini API] API Key is not provided or is invalid.", err.Error())

	s, err := g.Configure(context.Background(), "key")
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestConversationSend(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts markup from the reply", func(t *testing.T) {
		s, fake := newTestService(t, "Here it is <DAssigner-Start><div class=\"p-4\">Hero</div><DAssigner-End>")
		conv, err := s.CreateConversation(ctx)
		require.NoError(t, err)

		out, err := conv.Send(ctx, "  hero section  ")
		require.NoError(t, err)
		assert.Equal(t, `<div class="p-4">Hero</div>`, out.HTMLCode)
		assert.Contains(t, fake.lastRequest(), "hero section")
		assert.Contains(t, fake.lastRequest(), "You are DAssigner")
	})

	t.Run("later turns carry the conversation", func(t *testing.T) {
		s, fake := newTestService(t, "<p>one</p>", "<p>two</p>")
		conv, err := s.CreateConversation(ctx)
		require.NoError(t, err)

		_, err = conv.Send(ctx, "first request")
		require.NoError(t, err)
		out, err := conv.Send(ctx, "second request")
		require.NoError(t, err)
		assert.Equal(t, "<p>two</p>", out.HTMLCode)
		assert.Contains(t, fake.lastRequest(), "first request")
		assert.Contains(t, fake.lastRequest(), "<p>one</p>")
	})

	t.Run("prose reply is rejected", func(t *testing.T) {
		s, _ := newTestService(t, "Sorry, I can't do that.")
		conv, err := s.CreateConversation(ctx)
		require.NoError(t, err)

		_, err = conv.Send(ctx, "hero")
		require.Error(t, err)
		assert.True(t, errors.IsService(err))
		assert.Contains(t, err.Error(), "did not contain valid HTML")
	})

	t.Run("empty reply is rejected", func(t *testing.T) {
		s, _ := newTestService(t, "")
		conv, err := s.CreateConversation(ctx)
		require.NoError(t, err)

		_, err = conv.Send(ctx, "hero")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Empty response")
	})

	t.Run("blank prompt is rejected without a call", func(t *testing.T) {
		s, fake := newTestService(t)
		conv, err := s.CreateConversation(ctx)
		require.NoError(t, err)

		_, err = conv.Send(ctx, "  ")
		assert.ErrorIs(t, err, errors.EmptyPromptError)
		assert.Empty(t, fake.lastRequest())
	})

	t.Run("service failure", func(t *testing.T) {
		s, fake := newTestService(t)
		fake.status = http.StatusBadRequest
		conv, err := s.CreateConversation(ctx)
		require.NoError(t, err)

		_, err = conv.Send(ctx, "hero")
		require.Error(t, err)
		assert.True(t, errors.IsService(err))
	})
}

func TestEnhance(t *testing.T) {
	ctx := context.Background()

	s, fake := newTestService(t, "  A vibrant landing page with a gradient hero  ")
	got, err := s.Enhance(ctx, "landing page")
	require.NoError(t, err)
	assert.Equal(t, "A vibrant landing page with a gradient hero", got)
	assert.Contains(t, fake.lastRequest(), `User's prompt: "landing page"`)

	s, _ = newTestService(t, "   ")
	_, err = s.Enhance(ctx, "landing page")
	assert.Error(t, err)

	_, err = s.Enhance(ctx, "")
	assert.ErrorIs(t, err, errors.EmptyPromptError)
}

func TestConvert(t *testing.T) {
	ctx := context.Background()

	s, fake := newTestService(t, "export default function Hero() { return null }")
	got, err := s.Convert(ctx, "<div>hero</div>", entity.TargetReact)
	require.NoError(t, err)
	assert.Equal(t, "export default function Hero() { return null }", got)
	assert.Contains(t, fake.lastRequest(), "functional React component")
	assert.Contains(t, fake.lastRequest(), "className instead of class")

	_, err = s.Convert(ctx, "<div>hero</div>", entity.ConversionTarget("Svelte"))
	assert.Error(t, err)
	_, err = s.Convert(ctx, " ", entity.TargetVue)
	assert.Error(t, err)
}

func TestSuggestPrompts(t *testing.T) {
	ctx := context.Background()

	t.Run("model suggestions", func(t *testing.T) {
		s, fake := newTestService(t, `["a","b","c","d","e","f","g"]`)
		got := s.SuggestPrompts(ctx)
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, got)
		assert.Contains(t, fake.lastRequest(), "application/json")
	})

	for name, reply := range map[string]string{
		"not json":     "here are some ideas",
		"empty array":  "[]",
		"blank prompt": `["a", " "]`,
	} {
		reply := reply
		t.Run(name, func(t *testing.T) {
			s, _ := newTestService(t, reply)
			assert.Equal(t, DefaultPrompts, s.SuggestPrompts(ctx))
		})
	}

	t.Run("service failure", func(t *testing.T) {
		s, fake := newTestService(t)
		fake.status = http.StatusBadRequest
		got := s.SuggestPrompts(ctx)
		assert.Len(t, got, 6)
		assert.Equal(t, DefaultPrompts, got)
	})
}

func TestComponentPrompt(t *testing.T) {
	got := ComponentPrompt("add a footer", "<main></main>")
	assert.Equal(t, "Based on the previous HTML, now add the following component or change: add a footer. The previous HTML was:\n\n```html\n<main></main>\n```", got)
	assert.True(t, strings.HasSuffix(got, "```"))
}
