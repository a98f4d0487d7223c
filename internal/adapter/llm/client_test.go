package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/core/domain"
)

func testConfig(url string) configs.AI {
	return configs.AI{
		AnthropicURL:     url,
		AnthropicModel:   "claude-sonnet-4-6",
		AnthropicVersion: "2023-06-01",
		OpenAIURL:        url,
		OpenAIModel:      "gpt-4o",
		ImageModel:       "gpt-image-1",
		ImageSize:        "1024x1024",
		Timeout:          5 * time.Second,
	}
}

func newFactory(url string) *Factory {
	return NewFactory(testConfig(url), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProviderPriority(t *testing.T) {
	f := newFactory("http://unused")

	p, err := f.Provider(domain.Credentials{AnthropicKey: "a", OpenAIKey: "o"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderAnthropic, p.Name())

	p, err = f.Provider(domain.Credentials{OpenAIKey: "o"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderOpenAI, p.Name())
}

func TestMissingKeysFailBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	f := newFactory(srv.URL)
	_, err := f.Provider(domain.Credentials{})
	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Setting, SettingAnthropicKey)
	assert.Contains(t, cfgErr.Setting, SettingOpenAIKey)

	_, err = f.Images(domain.Credentials{AnthropicKey: "a"})
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, SettingOpenAIKey, cfgErr.Setting)

	assert.Zero(t, hits.Load())
}

func TestAnthropicComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-sonnet-4-6", body["model"])
		assert.Equal(t, float64(DefaultMaxTokens), body["max_tokens"])
		assert.Equal(t, "sys", body["system"])
		assert.NotContains(t, body, "tools")

		_, _ = io.WriteString(w, `{"content":[{"type":"text","text":"  hola  "}],"stop_reason":"end_turn"}`)
	}))
	defer srv.Close()

	p, err := newFactory(srv.URL).Provider(domain.Credentials{AnthropicKey: "key"})
	require.NoError(t, err)
	out, err := p.Complete(context.Background(), domain.ChatRequest{
		System:   "sys",
		Messages: []domain.Message{domain.TextMessage(domain.RoleUser, "hi")},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Completion{Text: "hola", Provider: domain.ProviderAnthropic}, out)
}

func TestOpenAIUpstreamError(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"vendor message", `{"error":{"message":"quota exceeded"}}`, "OpenAI: quota exceeded"},
		{"status fallback", `{}`, "OpenAI 429"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			p, err := newFactory(srv.URL).Provider(domain.Credentials{OpenAIKey: "o"})
			require.NoError(t, err)
			_, err = p.CompleteWithTools(context.Background(), domain.ChatRequest{})
			var ue *domain.UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, http.StatusTooManyRequests, ue.Status)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestOpenAIImageEdit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/edits", r.URL.Path)
		assert.Equal(t, "Bearer o", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "gpt-image-1", r.FormValue("model"))
		assert.Equal(t, "make it an ad", r.FormValue("prompt"))

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		data, _ := io.ReadAll(f)
		assert.Equal(t, []byte("raw-image"), data)

		_, _ = io.WriteString(w, `{"data":[{"b64_json":"aW1n"}]}`)
	}))
	defer srv.Close()

	img, err := newFactory(srv.URL).Images(domain.Credentials{OpenAIKey: "o"})
	require.NoError(t, err)
	out, err := img.Edit(context.Background(), "make it an ad", []byte("raw-image"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "aW1n", out)
}
