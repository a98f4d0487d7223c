package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/core/port/mocks"
)

var aiCreds = domain.Credentials{AnthropicKey: "sk-ant"}

var validBriefing = domain.Briefing{
	Product:   "Linen shirt",
	Audience:  "women 25-40",
	PainPoint: "synthetic fabrics feel hot",
}

func conceptSet(angles ...string) []domain.Concept {
	out := make([]domain.Concept, len(angles))
	for i, a := range angles {
		out[i] = domain.Concept{Angle: a, Hook: "hook " + a, Headline: "H" + a, Body: "b", CTA: "Buy", Selected: true, ImageB64: "x"}
	}
	return out
}

func conceptsResponse(t *testing.T, cs []domain.Concept) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"concepts": cs})
	require.NoError(t, err)
	return "Here you go:\n```json\n" + string(raw) + "\n```"
}

func newCopy(t *testing.T, provider port.LLMProvider) *CopyUseCase {
	t.Helper()
	ai := mocks.NewMockAIFactory(t)
	ai.EXPECT().Provider(aiCreds).Return(provider, nil).Maybe()
	return NewCopyUseCase(ai, discardLogger())
}

func TestGenerateConcepts(t *testing.T) {
	provider := mocks.NewMockLLMProvider(t)
	provider.EXPECT().Name().Return(domain.ProviderAnthropic).Maybe()
	provider.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(r domain.ChatRequest) bool {
		return r.MaxTokens == conceptsMaxTokens && strings.Contains(r.Messages[0].Text, "Linen shirt")
	})).Return(domain.Completion{Text: conceptsResponse(t, conceptSet(domain.SuggestedAngles...))}, nil)

	got, err := newCopy(t, provider).GenerateConcepts(context.Background(), aiCreds, validBriefing)
	require.NoError(t, err)
	require.Len(t, got, domain.ConceptSetSize)
	for _, c := range got {
		assert.False(t, c.Selected)
		assert.Empty(t, c.ImageB64)
	}
	assert.Equal(t, "FOMO", got[0].Angle)
}

func TestGenerateConceptsRejectsInvalidSet(t *testing.T) {
	tests := []struct {
		name     string
		concepts []domain.Concept
	}{
		{"too few", conceptSet(domain.SuggestedAngles[:9]...)},
		{"duplicate angle", conceptSet(append(domain.SuggestedAngles[:9:9], " fomo ")...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockLLMProvider(t)
			provider.EXPECT().Name().Return(domain.ProviderOpenAI)
			provider.EXPECT().Complete(mock.Anything, mock.Anything).
				Return(domain.Completion{Text: conceptsResponse(t, tt.concepts)}, nil)

			_, err := newCopy(t, provider).GenerateConcepts(context.Background(), aiCreds, validBriefing)
			var ue *domain.UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, domain.ProviderOpenAI, ue.Vendor)
		})
	}
}

func TestGenerateConceptsInvalidBriefing(t *testing.T) {
	u := NewCopyUseCase(mocks.NewMockAIFactory(t), discardLogger())

	_, err := u.GenerateConcepts(context.Background(), aiCreds, domain.Briefing{Product: "x"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Message, "audience")
}

func TestGenerateConceptsMissingKey(t *testing.T) {
	ai := mocks.NewMockAIFactory(t)
	ai.EXPECT().Provider(domain.Credentials{}).
		Return(nil, &domain.ConfigurationError{Setting: "x-anthropic-key"})

	_, err := NewCopyUseCase(ai, discardLogger()).GenerateConcepts(context.Background(), domain.Credentials{}, validBriefing)
	var ce *domain.ConfigurationError
	assert.True(t, errors.As(err, &ce))
}

func TestAnalyzeProduct(t *testing.T) {
	provider := mocks.NewMockLLMProvider(t)
	provider.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(r domain.ChatRequest) bool {
		return r.JSONObject && r.MaxTokens == briefingMaxTokens
	})).Return(domain.Completion{Text: `{"product":"Linen shirt","audience":"a","painPoint":"p","differentiator":"d","tone":"casual and friendly"}`}, nil)

	b, err := newCopy(t, provider).AnalyzeProduct(context.Background(), aiCreds, domain.Product{Title: "Linen shirt", Price: "49.00"})
	require.NoError(t, err)
	assert.Equal(t, "casual and friendly", b.Tone)

	_, err = newCopy(t, provider).AnalyzeProduct(context.Background(), aiCreds, domain.Product{})
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestChatSendsToolsAndContext(t *testing.T) {
	turn := port.ChatTurn{
		Messages: []domain.Message{domain.TextMessage(domain.RoleUser, "make concept 2 punchier")},
		Briefing: &validBriefing,
		Concepts: conceptSet("FOMO", "Identity"),
	}
	want := domain.ToolCompletion{
		Text:     "Done",
		ToolUses: []domain.ToolUse{{ID: "t1", Name: domain.ToolUpdateConcept, Input: map[string]any{"index": float64(1)}}},
		Provider: domain.ProviderAnthropic,
	}

	provider := mocks.NewMockLLMProvider(t)
	provider.EXPECT().CompleteWithTools(mock.Anything, mock.MatchedBy(func(r domain.ChatRequest) bool {
		return len(r.Tools) == len(AssistantTools) &&
			strings.Contains(r.System, "Linen shirt") &&
			strings.Contains(r.System, `"HIdentity"`)
	})).Return(want, nil)

	got, err := newCopy(t, provider).Chat(context.Background(), aiCreds, turn)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("completion mismatch (-want +got):\n%s", diff)
	}
}

func TestChatRequiresMessages(t *testing.T) {
	_, err := NewCopyUseCase(mocks.NewMockAIFactory(t), discardLogger()).Chat(context.Background(), aiCreds, port.ChatTurn{})
	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestGenerateCreative(t *testing.T) {
	img := base64.StdEncoding.EncodeToString([]byte("jpeg"))

	t.Run("manual echoes image without keys", func(t *testing.T) {
		u := NewCopyUseCase(mocks.NewMockAIFactory(t), discardLogger())
		got, err := u.GenerateCreative(context.Background(), domain.Credentials{}, domain.CreativeRequest{Mode: domain.CreativeManual, ImageBase64: img})
		require.NoError(t, err)
		assert.Equal(t, img, got)
	})

	t.Run("generate", func(t *testing.T) {
		gen := mocks.NewMockImageGenerator(t)
		gen.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, `"Dress"`)
		})).Return("b64", nil)
		ai := mocks.NewMockAIFactory(t)
		ai.EXPECT().Images(aiCreds).Return(gen, nil)

		got, err := NewCopyUseCase(ai, discardLogger()).GenerateCreative(context.Background(), aiCreds, domain.CreativeRequest{
			Mode:    domain.CreativeGenerate,
			Concept: domain.Concept{Angle: "FOMO", Headline: "Last one"},
			Product: &domain.Product{Title: "Dress", Price: "59"},
		})
		require.NoError(t, err)
		assert.Equal(t, "b64", got)
	})

	t.Run("edit decodes image and defaults mime", func(t *testing.T) {
		gen := mocks.NewMockImageGenerator(t)
		gen.EXPECT().Edit(mock.Anything, mock.Anything, []byte("jpeg"), "image/jpeg").Return("edited", nil)
		ai := mocks.NewMockAIFactory(t)
		ai.EXPECT().Images(aiCreds).Return(gen, nil)

		got, err := NewCopyUseCase(ai, discardLogger()).GenerateCreative(context.Background(), aiCreds, domain.CreativeRequest{Mode: domain.CreativeEdit, ImageBase64: img})
		require.NoError(t, err)
		assert.Equal(t, "edited", got)
	})

	for _, req := range []domain.CreativeRequest{
		{Mode: domain.CreativeEdit},
		{Mode: domain.CreativeManual},
		{Mode: "sketch", ImageBase64: img},
		{Mode: domain.CreativeEdit, ImageBase64: "%%%"},
	} {
		t.Run(fmt.Sprintf("invalid %s", req.Mode), func(t *testing.T) {
			_, err := NewCopyUseCase(mocks.NewMockAIFactory(t), discardLogger()).GenerateCreative(context.Background(), aiCreds, req)
			var ve *domain.ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare", `{"a":1}`, `{"a":1}`, false},
		{"fenced", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`, false},
		{"prose around", `Sure! {"a":"}"} hope it helps`, `{"a":"}"}`, false},
		{"skips broken brace", `use {curly} braces: {"ok":true}`, `{"ok":true}`, false},
		{"none", "no json here", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoJSONObject)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
