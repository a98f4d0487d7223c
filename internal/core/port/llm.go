package port

import (
	"context"

	"andromeda-ads/internal/core/domain"
)

// LLMProvider is one chat-completion vendor. Implementations translate the
// provider-neutral request to their wire format and back.
type LLMProvider interface {
	// Name returns the provider identifier reported in completions.
	Name() string
	// Complete runs a completion without tools.
	Complete(ctx context.Context, req domain.ChatRequest) (domain.Completion, error)
	// CompleteWithTools runs a completion with tool definitions and returns
	// the tool invocations the model requested.
	CompleteWithTools(ctx context.Context, req domain.ChatRequest) (domain.ToolCompletion, error)
}

// ImageGenerator produces base64 encoded ad images.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Edit(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// AIFactory builds AI clients from per-request credentials.
type AIFactory interface {
	// Provider selects the chat provider by credential priority. It fails
	// with a domain.ConfigurationError when no key is present.
	Provider(creds domain.Credentials) (LLMProvider, error)
	// Images returns the image generator, which needs the OpenAI key.
	Images(creds domain.Credentials) (ImageGenerator, error)
}
