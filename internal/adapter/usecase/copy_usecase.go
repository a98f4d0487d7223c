package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
)

// CopyUseCase writes briefings, concepts and creatives with the configured
// AI providers.
type CopyUseCase struct {
	ai     port.AIFactory
	logger *slog.Logger
}

var _ port.CopyUseCase = (*CopyUseCase)(nil)

func NewCopyUseCase(ai port.AIFactory, logger *slog.Logger) *CopyUseCase {
	return &CopyUseCase{ai: ai, logger: logger}
}

func (u *CopyUseCase) AnalyzeProduct(ctx context.Context, creds domain.Credentials, product domain.Product) (domain.Briefing, error) {
	if strings.TrimSpace(product.Title) == "" {
		return domain.Briefing{}, domain.NewValidationError("product title is required")
	}
	provider, err := u.ai.Provider(creds)
	if err != nil {
		return domain.Briefing{}, err
	}
	var b domain.Briefing
	if err = completeJSON(ctx, provider, productPrompt(product), briefingMaxTokens, &b); err != nil {
		return domain.Briefing{}, fmt.Errorf("analyze product: %w", err)
	}
	return b, nil
}

// GenerateConcepts fails with an UpstreamError when the model does not
// return exactly ten concepts with distinct angles.
func (u *CopyUseCase) GenerateConcepts(ctx context.Context, creds domain.Credentials, briefing domain.Briefing) ([]domain.Concept, error) {
	if err := briefing.Validate(); err != nil {
		return nil, err
	}
	provider, err := u.ai.Provider(creds)
	if err != nil {
		return nil, err
	}
	var out struct {
		Concepts []domain.Concept `json:"concepts"`
	}
	if err = completeJSON(ctx, provider, conceptsPrompt(briefing), conceptsMaxTokens, &out); err != nil {
		return nil, fmt.Errorf("generate concepts: %w", err)
	}
	if err = domain.ValidateConceptSet(out.Concepts); err != nil {
		u.logger.WarnContext(ctx, "rejected concept set",
			slog.String("provider", provider.Name()),
			slog.Int("count", len(out.Concepts)),
			slog.Any("error", err),
		)
		return nil, &domain.UpstreamError{Vendor: provider.Name(), Message: "LLM returned an invalid concept set: " + err.Error()}
	}
	for i := range out.Concepts {
		out.Concepts[i].Selected = false
		out.Concepts[i].ImageB64 = ""
	}
	return out.Concepts, nil
}

func (u *CopyUseCase) Chat(ctx context.Context, creds domain.Credentials, turn port.ChatTurn) (domain.ToolCompletion, error) {
	if len(turn.Messages) == 0 {
		return domain.ToolCompletion{}, domain.NewValidationError("messages are required")
	}
	provider, err := u.ai.Provider(creds)
	if err != nil {
		return domain.ToolCompletion{}, err
	}
	return provider.CompleteWithTools(ctx, domain.ChatRequest{
		System:   chatSystemPrompt(turn),
		Messages: turn.Messages,
		Tools:    AssistantTools,
	})
}

// GenerateCreative returns a base64 image. Manual mode echoes the uploaded
// image and needs no AI key.
func (u *CopyUseCase) GenerateCreative(ctx context.Context, creds domain.Credentials, req domain.CreativeRequest) (string, error) {
	switch {
	case req.Mode == domain.CreativeManual && req.ImageBase64 != "":
		return req.ImageBase64, nil
	case req.Mode == domain.CreativeGenerate:
		images, err := u.ai.Images(creds)
		if err != nil {
			return "", err
		}
		return images.Generate(ctx, generatePrompt(req))
	case req.Mode == domain.CreativeEdit && req.ImageBase64 != "":
		raw, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return "", domain.NewValidationError("imageBase64 is not valid base64")
		}
		images, err := u.ai.Images(creds)
		if err != nil {
			return "", err
		}
		mime := req.MimeType
		if mime == "" {
			mime = "image/jpeg"
		}
		return images.Edit(ctx, editPrompt(req), raw, mime)
	default:
		return "", domain.NewValidationError("invalid mode or missing image")
	}
}

func generatePrompt(req domain.CreativeRequest) string {
	c := req.Concept
	var product, feature string
	if p := req.Product; p != nil {
		product = fmt.Sprintf("\nFeatured product: %q at $%s. %s", p.Title, p.Price, domain.Truncate(p.Description, 200))
		feature = fmt.Sprintf(" Feature the product %q prominently in the composition.", p.Title)
	}
	return fmt.Sprintf(`Professional fashion advertisement photo for Instagram/Facebook/TikTok.
Concept angle: %q (%s)
Headline visible in image: %q%s
Style: %s
Requirements: 1080x1080px square format, high-end fashion brand aesthetic, bold typography overlay, vibrant colors.
The image must look like a real paid digital ad for a clothing/fashion brand.%s`,
		c.Angle, c.Hook, c.Headline, product, orDefault(req.Style, "modern, clean, high-fashion editorial"), feature)
}

func editPrompt(req domain.CreativeRequest) string {
	return fmt.Sprintf(`Transform this product photo into a professional fashion Meta ad.
Add the text overlay: %q
CTA badge: %q
Style: %s
Keep the original product visible and prominent. Make it look like a real paid advertisement.`,
		req.Concept.Headline, req.Concept.CTA, orDefault(req.Style, "clean editorial fashion ad, modern typography, Instagram-ready"))
}
