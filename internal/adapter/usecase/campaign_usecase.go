package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/core/port"
)

// CampaignUseCase launches campaigns and reads their stats.
type CampaignUseCase struct {
	platforms port.PlatformFactory
	logger    *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(platforms port.PlatformFactory, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{platforms: platforms, logger: logger}
}

// knownPlatform maps unknown platforms to the default one.
func knownPlatform(p domain.Platform) domain.Platform {
	if slices.Contains(domain.Platforms, p) {
		return p
	}
	return domain.DefaultPlatform
}

func (u *CampaignUseCase) Validate(ctx context.Context, p domain.Platform, creds domain.Credentials) (domain.AccountInfo, error) {
	plat, err := u.platforms.Platform(knownPlatform(p), creds)
	if err != nil {
		return domain.AccountInfo{}, err
	}
	return plat.Validate(ctx)
}

func (u *CampaignUseCase) Launch(ctx context.Context, p domain.Platform, creds domain.Credentials, spec domain.CampaignSpec) (domain.LaunchResult, error) {
	if err := spec.Validate(); err != nil {
		return domain.LaunchResult{}, err
	}
	plat, err := u.platforms.Platform(knownPlatform(p), creds)
	if err != nil {
		return domain.LaunchResult{}, err
	}
	res, err := plat.CreateCampaign(ctx, spec.WithDefaults())
	if err != nil {
		return res, err
	}
	u.logger.InfoContext(ctx, "campaign launched",
		slog.String("platform", string(plat.Platform())),
		slog.String("campaign_id", res.CampaignID),
		slog.Int("ads", len(res.AdIDs)),
	)
	return res, nil
}

// UploadCreative adds an image ad to a Meta ad set.
func (u *CampaignUseCase) UploadCreative(ctx context.Context, creds domain.Credentials, upload domain.CreativeUpload) (domain.CreativeResult, error) {
	if err := upload.Validate(); err != nil {
		return domain.CreativeResult{}, err
	}
	plat, err := u.platforms.Platform(domain.PlatformMeta, creds)
	if err != nil {
		return domain.CreativeResult{}, err
	}
	return plat.UploadCreative(ctx, upload)
}

func (u *CampaignUseCase) UploadPending(ctx context.Context, creds domain.Credentials, campaign domain.Campaign, concepts []domain.Concept) (domain.UploadReport, error) {
	report := domain.UploadReport{AdIDs: []string{}}
	if knownPlatform(campaign.Platform) != domain.PlatformMeta {
		return report, fmt.Errorf("upload to %s: %w", campaign.Platform.Label(), domain.ErrUnsupported)
	}

	var pending []domain.Concept
	for _, c := range concepts {
		if c.ImageB64 != "" {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 || len(campaign.AdSetIDs) == 0 {
		return report, nil
	}
	if strings.TrimSpace(campaign.DestinationURL) == "" {
		return report, domain.NewValidationError("campaign has no destination URL for image ads")
	}
	plat, err := u.platforms.Platform(domain.PlatformMeta, creds)
	if err != nil {
		return report, err
	}

	for i := 0; i < min(len(pending), len(campaign.AdSetIDs)); i++ {
		adSetID := campaign.AdSetIDs[i]
		if adSetID == "" {
			continue
		}
		res, err := plat.UploadCreative(ctx, domain.CreativeUpload{
			AdSetID:        adSetID,
			ImageB64:       pending[i].ImageB64,
			Headline:       pending[i].Headline,
			Body:           pending[i].Body,
			DestinationURL: campaign.DestinationURL,
		})
		if err != nil {
			u.logger.WarnContext(ctx, "creative upload failed",
				slog.String("ad_set_id", adSetID),
				slog.Any("error", err),
			)
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("ad set %s: %v", adSetID, err))
			continue
		}
		report.Uploaded++
		report.AdIDs = append(report.AdIDs, res.AdID)
	}
	return report, nil
}

// Stats reads the campaign stats. Unknown platforms fall back to the
// default platform.
func (u *CampaignUseCase) Stats(ctx context.Context, p domain.Platform, creds domain.Credentials, campaignID string) (domain.Stats, error) {
	if strings.TrimSpace(campaignID) == "" {
		return domain.Stats{}, domain.NewValidationError("campaignId is required")
	}
	plat, err := u.platforms.Platform(knownPlatform(p), creds)
	if err != nil {
		return domain.Stats{}, err
	}
	return plat.Stats(ctx, campaignID)
}
