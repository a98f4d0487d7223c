package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/state"
)

func campaignCMD(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "campaign", Short: "Launch and inspect campaigns"}

	var platform, url, objective, name string
	launch := &cobra.Command{
		Use:   "launch",
		Short: "Launch the selected concepts with the current campaign settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			selected := s.SelectedConcepts()
			if len(selected) == 0 {
				return domain.NewValidationError("no concepts selected")
			}

			draft := s.CampaignDraft()
			if name != "" {
				draft.Name = name
			}
			if draft.Name == "" {
				draft.Name = "Andromeda " + time.Now().Format("2006-01-02 15:04")
			}
			p := domain.ParsePlatform(platform)
			spec := domain.CampaignSpec{
				Name:           draft.Name,
				Objective:      objective,
				DailyBudgetUSD: draft.DailyBudget,
				DurationDays:   draft.Duration,
				DestinationURL: url,
				Targeting:      draft.Targeting,
				Concepts:       selected,
			}

			api := a.api()
			res, err := api.Launch(cmd.Context(), p, spec)
			if err != nil {
				return err
			}
			angles := make([]string, 0, len(selected))
			for _, c := range selected {
				angles = append(angles, c.Angle)
			}
			err = s.AddCampaign(cmd.Context(), domain.Campaign{
				ID:             res.CampaignID,
				Name:           draft.Name,
				AdSetIDs:       res.AdSetIDs,
				AdIDs:          res.AdIDs,
				Platform:       res.Platform,
				DestinationURL: url,
				ConceptAngles:  angles,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s campaign %s launched with %d ad(s)\n", p.Label(), res.CampaignID, len(res.AdIDs))
			if p != domain.PlatformMeta {
				return nil
			}
			return uploadPending(cmd, a, s, res.CampaignID, selected)
		},
	}
	launch.Flags().StringVar(&platform, "platform", string(domain.DefaultPlatform), "meta, google or tiktok")
	launch.Flags().StringVar(&url, "url", "", "destination URL")
	launch.Flags().StringVar(&objective, "objective", domain.ObjectiveTraffic, "OUTCOME_TRAFFIC or OUTCOME_SALES")
	launch.Flags().StringVar(&name, "name", "", "campaign name (defaults to the draft name)")
	_ = launch.MarkFlagRequired("url")

	list := &cobra.Command{
		Use:   "list",
		Short: "List launched campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range s.State().Campaigns {
				fmt.Fprintf(out, "%s  %-10s %-30q %d ad(s)  %s\n",
					c.ID, c.Platform, c.Name, len(c.AdIDs), c.CreatedAt.Format(time.DateTime))
			}
			return nil
		},
	}

	upload := &cobra.Command{
		Use:   "upload <campaign-id>",
		Short: "Upload selected concept images to a launched Meta campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			return uploadPending(cmd, a, s, args[0], s.SelectedConcepts())
		},
	}

	cmd.AddCommand(launch, list, upload)
	return cmd
}

// uploadPending sends concept images to the campaign's ad sets and records
// the resulting ad ids.
func uploadPending(cmd *cobra.Command, a *app, s *state.Session, campaignID string, concepts []domain.Concept) error {
	c, ok := s.FindCampaign(campaignID)
	if !ok {
		return state.ErrCampaignNotFound
	}
	report, err := a.api().UploadPending(cmd.Context(), c, concepts)
	if err != nil {
		return err
	}
	if len(report.AdIDs) > 0 {
		if err = s.AppendAdIDs(cmd.Context(), c.ID, report.AdIDs); err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Message(c.ID))
	for _, e := range report.Errors {
		fmt.Fprintf(out, "  %s\n", e)
	}
	return nil
}

// campaignTarget resolves the campaign and platform for stats and rules.
// The session's record of the campaign decides the platform unless the flag
// was given.
func campaignTarget(s *state.Session, campaignID, platform string) (string, domain.Platform, error) {
	campaigns := s.State().Campaigns
	if campaignID == "" {
		if len(campaigns) == 0 {
			return "", "", domain.NewValidationError("no campaign given and none launched")
		}
		campaignID = campaigns[len(campaigns)-1].ID
	}
	if platform != "" {
		return campaignID, domain.ParsePlatform(platform), nil
	}
	if c, ok := s.FindCampaign(campaignID); ok {
		return campaignID, c.Platform, nil
	}
	return campaignID, domain.DefaultPlatform, nil
}

func statsCMD(a *app) *cobra.Command {
	var campaignID, platform string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-ad metrics and the campaign summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			id, p, err := campaignTarget(s, campaignID, platform)
			if err != nil {
				return err
			}
			stats, err := a.api().Stats(cmd.Context(), p, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
	cmd.Flags().StringVar(&campaignID, "campaign", "", "campaign id (defaults to the last launched)")
	cmd.Flags().StringVar(&platform, "platform", "", "platform override")
	return cmd
}

// ruleFile is the YAML document accepted by "rules apply".
type ruleFile struct {
	Platform   string        `yaml:"platform"`
	CampaignID string        `yaml:"campaignId"`
	Rules      []domain.Rule `yaml:"rules"`
}

func parseRuleFile(r io.Reader) (ruleFile, error) {
	var f ruleFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return f, fmt.Errorf("decode rules: %w", err)
	}
	if err := domain.ValidateRules(f.Rules); err != nil {
		return f, err
	}
	return f, nil
}

func rulesCMD(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "rules", Short: "Evaluate optimisation rules and LLM suggestions"}

	var file, campaignID, platform string
	apply := &cobra.Command{
		Use:   "apply",
		Short: "Evaluate a rules file against the campaign's ads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fh, err := os.Open(file)
			if err != nil {
				return err
			}
			defer fh.Close()
			rf, err := parseRuleFile(fh)
			if err != nil {
				return err
			}
			if campaignID == "" {
				campaignID = rf.CampaignID
			}
			if platform == "" {
				platform = rf.Platform
			}

			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			id, p, err := campaignTarget(s, campaignID, platform)
			if err != nil {
				return err
			}
			report, err := a.api().EvaluateRules(cmd.Context(), p, id, rf.Rules)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if report.Message != "" {
				fmt.Fprintln(out, report.Message)
			}
			for _, r := range report.Applied {
				line := fmt.Sprintf("%s %-8s %s=%g", r.AdName, r.Action, r.Metric, r.Value)
				if r.Error != "" {
					line += "  " + r.Error
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "%d of %d ads matched (run %s)\n", len(report.Applied), report.Total, report.RunID)
			return nil
		},
	}
	apply.Flags().StringVarP(&file, "file", "f", "rules.yaml", "YAML rules file")
	apply.Flags().StringVar(&campaignID, "campaign", "", "campaign id override")
	apply.Flags().StringVar(&platform, "platform", "", "platform override")

	var commit bool
	optimize := &cobra.Command{
		Use:   "optimize",
		Short: "Ask the LLM for an optimisation plan and optionally apply it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			id, p, err := campaignTarget(s, campaignID, platform)
			if err != nil {
				return err
			}
			api := a.api()
			stats, err := api.Stats(cmd.Context(), p, id)
			if err != nil {
				return err
			}
			plan, err := api.Analyze(cmd.Context(), stats, s.State().Briefing)
			if err != nil {
				return err
			}
			s.SetPendingOptimizations(&plan)
			if err = printJSON(cmd, plan); err != nil || !commit {
				return err
			}

			report, err := api.Apply(cmd.Context(), p, plan)
			if err != nil {
				return err
			}
			s.SetPendingOptimizations(nil)
			return printJSON(cmd, report)
		},
	}
	optimize.Flags().StringVar(&campaignID, "campaign", "", "campaign id (defaults to the last launched)")
	optimize.Flags().StringVar(&platform, "platform", "", "platform override")
	optimize.Flags().BoolVar(&commit, "apply", false, "apply the plan after printing it")

	cmd.AddCommand(apply, optimize)
	return cmd
}
