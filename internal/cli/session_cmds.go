package cli

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	httpadapter "andromeda-ads/internal/adapter/http"
	"andromeda-ads/internal/core/domain"
	"andromeda-ads/internal/state"
)

func briefingCMD(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "briefing", Short: "Show or set the campaign briefing"}

	var b domain.Briefing
	bind := func(c *cobra.Command) {
		c.Flags().StringVar(&b.Product, "product", "", "product or brand description")
		c.Flags().StringVar(&b.Audience, "audience", "", "target audience")
		c.Flags().StringVar(&b.PainPoint, "pain-point", "", "main pain point")
		c.Flags().StringVar(&b.Differentiator, "differentiator", "", "what sets the product apart")
		c.Flags().StringVar(&b.Tone, "tone", "", "tone of voice")
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Replace the briefing; existing concepts are discarded",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := b.Validate(); err != nil {
				return err
			}
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			if err = s.SetBriefing(cmd.Context(), b); err != nil {
				return err
			}
			return printJSON(cmd, b)
		},
	}
	bind(set)

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Change fields of a briefing that has no concepts yet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			err = s.EditBriefing(cmd.Context(), func(cur *domain.Briefing) {
				overwrite(&cur.Product, b.Product)
				overwrite(&cur.Audience, b.Audience)
				overwrite(&cur.PainPoint, b.PainPoint)
				overwrite(&cur.Differentiator, b.Differentiator)
				overwrite(&cur.Tone, b.Tone)
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, s.State().Briefing)
		},
	}
	bind(edit)

	fromProduct := &cobra.Command{
		Use:   "from-product <product-id>",
		Short: "Derive the briefing from a Shopify product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := a.api()
			p, err := api.Product(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			derived, err := api.Briefing(cmd.Context(), p)
			if err != nil {
				return err
			}
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			s.SetSelectedProduct(&p)
			if err = s.SetBriefing(cmd.Context(), derived); err != nil {
				return err
			}
			return printJSON(cmd, derived)
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current briefing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			if s.State().Briefing == nil {
				return state.ErrNoBriefing
			}
			return printJSON(cmd, s.State().Briefing)
		},
	}

	cmd.AddCommand(set, edit, fromProduct, show)
	return cmd
}

// overwrite sets *dst to v unless v is empty.
func overwrite(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func conceptsCMD(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "concepts", Short: "Generate, list and select ad concepts"}

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate ten concepts from the briefing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			b := s.State().Briefing
			if b == nil {
				return state.ErrNoBriefing
			}
			cs, err := a.api().Concepts(cmd.Context(), *b)
			if err != nil {
				return err
			}
			if err = s.SetConcepts(cmd.Context(), cs); err != nil {
				return err
			}
			return listConcepts(cmd.OutOrStdout(), s.State().Concepts)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the concepts with their selection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			return listConcepts(cmd.OutOrStdout(), s.State().Concepts)
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <index>...",
		Short: "Flip the selection of concepts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				i, err := strconv.Atoi(arg)
				if err != nil {
					return domain.NewValidationError("invalid concept index %q", arg)
				}
				if _, err = s.ToggleConcept(cmd.Context(), i); err != nil {
					return err
				}
			}
			return listConcepts(cmd.OutOrStdout(), s.State().Concepts)
		},
	}

	var none bool
	selectAll := &cobra.Command{
		Use:   "select-all",
		Short: "Select (or with --none deselect) every concept",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			if err = s.SelectAll(cmd.Context(), !none); err != nil {
				return err
			}
			return listConcepts(cmd.OutOrStdout(), s.State().Concepts)
		},
	}
	selectAll.Flags().BoolVar(&none, "none", false, "deselect instead")

	cmd.AddCommand(generate, list, toggle, selectAll, imageCMD(a))
	return cmd
}

func imageCMD(a *app) *cobra.Command {
	var mode, file, style string
	cmd := &cobra.Command{
		Use:   "image <index>",
		Short: "Attach a generated, edited or uploaded image to a concept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.NewValidationError("invalid concept index %q", args[0])
			}
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			st := s.State()
			if i < 0 || i >= len(st.Concepts) {
				return domain.NewValidationError("concept index %d out of range", i)
			}

			req := domain.CreativeRequest{Mode: mode, Concept: st.Concepts[i], Style: style, Product: st.SelectedProduct}
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				req.ImageBase64 = base64.StdEncoding.EncodeToString(raw)
				req.MimeType = http.DetectContentType(raw)
			}
			b64, err := a.api().Creative(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err = s.AttachImage(cmd.Context(), i, b64); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "image attached to concept %d (%d bytes base64)\n", i, len(b64))
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "mode", domain.CreativeGenerate, "generate, edit or manual")
	cmd.Flags().StringVar(&file, "file", "", "image file for edit and manual modes")
	cmd.Flags().StringVar(&style, "style", "", "visual style hint")
	return cmd
}

func listConcepts(w io.Writer, cs []domain.Concept) error {
	if len(cs) == 0 {
		_, err := fmt.Fprintln(w, "no concepts yet")
		return err
	}
	for i, c := range cs {
		mark := "○"
		if c.Selected {
			mark = "✓"
		}
		img := ""
		if c.ImageB64 != "" {
			img = " [image]"
		}
		if _, err := fmt.Fprintf(w, "[%d] %s %q (%s)%s\n", i, mark, c.Headline, c.Angle, img); err != nil {
			return err
		}
	}
	return nil
}

func chatCMD(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the assistant; its tool calls are applied to the session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			st := s.State()
			resp, err := a.api().Chat(cmd.Context(), httpadapter.ChatRequest{
				Messages: []domain.Message{domain.TextMessage(domain.RoleUser, strings.Join(args, " "))},
				Context: httpadapter.ChatContext{
					Briefing: st.Briefing,
					Concepts: st.Concepts,
					Campaign: s.CampaignDraft(),
				},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resp.Text != "" {
				fmt.Fprintln(out, resp.Text)
			}
			for _, tu := range resp.ToolUses {
				result, err := s.ApplyToolUse(cmd.Context(), tu)
				if err != nil {
					a.logger.WarnContext(cmd.Context(), "tool call rejected", "tool", tu.Name, "error", err)
					fmt.Fprintf(out, "! %s: %v\n", tu.Name, err)
					continue
				}
				fmt.Fprintf(out, "✓ %s\n", result)
			}
			return nil
		},
	}
}

func viewCMD(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "view <briefing|concepts|campaign|dashboard|settings>",
		Short:     "Print one view of the session",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"briefing", "concepts", "campaign", "dashboard", "settings"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			if err = s.SwitchView(state.View(args[0])); err != nil {
				return err
			}
			st := s.State()
			switch st.View {
			case state.ViewBriefing:
				return printJSON(cmd, st.Briefing)
			case state.ViewConcepts:
				return listConcepts(cmd.OutOrStdout(), st.Concepts)
			case state.ViewCampaign:
				return printJSON(cmd, s.CampaignDraft())
			case state.ViewDashboard:
				return printJSON(cmd, st.Campaigns)
			default:
				return printJSON(cmd, map[string]any{
					"baseUrl":   a.cfg.Client.BaseURL,
					"statePath": a.cfg.State.Path,
				})
			}
		},
	}
}
