// Package cli implements the andromeda command: the API server and the
// client commands that drive a local session against it.
package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"andromeda-ads/internal/config"
	"andromeda-ads/internal/config/configs"
	"andromeda-ads/internal/state"
)

// app is what every subcommand receives once the root command ran its
// pre-run hook.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "andromeda",
		Short:         "Ad campaign assistant: concepts, launches and rule-based optimisation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.Log, cmd.ErrOrStderr()).With(slog.String("env", cfg.Env))
			return nil
		},
	}

	root.AddCommand(
		serveCMD(a),
		briefingCMD(a),
		conceptsCMD(a),
		chatCMD(a),
		campaignCMD(a),
		statsCMD(a),
		rulesCMD(a),
		viewCMD(a),
	)
	return root
}

// newLogger builds the structured logger from configuration.
func newLogger(cfg configs.Logger, w io.Writer) *slog.Logger {
	return slog.New(cfg.Handler(w))
}

func (a *app) session(cmd *cobra.Command) (*state.Session, error) {
	return state.Open(cmd.Context(), state.NewFileStore(a.cfg.State.Path), a.logger)
}

func (a *app) api() *apiClient {
	return newAPIClient(a.cfg.Client, a.logger)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("command failed", slog.Any("error", err))
		return 1
	}
	return 0
}
