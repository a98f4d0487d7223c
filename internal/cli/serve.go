package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "andromeda-ads/internal/adapter/http"
	"andromeda-ads/internal/adapter/llm"
	"andromeda-ads/internal/adapter/platform"
	"andromeda-ads/internal/adapter/shopify"
	"andromeda-ads/internal/adapter/usecase"
	"andromeda-ads/internal/config"
	"andromeda-ads/internal/metrics"
)

func serveCMD(a *app) *cobra.Command {
	var port uint16
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.HTTP.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, a.cfg, a.logger)
		},
	}
	cmd.Flags().Uint16Var(&port, "port", 8080, "listen port (overrides HTTP_PORT)")
	return cmd
}

// newServices wires the outbound adapters into the use cases.
func newServices(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) httpadapter.Services {
	ai := llm.NewFactory(cfg.AI, m, logger)
	platforms := platform.NewFactory(platform.Config{
		Meta:   cfg.Meta,
		Google: cfg.Google,
		TikTok: cfg.TikTok,
		MaxAds: cfg.Optimizer.MaxAds,
	}, m, logger)
	stores := shopify.NewFactory(cfg.Shopify, m, logger)

	return httpadapter.Services{
		Copy:      usecase.NewCopyUseCase(ai, logger),
		Catalog:   usecase.NewCatalogUseCase(stores, ai, logger),
		Campaigns: usecase.NewCampaignUseCase(platforms, logger),
		Optimizer: usecase.NewOptimizerUseCase(platforms, ai, cfg.Optimizer, m, logger),
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	m := metrics.New()
	handler := httpadapter.NewHandler(newServices(cfg, m, logger), cfg.HTTP.RequestTimeout, m, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
