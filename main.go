package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/terrabrand/Prompt101/internal/config"
	"github.com/terrabrand/Prompt101/internal/logger"
	"github.com/terrabrand/Prompt101/internal/market"
	"github.com/terrabrand/Prompt101/internal/server"
	"github.com/terrabrand/Prompt101/internal/ui"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr, baseURL, logLevel string

	cmd := &cobra.Command{
		Use:   "prompt101",
		Short: "Serve the Prompt 101 marketplace",
		Long: `Prompt 101 is a marketplace for text and image prompt templates.
This command serves the web app shell, app.wasm and static assets from ./web.
All marketplace state lives in the browser.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(addr, baseURL, logLevel)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(cfg.LogLevel)
			log := logger.Get()

			// Prerender gets a freshly seeded state per page.
			ui.Routes(func() *market.State {
				return market.NewState(market.Options{Logger: &log})
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, server.New(cfg, log))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env PROMPT101_ADDR, default :8080)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public base URL (env PROMPT101_BASE_URL)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env PROMPT101_LOG_LEVEL)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, h http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("base_url", cfg.BaseURL).Msg("prompt101 listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
