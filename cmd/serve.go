package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/realnamesareboring/certifai/internal/analysis"
	"github.com/realnamesareboring/certifai/internal/api"
	"github.com/realnamesareboring/certifai/internal/chat"
	"github.com/realnamesareboring/certifai/internal/config"
	"github.com/realnamesareboring/certifai/internal/gate"
	"github.com/realnamesareboring/certifai/internal/llm"
	"github.com/realnamesareboring/certifai/internal/quizgen"
	"github.com/realnamesareboring/certifai/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.Info("starting certifai",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"llm_provider", cfg.LLM.Provider,
	)

	var events store.EventRepo
	var st *store.Store
	if path := resolveDBPath(cmd, cfg.Store.Path); path != "" {
		if err := store.EnsureDir(path); err != nil {
			return fmt.Errorf("prepare database directory: %w", err)
		}
		st, err = store.Open(path)
		if err != nil {
			return fmt.Errorf("open event store: %w", err)
		}
		defer st.Close()
		events = st.EventRepo()
		slog.Info("event store opened", "path", path)
	} else {
		slog.Warn("event store disabled, audit events will not be recorded")
	}

	ctx := context.Background()

	// Chat and analysis keep transport retries; quiz generation gets a
	// single attempt because its fallback bank makes retrying pointless
	// latency.
	chatProvider := buildProvider(ctx, cfg.LLM, events)

	quizCfg := cfg.LLM
	quizCfg.Retry.MaxAttempts = 1
	quizProvider := buildProvider(ctx, quizCfg, events)

	tracker := gate.NewTracker()
	server := api.NewServer(
		cfg.Server,
		cfg.CORS,
		quizgen.New(quizProvider, quizgen.DefaultConfig()),
		chat.NewService(chatProvider, tracker, chat.DefaultConfig()),
		analysis.NewService(chatProvider, analysis.DefaultConfig()),
		events,
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server: %w", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	slog.Info("certifai stopped")
	return nil
}

// buildProvider creates the LLM provider, degrading to nil when no
// credential is configured. Every service tolerates a nil provider by
// serving its fallback path.
func buildProvider(ctx context.Context, cfg llm.Config, events store.EventRepo) llm.Provider {
	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			slog.Warn("no LLM credential configured, generation falls back to canned content")
		} else {
			slog.Error("LLM provider init failed, running in fallback mode", "error", err)
		}
		return nil
	}
	return provider
}
