package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bkristol/outliner/internal/api"
	"github.com/bkristol/outliner/internal/artifact"
	"github.com/bkristol/outliner/internal/config"
	"github.com/bkristol/outliner/internal/embed"
	"github.com/bkristol/outliner/internal/outline"
	"github.com/bkristol/outliner/internal/pipeline"
	"github.com/bkristol/outliner/internal/rank"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Select the encoder once at startup. No API key means heuristics-only
	// mode, which is a supported configuration, not an error.
	stats := embed.NewStats(time.Hour)
	var enc embed.Encoder = embed.Disabled{}
	if cfg.OpenAIAPIKey != "" {
		enc = embed.NewOpenAIEncoder(embed.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, stats)
		log.Info("embeddings enabled", "model", cfg.OpenAIModel)
	} else {
		log.Info("no OPENAI_API_KEY set, running heuristics-only")
	}

	writer, err := artifact.NewWriter(cfg.OutputDir)
	if err != nil {
		log.Error("output dir", "error", err)
		os.Exit(1)
	}

	var index *artifact.IndexClient
	if cfg.IndexURL != "" {
		index = artifact.NewIndexClient(cfg.IndexURL, cfg.IndexAPIKey)
	}

	// Initialize pipeline.
	pipe := outline.NewPipeline(enc, log)
	orch := pipeline.NewOrchestrator(cfg, pipe, writer, index, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	ranker := rank.NewRanker(enc, nil, log)
	srv := api.NewServer(orch, ranker, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if index != nil {
			index.Close()
		}
	}()

	log.Info("starting outliner", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
