package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vmp-veiculos/contratos/internal/common"
	"github.com/vmp-veiculos/contratos/internal/extract/gemini"
	"github.com/vmp-veiculos/contratos/internal/metrics"
	"github.com/vmp-veiculos/contratos/internal/server"
	"github.com/vmp-veiculos/contratos/internal/workflow"
	"github.com/vmp-veiculos/contratos/pkg/logger"
)

func main() {
	cfg := common.LoadConfig()

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "model", cfg.Gemini.Model, "addr", cfg.Server.Addr)

	extractor := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		BaseURL:     cfg.Gemini.BaseURL,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	}, cfg.LocadorData(), slog.Default())

	ctrl := workflow.New(extractor, cfg.LocadorData(), slog.Default())
	m := metrics.New(prometheus.DefaultRegisterer)
	handler := server.NewHandler(ctrl, m, cfg.Server.MaxUploadSize)
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
