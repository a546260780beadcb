package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/export"
	"github.com/impacta-labs/fieldpoint/internal/ocr"
	"github.com/impacta-labs/fieldpoint/internal/pipeline"
	"github.com/impacta-labs/fieldpoint/internal/server"
	"github.com/impacta-labs/fieldpoint/internal/vision"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// External service clients; unset endpoints leave the tier unconfigured
	// and the fallback chain degrades gracefully.
	orch := pipeline.NewOrchestrator(nil, nil, nil, slogger)
	if cfg.Vision.Endpoint != "" {
		orch.Vision = vision.NewClient(vision.Config{
			Endpoint: cfg.Vision.Endpoint,
			APIKey:   cfg.Vision.APIKey,
			Timeout:  cfg.Vision.Timeout,
		}, slogger)
	}
	if cfg.OCR.Endpoint != "" {
		orch.OCR = ocr.NewClient(ocr.Config{
			Endpoint: cfg.OCR.Endpoint,
			APIKey:   cfg.OCR.APIKey,
			Timeout:  cfg.OCR.Timeout,
		}, slogger)
	}
	if cfg.OCR.FieldSvcEndpoint != "" {
		orch.FieldSvc = ocr.NewFieldServiceClient(cfg.OCR.FieldSvcEndpoint, cfg.OCR.Timeout, slogger)
	}

	svc := pipeline.NewService(orch, slogger)
	exp := export.NewService(slogger)
	srv := server.New(svc, exp, logger, cfg.Server)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}

	go func() {
		log.Infow("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
