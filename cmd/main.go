package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/bootstrap"
)

func main() {
	ctx := context.Background()

	router, cfg, err := bootstrap.Initialize(ctx)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
		// The full pipeline can run up to ~90s (30s resolve + 60s trim),
		// so the write timeout leaves headroom on top of that.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	slog.Info("Starting HTTP server", "port", cfg.HTTPPort)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("HTTP server stopped", "error", err)
		os.Exit(1)
	}
}
