package bootstrap

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/clip"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/config"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/extractor"
	httpserver "github.com/daniellupu10/Youtube-Clip-Genie/internal/http"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/logger"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/resolver"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/storage"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/telegram"
)

// Initialize настраивает все зависимости и возвращает готовый HTTP роутер
func Initialize(ctx context.Context) (http.Handler, *config.Config, error) {
	// Загрузка конфигурации
	cfg := config.Load()

	// Инициализация Telegram клиента
	tgClient := telegram.NewClient(cfg)

	// Инициализация логгера
	log := logger.New(tgClient)
	slog.SetDefault(log)

	// Инициализация S3 клиента
	storageClient, err := storage.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Инициализация pipeline
	ytdlp := resolver.NewYtDlp(cfg.YtDlpPath, cfg.ResolveTimeout)
	ffmpeg := extractor.NewFFmpeg(cfg.FFmpegPath, cfg.ExtractTimeout)
	clipService := clip.NewService(ytdlp, ffmpeg, storageClient, cfg.ClipKeyPrefix, cfg.TmpDir)

	// Инициализация HTTP сервера
	server := httpserver.NewServer(clipService)
	router := httpserver.SetupRouter(server)

	slog.Info("Application initialized successfully",
		"bucket", cfg.ClipBucket,
		"yt_dlp", cfg.YtDlpPath,
		"ffmpeg", cfg.FFmpegPath,
	)
	return router, cfg, nil
}
