package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pribylovaa/go-tv-guide/internal/config"
	"github.com/pribylovaa/go-tv-guide/internal/kinopoisk"
	"github.com/pribylovaa/go-tv-guide/internal/render"
	"github.com/pribylovaa/go-tv-guide/internal/schedule"
	"github.com/pribylovaa/go-tv-guide/internal/service"
	"github.com/pribylovaa/go-tv-guide/internal/telegram"
	"github.com/pribylovaa/go-tv-guide/pkg/log"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)
	lg.Info("starting tv-guide", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	renderer, err := render.New(cfg.Output.Template)
	if err != nil {
		lg.Error("renderer_init_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: cfg.Timeouts.HTTP}
	parser := schedule.New(httpClient, cfg.Fetcher.MinHour)
	lookup := kinopoisk.New(httpClient, cfg.Kinopoisk.APIKey, cfg.Kinopoisk.BaseURL)
	svc := service.New(*cfg)

	ctx := log.Into(rootCtx, lg)
	results := svc.Collect(ctx, parser, lookup)
	shows := service.Flatten(results)

	// Сбой рендеринга или записи фатален: лучше не трогать старый артефакт,
	// чем оставить частичный.
	html, err := renderer.Render(shows, render.Timestamp(time.Now()))
	if err != nil {
		lg.Error("render_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}

	if err := render.WriteFile(cfg.Output.Path, html); err != nil {
		lg.Error("write_failed",
			slog.String("path", cfg.Output.Path),
			slog.String("err", err.Error()),
		)
		rootCancel()
		os.Exit(1)
	}

	lg.Info("guide_written",
		slog.String("path", cfg.Output.Path),
		slog.Int("shows", len(shows)),
	)

	if cfg.Telegram.Token != "" {
		notifier := telegram.New(httpClient, cfg.Telegram.Token, cfg.Telegram.ChatID, "")
		if err := notifier.Send(ctx, telegram.Digest(results)); err != nil {
			lg.Warn("telegram_send_failed", slog.String("err", err.Error()))
		} else {
			lg.Info("telegram_sent")
		}
	}

	rootCancel()
	lg.Info("tv-guide_finished")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var lg *slog.Logger

	switch env {
	case envLocal:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return lg
}
