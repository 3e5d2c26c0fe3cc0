package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/limbo/lifeboard/internal/app"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/cleanup"
	"github.com/limbo/lifeboard/pkg/config"
	"github.com/limbo/lifeboard/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	err := logger.Init(logger.Config{
		Level:  cfg.GetStringOr("LOG_LEVEL", "info"),
		Format: cfg.GetStringOr("LOG_FORMAT", "text"),
		File:   cfg.GetString("LOG_FILE"),
	})
	if err != nil {
		log.Fatal("logger init error: ", err)
	}
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := app.OptionsFromConfig(cfg)
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return
	}
	a, err := app.New(ctx, opts)
	if err != nil {
		slog.Error("app init error", slog.String("error", err.Error()))
		return
	}
	if err = a.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
