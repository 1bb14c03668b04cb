package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"tender_bot/internal/config"
	"tender_bot/internal/domain/service/history"
	"tender_bot/internal/infrastructure/procurement"
	"tender_bot/internal/infrastructure/render"
	"tender_bot/internal/transport/bot"
	"tender_bot/pkg/ops"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("application failed", "error", err)
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Клиенты внешних API
	damia := procurement.NewClient(cfg.Damia)
	guru := procurement.NewGuruClient(cfg.TenderGuru)

	// 3. Доменный сервис анализа истории
	analyzer := history.NewService(damia, render.NewRenderer()).
		WithLookback(cfg.History.Lookback).
		WithPriceWindow(cfg.History.PriceWindow).
		WithLimits(cfg.History.MaxQueries, cfg.History.SearchLimit, cfg.History.MaxConcurrent).
		WithCacheTTL(cfg.History.CacheTTL)

	// 4. Telegram-бот
	tgBot, err := bot.New(cfg, analyzer, damia, guru)
	if err != nil {
		return fmt.Errorf("bot create: %w", err)
	}

	opsServer := ops.NewServer(cfg.Ops.ListenAddress, ops.Options{
		Name:    cfg.Ops.AppName,
		Version: cfg.Ops.AppVersion,
	})

	log.Info("application started", "app", cfg.Ops.AppName, "version", cfg.Ops.AppVersion)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return opsServer.Run(gCtx)
	})

	g.Go(func() error {
		return tgBot.Run(gCtx)
	})

	return g.Wait()
}
