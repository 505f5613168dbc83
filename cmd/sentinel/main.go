package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/collector"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/config"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/notifier"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/portfolio"
	"github.com/Dlanzas-cyber/PortfolioSentinel/internal/scheduler"
)

func main() {
	godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("PortfolioSentinel starting")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	fetcher := collector.NewFMPFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	col := collector.NewCollector(fetcher)
	col.HistoryDays = cfg.DataSource.HistoryDays

	store, err := portfolio.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open portfolio store")
	}
	defer store.Close()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	mon := &notifier.Monitor{Sender: tn, Threshold: cfg.Alerts.ScoreChangeThreshold}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, store, tn, mon)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron, cfg.Schedule.WeeklyCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info().Msg("telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing rescan now")
		go sched.RunRescanNow()
	}

	log.Info().Msg("PortfolioSentinel is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("PortfolioSentinel stopped")
}
