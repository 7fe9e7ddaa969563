package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockScout/internal/collector"
	"StockScout/internal/config"
	"StockScout/internal/logger"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/report"
	"StockScout/internal/scheduler"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()
	logger.Init()
	log := logger.L()
	log.Info().Msg("StockScout starting")

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

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	col := collector.NewCollector(fetcher, cfg.Scan.LookbackDays)
	writer := report.NewWriter(cfg.Scan.OutputDir)

	mail := notifier.NewEmailNotifier(cfg.NotifierConfig())
	if !mail.Enabled() {
		log.Warn().Msg("email notification disabled (SMTP_USER, SMTP_PASS or SMTP_TO unset)")
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, writer, mail, rec, cfg.Scan.TickersFile, cfg.Scan.TopN)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing scan now")
		go sched.RunNow()
	}

	log.Info().Msg("StockScout is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("StockScout stopped")
}
