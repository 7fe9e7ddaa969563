package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"StockScout/internal/collector"
	"StockScout/internal/logger"
	"StockScout/internal/model"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/report"
	"StockScout/internal/strategy"
	"StockScout/internal/universe"
)

// Scheduler runs the daily scan on a cron schedule.
type Scheduler struct {
	Cron        *cron.Cron
	Collector   *collector.Collector
	Writer      *report.Writer
	Notifier    *notifier.EmailNotifier
	Recorder    recorder.Recorder
	TickersFile string
	TopN        int
	Ctx         context.Context
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, w *report.Writer, n *notifier.EmailNotifier, rec recorder.Recorder, tickersFile string, topN int) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Collector:   col,
		Writer:      w,
		Notifier:    n,
		Recorder:    rec,
		TickersFile: tickersFile,
		TopN:        topN,
		Ctx:         ctx,
	}
}

// Register registers the daily scan task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.scanTask); err != nil {
		return fmt.Errorf("register daily scan: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.L().Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	logger.L().Info().Msg("scheduler stopped")
}

// RunNow executes the scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.scanTask()
}

// scanTask is one full run: load tickers, fetch, compute and rank, export,
// notify, record. Export and notification failures are logged and isolated
// from each other; only a failed fetch aborts the run.
func (s *Scheduler) scanTask() {
	started := time.Now()
	logger.L().Info().Msg("running daily scan")

	tickers, err := universe.Load(s.TickersFile)
	if err != nil {
		logger.L().Error().Err(err).Str("file", s.TickersFile).Msg("load tickers failed")
		return
	}
	logger.L().Info().Int("tickers", len(tickers)).Msg("tickers loaded")

	run := recorder.RunRecord{StartedAt: started, TickersRequested: len(tickers)}

	ds, err := s.Collector.Collect(s.Ctx, tickers)
	if err != nil {
		logger.L().Error().Err(err).Msg("collect failed, run aborted")
		run.Note = fmt.Sprintf("fetch failed: %v", err)
		s.record(&run)
		return
	}

	table := strategy.Scan(ds, tickers)
	run.RecordsProduced = len(table)
	logger.L().Info().Int("records", len(table)).Msg("scan computed")

	csvPath, htmlPath, err := s.Writer.Export(table, started)
	if err != nil {
		logger.L().Error().Err(err).Msg("report export failed")
		run.Note = fmt.Sprintf("export failed: %v", err)
	} else {
		run.CSVPath, run.HTMLPath = csvPath, htmlPath
		logger.L().Info().Str("csv", csvPath).Str("html", htmlPath).Msg("reports exported")
	}

	subject := fmt.Sprintf("Daily stock scan (%s)", started.Format("2006-01-02 15:04"))
	body, err := s.emailBody(table)
	if err != nil {
		logger.L().Error().Err(err).Msg("render email body failed")
	} else {
		var attachments []string
		if run.CSVPath != "" {
			attachments = append(attachments, run.CSVPath, run.HTMLPath)
		}
		if err := s.Notifier.SendWithRetry(s.Ctx, subject, body, attachments, 3); err != nil {
			logger.L().Error().Err(err).Msg("send notification failed")
		} else if s.Notifier.Enabled() {
			run.EmailSent = true
		}
	}

	s.record(&run)
}

func (s *Scheduler) emailBody(table model.RankedTable) (string, error) {
	top, err := report.TopHTML(table, s.TopN)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"<p>Automated daily stock scan.</p><p>Top %d:</p>%s<p>Full results attached (CSV/HTML).</p>",
		s.TopN, top), nil
}

func (s *Scheduler) record(run *recorder.RunRecord) {
	if err := s.Recorder.RecordRun(run); err != nil {
		logger.L().Error().Err(err).Msg("record run failed")
	}
}
