package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"StockScout/internal/logger"
)

// SQLiteRecorder persists the run log to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc reads don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.L().Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at        INTEGER NOT NULL,
			tickers_requested INTEGER,
			records_produced  INTEGER,
			csv_path          TEXT,
			html_path         TEXT,
			email_sent        INTEGER,
			note              TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// RecordRun inserts one run-log row.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emailSent := 0
	if rec.EmailSent {
		emailSent = 1
	}
	_, err := r.db.Exec(
		`INSERT INTO scan_runs (started_at, tickers_requested, records_produced, csv_path, html_path, email_sent, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Unix(), rec.TickersRequested, rec.RecordsProduced,
		rec.CSVPath, rec.HTMLPath, emailSent, rec.Note,
	)
	if err != nil {
		return fmt.Errorf("insert scan run: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
