package recorder

import "time"

// RunRecord summarizes one completed scan run. Only run metadata is stored;
// the computed signal values themselves are not persisted.
type RunRecord struct {
	StartedAt        time.Time
	TickersRequested int
	RecordsProduced  int
	CSVPath          string
	HTMLPath         string
	EmailSent        bool
	Note             string
}

// Recorder persists a history of scan runs for operational bookkeeping.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
