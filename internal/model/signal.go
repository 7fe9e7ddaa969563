package model

import "time"

// Stat is a statistic that may be undefined, e.g. a moving average at a
// position with too little history. An undefined Stat is never conflated
// with a defined zero.
type Stat struct {
	Value float64
	Valid bool
}

// DefinedStat returns a defined Stat carrying v.
func DefinedStat(v float64) Stat { return Stat{Value: v, Valid: true} }

// SignalRecord is one output row of a scan: the derived signals for a
// single ticker on its most recent bar.
type SignalRecord struct {
	Ticker       string
	Date         time.Time
	Price        float64
	DayChangePct Stat
	GoldenCross  bool
	VolSpike     bool
	AboveMA60Pct Stat
}

// RankedTable is the fully sorted scan result, one record per qualifying
// ticker. It is built once per run and not mutated afterwards.
type RankedTable []SignalRecord

// Top returns the first n records (fewer if the table is shorter).
func (t RankedTable) Top(n int) RankedTable {
	if n < 0 {
		n = 0
	}
	if n > len(t) {
		n = len(t)
	}
	return t[:n]
}
