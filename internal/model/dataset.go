package model

import "time"

// FieldColumns is the raw per-field view of one ticker as fetched: parallel
// slices indexed by date. Missing values are NaN; rows are not yet cleaned.
type FieldColumns struct {
	Dates  []time.Time
	Close  []float64
	Volume []float64
}

// Dataset is the raw result of a fetch. Exactly one of Single or Tickers is
// set: a one-symbol request comes back in the flat single shape, a
// multi-symbol request comes back keyed by symbol. The shape difference is
// resolved by Columns so downstream code never branches on it.
type Dataset struct {
	Single  *FieldColumns
	Tickers map[string]*FieldColumns
}

// IsMulti reports whether the dataset uses the multi-ticker shape.
func (d *Dataset) IsMulti() bool { return d.Tickers != nil }

// Columns returns the field columns for the given symbol, handling both
// shapes. In the single shape the one column set is returned for whichever
// symbol was requested.
func (d *Dataset) Columns(symbol string) (*FieldColumns, bool) {
	if d == nil {
		return nil, false
	}
	if d.Single != nil {
		return d.Single, true
	}
	cols, ok := d.Tickers[symbol]
	return cols, ok
}
