package model

import "time"

// PriceBar represents a single trading day for one ticker.
type PriceBar struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// TickerSeries holds the cleaned daily bars for one ticker, ordered by
// ascending date. It is derived fresh each run and never persisted.
type TickerSeries struct {
	Symbol string
	Bars   []PriceBar
}

// Closes returns the close-price column of the series.
func (s TickerSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Volumes returns the volume column of the series.
func (s TickerSeries) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}
