package calculator

import (
	"math"

	"StockScout/internal/model"
)

// RollingMean computes the trailing simple moving average of xs over the
// given window. Position i averages xs[i-window+1 .. i]; positions with
// fewer than window values behind them are undefined. Returns nil for a
// non-positive window.
func RollingMean(xs []float64, window int) []model.Stat {
	if window <= 0 {
		return nil
	}
	out := make([]model.Stat, len(xs))
	sum := 0.0
	for i, x := range xs {
		sum += x
		if i >= window {
			sum -= xs[i-window]
		}
		if i >= window-1 {
			out[i] = model.DefinedStat(sum / float64(window))
		}
	}
	return out
}

// Round rounds v to the given number of decimal places, halves away from
// zero. Every rounded field on a SignalRecord goes through this.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
