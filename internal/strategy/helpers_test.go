package strategy

import (
	"time"

	"StockScout/internal/model"
)

var day0 = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

// makeColumns builds raw field columns with one bar per calendar day.
func makeColumns(closes, volumes []float64) *model.FieldColumns {
	cols := &model.FieldColumns{
		Dates:  make([]time.Time, len(closes)),
		Close:  closes,
		Volume: volumes,
	}
	for i := range closes {
		cols.Dates[i] = day0.AddDate(0, 0, i)
	}
	return cols
}

// makeSeries builds a cleaned TickerSeries with one bar per calendar day.
func makeSeries(symbol string, closes, volumes []float64) model.TickerSeries {
	bars := make([]model.PriceBar, len(closes))
	for i := range closes {
		bars[i] = model.PriceBar{
			Date:   day0.AddDate(0, 0, i),
			Close:  closes[i],
			Volume: volumes[i],
		}
	}
	return model.TickerSeries{Symbol: symbol, Bars: bars}
}

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// ramp returns start, start+step, start+2*step, ...
func ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// crossingCloses is a 60-bar series whose 5-bar average sits below the
// 20-bar average on the second-to-last bar and jumps to at-or-above it on
// the last one: a slow decline followed by a single sharp rally.
func crossingCloses() []float64 {
	closes := ramp(100, -0.1, 60)
	closes[59] = 150
	return closes
}
