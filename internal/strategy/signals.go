package strategy

import (
	"fmt"

	"StockScout/internal/calculator"
	"StockScout/internal/model"
)

// Moving-average windows used by the scan.
const (
	fastWindow  = 5
	slowWindow  = 20
	trendWindow = 60
	volWindow   = 20
)

// volSpikeFactor is the multiple of the trailing average volume the latest
// bar must strictly exceed to count as a spike.
const volSpikeFactor = 1.5

// Compute derives the signal record for one cleaned ticker series.
//
// Golden cross means the 5-bar average sat below the 20-bar average on the
// prior bar and is at or above it on the latest one; if either average is
// undefined at the prior bar the flag is false. The volume spike requires a
// defined 20-bar average and a strictly greater latest volume. Percentage
// fields stay undefined when their inputs are (single-bar history, no
// 60-bar average yet).
func Compute(series model.TickerSeries) (model.SignalRecord, error) {
	if err := validate(series); err != nil {
		return model.SignalRecord{}, err
	}

	closes := series.Closes()
	vols := series.Volumes()
	ma5 := calculator.RollingMean(closes, fastWindow)
	ma20 := calculator.RollingMean(closes, slowWindow)
	ma60 := calculator.RollingMean(closes, trendWindow)
	vol20 := calculator.RollingMean(vols, volWindow)

	last := len(closes) - 1
	rec := model.SignalRecord{
		Ticker: series.Symbol,
		Date:   series.Bars[last].Date,
		Price:  calculator.Round(closes[last], 4),
	}

	if last >= 1 {
		chg := (closes[last]/closes[last-1] - 1) * 100
		rec.DayChangePct = model.DefinedStat(calculator.Round(chg, 2))
	}

	if last >= 1 && ma5[last-1].Valid && ma20[last-1].Valid {
		rec.GoldenCross = ma5[last-1].Value < ma20[last-1].Value &&
			ma5[last].Value >= ma20[last].Value
	}

	if vol20[last].Valid {
		rec.VolSpike = vols[last] > volSpikeFactor*vol20[last].Value
	}

	if ma60[last].Valid {
		dev := (closes[last]/ma60[last].Value - 1) * 100
		rec.AboveMA60Pct = model.DefinedStat(calculator.Round(dev, 2))
	}

	return rec, nil
}

// validate rejects malformed series before any statistic is computed:
// empty history, non-increasing dates, non-positive closes, negative
// volumes. A failure here is a per-ticker error, not a run failure.
func validate(series model.TickerSeries) error {
	if len(series.Bars) == 0 {
		return fmt.Errorf("%s: empty series", series.Symbol)
	}
	for i, b := range series.Bars {
		if b.Close <= 0 {
			return fmt.Errorf("%s: bar %d (%s): non-positive close %v",
				series.Symbol, i, b.Date.Format("2006-01-02"), b.Close)
		}
		if b.Volume < 0 {
			return fmt.Errorf("%s: bar %d (%s): negative volume %v",
				series.Symbol, i, b.Date.Format("2006-01-02"), b.Volume)
		}
		if i > 0 && !series.Bars[i-1].Date.Before(b.Date) {
			return fmt.Errorf("%s: bar %d (%s): date not after previous bar",
				series.Symbol, i, b.Date.Format("2006-01-02"))
		}
	}
	return nil
}
