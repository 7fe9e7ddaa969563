package strategy

import (
	"math"
	"sort"

	"StockScout/internal/model"
)

// MinBars is the minimum cleaned history a ticker needs to be scanned.
// Shorter series are dropped outright, never surfaced as partial rows.
const MinBars = 50

// PrepareSeries normalizes a fetched dataset into one cleaned TickerSeries
// per ticker. For every requested symbol present in the dataset it drops
// bars with a missing close or volume, then discards the ticker entirely if
// fewer than MinBars remain. Symbols absent from the dataset are skipped.
func PrepareSeries(ds *model.Dataset, universe []string) map[string]model.TickerSeries {
	out := make(map[string]model.TickerSeries)
	for _, sym := range uniqueSorted(universe) {
		cols, ok := ds.Columns(sym)
		if !ok {
			continue
		}
		bars := cleanBars(cols)
		if len(bars) < MinBars {
			continue
		}
		out[sym] = model.TickerSeries{Symbol: sym, Bars: bars}
	}
	return out
}

// SortedSymbols returns the map keys in ascending order. Downstream stages
// iterate in this order so a run is reproducible for identical input.
func SortedSymbols(series map[string]model.TickerSeries) []string {
	syms := make([]string, 0, len(series))
	for s := range series {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

func cleanBars(cols *model.FieldColumns) []model.PriceBar {
	bars := make([]model.PriceBar, 0, len(cols.Dates))
	for i, d := range cols.Dates {
		c, v := cols.Close[i], cols.Volume[i]
		if math.IsNaN(c) || math.IsNaN(v) {
			continue
		}
		bars = append(bars, model.PriceBar{Date: d, Close: c, Volume: v})
	}
	return bars
}

func uniqueSorted(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
