package strategy

import (
	"StockScout/internal/logger"
	"StockScout/internal/model"
)

// Scan runs the full signal pipeline over a fetched dataset: prepare one
// cleaned series per requested ticker, compute one record per series in
// ascending symbol order, rank the lot. A ticker that fails validation is
// logged and skipped; it never aborts the run. An empty result is a valid,
// empty table.
func Scan(ds *model.Dataset, universe []string) model.RankedTable {
	series := PrepareSeries(ds, universe)

	records := make([]model.SignalRecord, 0, len(series))
	for _, sym := range SortedSymbols(series) {
		rec, err := Compute(series[sym])
		if err != nil {
			logger.L().Warn().Err(err).Str("ticker", sym).Msg("invalid series, ticker skipped")
			continue
		}
		records = append(records, rec)
	}

	return Rank(records)
}
