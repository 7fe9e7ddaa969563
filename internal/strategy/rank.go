package strategy

import (
	"sort"

	"StockScout/internal/model"
)

// Rank sorts records into the final table. Keys, in priority order and all
// descending: golden cross, volume spike, deviation above the 60-bar
// average, day change. An undefined percentage orders below every defined
// value in its tier. The sort is stable, so ties keep input order.
func Rank(records []model.SignalRecord) model.RankedTable {
	out := make(model.RankedTable, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.GoldenCross != b.GoldenCross {
			return a.GoldenCross
		}
		if a.VolSpike != b.VolSpike {
			return a.VolSpike
		}
		if c := compareStat(a.AboveMA60Pct, b.AboveMA60Pct); c != 0 {
			return c > 0
		}
		if c := compareStat(a.DayChangePct, b.DayChangePct); c != 0 {
			return c > 0
		}
		return false
	})
	return out
}

// compareStat orders two possibly-undefined stats: defined beats undefined,
// then by value.
func compareStat(a, b model.Stat) int {
	switch {
	case a.Valid && !b.Valid:
		return 1
	case !a.Valid && b.Valid:
		return -1
	case !a.Valid && !b.Valid:
		return 0
	case a.Value > b.Value:
		return 1
	case a.Value < b.Value:
		return -1
	default:
		return 0
	}
}
