package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankedTable_Top(t *testing.T) {
	table := RankedTable{{Ticker: "A"}, {Ticker: "B"}, {Ticker: "C"}}

	assert.Len(t, table.Top(2), 2)
	assert.Len(t, table.Top(10), 3)
	assert.Len(t, table.Top(0), 0)
	assert.Len(t, table.Top(-1), 0)
	assert.Equal(t, "A", table.Top(1)[0].Ticker)
}

func TestDataset_ColumnsBothShapes(t *testing.T) {
	cols := &FieldColumns{}

	single := &Dataset{Single: cols}
	got, ok := single.Columns("ANY")
	assert.True(t, ok)
	assert.Same(t, cols, got)

	multi := &Dataset{Tickers: map[string]*FieldColumns{"AAA": cols}}
	_, ok = multi.Columns("AAA")
	assert.True(t, ok)
	_, ok = multi.Columns("BBB")
	assert.False(t, ok)

	var nilDS *Dataset
	_, ok = nilDS.Columns("AAA")
	assert.False(t, ok)
}

func TestStat_ZeroValueIsUndefined(t *testing.T) {
	assert.False(t, Stat{}.Valid)
	assert.True(t, DefinedStat(0).Valid)
}
