package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_SingleSymbolUsesSingleShape(t *testing.T) {
	col := NewCollector(&MockFetcher{}, 60)
	ds, err := col.Collect(context.Background(), []string{"AAPL"})
	require.NoError(t, err)
	assert.False(t, ds.IsMulti())

	cols, ok := ds.Columns("AAPL")
	require.True(t, ok)
	assert.Len(t, cols.Dates, 60)
}

func TestCollect_MultiSymbolUsesMultiShape(t *testing.T) {
	col := NewCollector(&MockFetcher{}, 60)
	ds, err := col.Collect(context.Background(), []string{"AAPL", "MSFT"})
	require.NoError(t, err)
	assert.True(t, ds.IsMulti())

	_, ok := ds.Columns("MSFT")
	assert.True(t, ok)
	_, ok = ds.Columns("GONE")
	assert.False(t, ok)
}

func TestCollect_NoSymbols(t *testing.T) {
	col := NewCollector(&MockFetcher{}, 60)
	_, err := col.Collect(context.Background(), nil)
	assert.Error(t, err)
}

func TestCollect_FetchErrorWrapped(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: errors.New("boom")}, 60)
	_, err := col.Collect(context.Background(), []string{"AAPL"})
	assert.ErrorContains(t, err, "fetch daily bars")
}

func TestNewCollector_DefaultLookback(t *testing.T) {
	col := NewCollector(&MockFetcher{}, 0)
	assert.Equal(t, DefaultLookbackDays, col.LookbackDays)
}

func TestRangeFor(t *testing.T) {
	assert.Equal(t, "1mo", rangeFor(15))
	assert.Equal(t, "6mo", rangeFor(126))
	assert.Equal(t, "1y", rangeFor(200))
	assert.Equal(t, "2y", rangeFor(500))
}
