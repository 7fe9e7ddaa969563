package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_GoldenCrossOnLastBar(t *testing.T) {
	series := makeSeries("AAA", crossingCloses(), constant(1000, 60))
	rec, err := Compute(series)
	require.NoError(t, err)
	assert.True(t, rec.GoldenCross)
}

func TestCompute_NoCrossInSteadyUptrend(t *testing.T) {
	// ma5 already above ma20 on the prior bar, so no cross on the latest.
	series := makeSeries("AAA", ramp(100, 0.5, 60), constant(1000, 60))
	rec, err := Compute(series)
	require.NoError(t, err)
	assert.False(t, rec.GoldenCross)
}

func TestCompute_CrossHappenedEarlier(t *testing.T) {
	// Same rally shape, but two flat bars appended after the jump: the
	// cross happened before the latest bar.
	closes := append(crossingCloses(), 150, 150)
	series := makeSeries("AAA", closes, constant(1000, 62))
	rec, err := Compute(series)
	require.NoError(t, err)
	assert.False(t, rec.GoldenCross)
}

func TestCompute_VolSpikeStrictBoundary(t *testing.T) {
	// 19 trailing volumes of 3700 and a latest of 5700 put the latest at
	// exactly 1.5x the trailing-20 average (3800). Strict inequality: no
	// spike at the boundary, spike just above it.
	atBoundary := constant(3700, 60)
	atBoundary[59] = 5700
	rec, err := Compute(makeSeries("AAA", constant(100, 60), atBoundary))
	require.NoError(t, err)
	assert.False(t, rec.VolSpike)

	above := constant(3700, 60)
	above[59] = 5701
	rec, err = Compute(makeSeries("AAA", constant(100, 60), above))
	require.NoError(t, err)
	assert.True(t, rec.VolSpike)
}

func TestCompute_DayChange(t *testing.T) {
	closes := constant(100, 60)
	closes[59] = 102
	rec, err := Compute(makeSeries("AAA", closes, constant(1000, 60)))
	require.NoError(t, err)
	require.True(t, rec.DayChangePct.Valid)
	assert.InDelta(t, 2.00, rec.DayChangePct.Value, 1e-9)
}

func TestCompute_AboveMA60UndefinedForShortHistory(t *testing.T) {
	// 50-59 bars qualify for the scan but have no 60-bar average yet.
	rec, err := Compute(makeSeries("AAA", constant(100, 55), constant(1000, 55)))
	require.NoError(t, err)
	assert.False(t, rec.AboveMA60Pct.Valid)

	rec, err = Compute(makeSeries("AAA", constant(100, 60), constant(1000, 60)))
	require.NoError(t, err)
	require.True(t, rec.AboveMA60Pct.Valid)
	assert.InDelta(t, 0.0, rec.AboveMA60Pct.Value, 1e-9)
}

func TestCompute_PriceRounding(t *testing.T) {
	closes := constant(100, 60)
	closes[59] = 123.456789
	rec, err := Compute(makeSeries("AAA", closes, constant(1000, 60)))
	require.NoError(t, err)
	assert.InDelta(t, 123.4568, rec.Price, 1e-9)
}

func TestCompute_LatestBarMetadata(t *testing.T) {
	series := makeSeries("AAA", constant(100, 60), constant(1000, 60))
	rec, err := Compute(series)
	require.NoError(t, err)
	assert.Equal(t, "AAA", rec.Ticker)
	assert.Equal(t, series.Bars[59].Date, rec.Date)
}

func TestCompute_RejectsMalformedSeries(t *testing.T) {
	badClose := makeSeries("AAA", constant(100, 60), constant(1000, 60))
	badClose.Bars[5].Close = -1
	_, err := Compute(badClose)
	assert.ErrorContains(t, err, "non-positive close")

	badVol := makeSeries("AAA", constant(100, 60), constant(1000, 60))
	badVol.Bars[7].Volume = -5
	_, err = Compute(badVol)
	assert.ErrorContains(t, err, "negative volume")

	badDate := makeSeries("AAA", constant(100, 60), constant(1000, 60))
	badDate.Bars[9].Date = badDate.Bars[8].Date
	_, err = Compute(badDate)
	assert.ErrorContains(t, err, "date not after previous bar")
}
