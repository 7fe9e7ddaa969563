package collector

import (
	"context"
	"fmt"
	"time"

	"StockScout/internal/model"
)

// DefaultLookbackDays is roughly six months of trading days.
const DefaultLookbackDays = 126

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Data *model.Dataset
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDaily(_ context.Context, symbols []string, lookbackDays int) (*model.Dataset, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data != nil {
		return m.Data, nil
	}
	if len(symbols) == 1 {
		return &model.Dataset{Single: GenerateMockColumns(100, lookbackDays)}, nil
	}
	ds := &model.Dataset{Tickers: make(map[string]*model.FieldColumns, len(symbols))}
	for i, s := range symbols {
		ds.Tickers[s] = GenerateMockColumns(100*float64(i+1), lookbackDays)
	}
	return ds, nil
}

// GenerateMockColumns builds a gently trending synthetic series ending today.
func GenerateMockColumns(basePrice float64, count int) *model.FieldColumns {
	cols := &model.FieldColumns{
		Dates:  make([]time.Time, count),
		Close:  make([]float64, count),
		Volume: make([]float64, count),
	}
	for i := 0; i < count; i++ {
		cols.Dates[i] = time.Now().AddDate(0, 0, -(count - i))
		cols.Close[i] = basePrice * (1 + float64(i-count/2)*0.001)
		cols.Volume[i] = 1000000
	}
	return cols
}

// Collector wraps a Fetcher with the configured lookback period.
type Collector struct {
	Fetcher      Fetcher
	LookbackDays int
}

// NewCollector creates a Collector; a non-positive lookback falls back to
// the default.
func NewCollector(fetcher Fetcher, lookbackDays int) *Collector {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &Collector{Fetcher: fetcher, LookbackDays: lookbackDays}
}

// Collect fetches the raw dataset for the given symbols.
func (c *Collector) Collect(ctx context.Context, symbols []string) (*model.Dataset, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("collect: no symbols requested")
	}
	ds, err := c.Fetcher.FetchDaily(ctx, symbols, c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	return ds, nil
}
