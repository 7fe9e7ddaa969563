package collector

import (
	"context"

	"StockScout/internal/model"
)

// Fetcher defines the interface for retrieving daily market data.
type Fetcher interface {
	// FetchDaily returns up to lookbackDays of daily bars for each symbol.
	// A symbol the source knows nothing about may simply be absent from the
	// result; that is not an error.
	FetchDaily(ctx context.Context, symbols []string, lookbackDays int) (*model.Dataset, error)
	Name() string
}
