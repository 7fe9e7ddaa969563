package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"StockScout/internal/logger"
	"StockScout/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// toFloat converts an optionally-null JSON number to a float64, mapping
// null to NaN so missing bars stay distinguishable from zero.
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return math.NaN()
	}
}

// FetchDaily fetches daily bars for each symbol. A single requested symbol
// comes back in the flat single shape, several in the per-ticker shape. A
// symbol that fails to fetch is logged and omitted; only a fully failed
// fetch is an error.
func (f *YahooFetcher) FetchDaily(ctx context.Context, symbols []string, lookbackDays int) (*model.Dataset, error) {
	if len(symbols) == 1 {
		cols, err := f.fetchChart(ctx, symbols[0], lookbackDays)
		if err != nil {
			return nil, err
		}
		return &model.Dataset{Single: cols}, nil
	}

	tickers := make(map[string]*model.FieldColumns, len(symbols))
	var lastErr error
	for _, sym := range symbols {
		if _, ok := tickers[sym]; ok {
			continue
		}
		cols, err := f.fetchChart(ctx, sym, lookbackDays)
		if err != nil {
			lastErr = err
			logger.L().Warn().Err(err).Str("symbol", sym).Msg("fetch failed, symbol omitted")
			continue
		}
		tickers[sym] = cols
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("yahoo: no symbol fetched: %w", lastErr)
	}
	return &model.Dataset{Tickers: tickers}, nil
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol string, lookbackDays int) (*model.FieldColumns, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(symbol), rangeFor(lookbackDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	cols := &model.FieldColumns{
		Dates:  make([]time.Time, 0, len(result.Timestamp)),
		Close:  make([]float64, 0, len(result.Timestamp)),
		Volume: make([]float64, 0, len(result.Timestamp)),
	}
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || i >= len(quote.Volume) {
			break
		}
		cols.Dates = append(cols.Dates, time.Unix(ts, 0).UTC())
		cols.Close = append(cols.Close, toFloat(quote.Close[i]))
		cols.Volume = append(cols.Volume, toFloat(quote.Volume[i]))
	}

	// Trim to the requested lookback.
	if n := len(cols.Dates); n > lookbackDays {
		cols.Dates = cols.Dates[n-lookbackDays:]
		cols.Close = cols.Close[n-lookbackDays:]
		cols.Volume = cols.Volume[n-lookbackDays:]
	}
	return cols, nil
}

// rangeFor maps a lookback in trading days onto a Yahoo range parameter
// wide enough to cover it.
func rangeFor(days int) string {
	switch {
	case days <= 20:
		return "1mo"
	case days <= 62:
		return "3mo"
	case days <= 126:
		return "6mo"
	case days <= 252:
		return "1y"
	default:
		return "2y"
	}
}
