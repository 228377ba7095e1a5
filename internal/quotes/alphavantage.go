// Package quotes fetches historical market data. The upstream is treated as
// an opaque producer of daily closing prices per symbol; every failure mode
// (bad URL, non-2xx status, undecodable payload) collapses to the single
// quotes-unavailable signal so callers can tolerate it uniformly.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	apperrors "nestegg/internal/errors"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// DailyClose is one day's closing price for a symbol.
type DailyClose struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// dailyResponse is the Alpha Vantage TIME_SERIES_DAILY payload. Prices are
// encoded as strings upstream.
type dailyResponse struct {
	TimeSeries map[string]dailyEntry `json:"Time Series (Daily)"`
}

type dailyEntry struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// Client fetches daily closing prices from Alpha Vantage.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string // overridable for tests
}

// NewClient creates a new Alpha Vantage client.
func NewClient(httpClient *http.Client, apiKey string) *Client {
	return &Client{httpClient: httpClient, apiKey: apiKey, baseURL: alphaVantageBaseURL}
}

// DailyCloses returns the symbol's daily closing prices in ascending date
// order.
func (c *Client) DailyCloses(ctx context.Context, symbol string) ([]DailyClose, error) {
	addr, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable, err)
	}
	q := addr.Query()
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	addr.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable,
			fmt.Errorf("unexpected status %d for %s", resp.StatusCode, symbol))
	}

	var payload dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable, err)
	}
	if len(payload.TimeSeries) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable,
			fmt.Errorf("empty time series for %s", symbol))
	}

	closes := make([]DailyClose, 0, len(payload.TimeSeries))
	for day, entry := range payload.TimeSeries {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable, err)
		}
		price, err := strconv.ParseFloat(entry.Close, 64)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrQuotesUnavailable, err)
		}
		closes = append(closes, DailyClose{Date: date, Close: price})
	}

	sort.Slice(closes, func(i, j int) bool { return closes[i].Date.Before(closes[j].Date) })
	return closes, nil
}
