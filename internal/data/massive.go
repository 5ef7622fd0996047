package data

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/contactkeval/option-payoff/internal/logger"
)

// massiveProvider fetches previous-close prices from Massive's aggregates
// API using raw HTTP calls.
type massiveProvider struct {
	// APIKey used for authenticating requests with Massive.
	APIKey string

	// Client is the HTTP client used to make API requests.
	Client *http.Client

	// BaseURL is the root endpoint for Massive APIs
	// (e.g., https://api.massive.com).
	BaseURL string
}

// NewMassiveProvider constructs a Massive-backed spot price provider with a
// pooled HTTP client.
func NewMassiveProvider(apiKey string) *massiveProvider {
	logger.Infof("initializing Massive spot provider")

	return &massiveProvider{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				DisableCompression:    false, // must be false to enable gzip auto-decompression
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		BaseURL: "https://api.massive.com",
	}
}

// PrevClose returns the previous session's closing price for symbol.
func (m *massiveProvider) PrevClose(symbol string) (float64, error) {
	logger.Debugf("fetching previous close: %s", symbol)

	url := fmt.Sprintf(
		"%s/v2/aggs/ticker/%s/prev?adjusted=true&apiKey=%s",
		m.BaseURL, symbol, m.APIKey,
	)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("x-api-key", m.APIKey)

	resp, err := m.Client.Do(req)
	if err != nil {
		logger.Errorf("previous close request failed: %v", err)
		return 0, fmt.Errorf("massive api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf(
			"massive previous close status=%d body=%s",
			resp.StatusCode, string(bodyBytes),
		)
	}

	// Massive/POLYGON style response model
	var body struct {
		Ticker  string `json:"ticker"`
		Results []struct {
			Close     float64 `json:"c"`
			Timestamp int64   `json:"t"` // epoch millis
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("parsing massive response: %w", err)
	}
	if len(body.Results) == 0 {
		return 0, fmt.Errorf("no previous close for %s", symbol)
	}

	logger.Tracef("previous close for %s = %.2f", symbol, body.Results[0].Close)
	return body.Results[0].Close, nil
}
