// Package data resolves reference spot prices for chart jobs.
//
// A job can name an underlying symbol instead of a literal spot price; the
// Provider answers with the previous session's close, which then anchors the
// simulated spot range.
package data

import "fmt"

// Provider supplies the previous closing price for an underlying symbol.
type Provider interface {
	PrevClose(symbol string) (float64, error)
}

// Static is a fixed-price Provider for tests and offline runs.
type Static map[string]float64

// PrevClose returns the configured price for symbol.
func (s Static) PrevClose(symbol string) (float64, error) {
	price, ok := s[symbol]
	if !ok {
		return 0, fmt.Errorf("no price configured for %s", symbol)
	}
	return price, nil
}
