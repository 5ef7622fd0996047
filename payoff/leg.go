// Package payoff computes closed-form expiration profit-and-loss tables for
// multi-leg option strategies over a ladder of candidate spot prices.
//
// Responsibilities:
//   - Build the simulated spot range as multiples of a reference spot
//   - Evaluate per-leg expiration PnL (intrinsic value net of premium)
//   - Classify each point as profitable or not
//
// Design notes:
//   - Everything here is pure and deterministic; rendering lives elsewhere
//   - PnL and spot values are rounded to cents before classification
//   - Errors are typed so callers can detect failure categories without
//     string matching
package payoff

import "math"

// Side indicates whether a leg was bought or sold.
type Side string

// OptionType distinguishes calls from puts.
type OptionType string

const (
	Buy  Side = "buy"
	Sell Side = "sell"

	Call OptionType = "call"
	Put  OptionType = "put"
)

// Leg is a single option position held to expiration: a strike, the premium
// paid or received at entry, and the direction of the trade. Quantities are
// per unit of the underlying.
type Leg struct {
	Side    Side
	Type    OptionType
	Strike  float64
	Premium float64
}

// intrinsic returns the exercise value of the leg at spot s.
func (l Leg) intrinsic(s float64) float64 {
	if l.Type == Call {
		return math.Max(0, s-l.Strike)
	}
	return math.Max(0, l.Strike-s)
}

// PnLAt returns the leg's per-unit profit at expiration for spot s.
// A sold leg keeps its premium and owes the intrinsic value; a bought leg
// collects the intrinsic value and is out its premium.
func (l Leg) PnLAt(s float64) float64 {
	if l.Side == Sell {
		return l.Premium - l.intrinsic(s)
	}
	return l.intrinsic(s) - l.Premium
}
