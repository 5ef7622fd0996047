package payoff

import (
	"errors"
	"fmt"
	"math"
)

// Typed errors allow callers and tests to detect failure categories
// without string matching.
var (
	ErrInvalidRange    = errors.New("invalid spot range")
	ErrStrikeOrder     = errors.New("invalid strike ordering")
	ErrNegativePremium = errors.New("negative premium")
)

// Point is one simulated spot price with its expiration PnL.
type Point struct {
	Spot       float64 `json:"spot"`
	PnL        float64 `json:"pnl"`
	Profitable bool    `json:"profitable"`
}

// Table is an expiration payoff curve sampled at unit spot steps,
// ordered by ascending spot.
type Table []Point

// round2 rounds to cents.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// spotLadder returns unit-step spots from floor(spot*lower) to
// floor(spot*upper) inclusive. Fractional bounds truncate toward the
// lower integer.
func spotLadder(spot, lower, upper float64) ([]float64, error) {
	if spot <= 0 {
		return nil, fmt.Errorf("%w: reference spot %.2f must be positive", ErrInvalidRange, spot)
	}
	if lower < 0 {
		return nil, fmt.Errorf("%w: lower bound multiple %.2f must be non-negative", ErrInvalidRange, lower)
	}
	if upper <= lower {
		return nil, fmt.Errorf("%w: upper bound multiple %.2f must exceed lower bound %.2f", ErrInvalidRange, upper, lower)
	}

	lo := int(spot * lower)
	hi := int(spot * upper)

	out := make([]float64, 0, hi-lo+1)
	for s := lo; s <= hi; s++ {
		out = append(out, float64(s))
	}
	return out, nil
}

// buildTable evaluates the legs over the spot ladder and classifies each
// point. PnL is rounded to cents before the profit flag is set.
func buildTable(legs []Leg, spot, lower, upper float64) (Table, error) {
	ladder, err := spotLadder(spot, lower, upper)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(ladder))
	for _, s := range ladder {
		pnl := 0.0
		for _, l := range legs {
			pnl += l.PnLAt(s)
		}
		pnl = round2(pnl)
		table = append(table, Point{
			Spot:       round2(s),
			PnL:        pnl,
			Profitable: pnl >= 0,
		})
	}
	return table, nil
}

// validateLegs rejects negative premiums; short legs collect a premium and
// long legs pay one, but neither is ever negative.
func validateLegs(legs []Leg) error {
	for _, l := range legs {
		if l.Premium < 0 {
			return fmt.Errorf("%w: %s %s at strike %.2f has premium %.2f",
				ErrNegativePremium, l.Side, l.Type, l.Strike, l.Premium)
		}
	}
	return nil
}
