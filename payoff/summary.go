package payoff

import "gonum.org/v1/gonum/floats"

// Summary captures the headline figures of a payoff curve over the
// simulated range.
type Summary struct {
	MaxProfit  float64   `json:"max_profit"`
	MaxLoss    float64   `json:"max_loss"`
	Breakevens []float64 `json:"breakevens,omitempty"`
}

// Summarize reports the best and worst PnL in the table and the spots where
// the curve crosses zero. Crossings between samples are interpolated and
// rounded to cents; an exact zero counts as a breakeven.
func Summarize(t Table) Summary {
	if len(t) == 0 {
		return Summary{}
	}

	pnls := make([]float64, len(t))
	for i, p := range t {
		pnls[i] = p.PnL
	}

	s := Summary{
		MaxProfit: floats.Max(pnls),
		MaxLoss:   floats.Min(pnls),
	}

	for i, p := range t {
		if p.PnL == 0 {
			s.Breakevens = append(s.Breakevens, p.Spot)
			continue
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if (prev.PnL < 0) == (p.PnL < 0) || prev.PnL == 0 {
			continue
		}
		// Sign flip between samples: the curve is piecewise linear, so the
		// crossing interpolates exactly.
		x := prev.Spot - prev.PnL*(p.Spot-prev.Spot)/(p.PnL-prev.PnL)
		s.Breakevens = append(s.Breakevens, round2(x))
	}
	return s
}
