package payoff

import "fmt"

// Default simulated-range multiples for a reverse jade lizard. The position
// has no downside risk below the long put, so the ladder starts above zero
// and runs far to the upside where the naked call loses.
const (
	defaultReverseJadeLizardLower = 0.4
	defaultReverseJadeLizardUpper = 2.5
)

// ReverseJadeLizard is the mirror position: a bull put spread below a short
// call, opened for a net credit. The far put is bought to cap downside risk,
// the near put and the call are sold.
type ReverseJadeLizard struct {
	Spot float64 // reference spot price of the underlying

	PutLongStrike  float64 // bull put spread long strike, below the short
	PutShortStrike float64 // bull put spread short strike
	CallStrike     float64 // short call strike

	PutLongPremium  float64 // paid for the long put
	PutShortPremium float64 // received for the short put
	CallPremium     float64 // received for the short call

	// Simulated spot range bounds as multiples of Spot.
	// Nil selects the strategy default (0.4 and 2.5).
	LowerMult *float64
	UpperMult *float64
}

// NetCredit returns the premium collected at entry.
func (r ReverseJadeLizard) NetCredit() float64 {
	return r.PutShortPremium + r.CallPremium - r.PutLongPremium
}

// Legs returns the three option legs of the position.
func (r ReverseJadeLizard) Legs() []Leg {
	return []Leg{
		{Side: Buy, Type: Put, Strike: r.PutLongStrike, Premium: r.PutLongPremium},
		{Side: Sell, Type: Put, Strike: r.PutShortStrike, Premium: r.PutShortPremium},
		{Side: Sell, Type: Call, Strike: r.CallStrike, Premium: r.CallPremium},
	}
}

// Validate checks the put spread ordering and the premiums.
func (r ReverseJadeLizard) Validate() error {
	if r.PutLongStrike >= r.PutShortStrike {
		return fmt.Errorf("%w: put spread long strike %.2f must sit below short strike %.2f",
			ErrStrikeOrder, r.PutLongStrike, r.PutShortStrike)
	}
	return validateLegs(r.Legs())
}

// PnL returns the per-unit expiration profit at spot s, rounded to cents.
func (r ReverseJadeLizard) PnL(s float64) float64 {
	pnl := 0.0
	for _, l := range r.Legs() {
		pnl += l.PnLAt(s)
	}
	return round2(pnl)
}

// Table simulates the payoff over the configured spot range.
func (r ReverseJadeLizard) Table() (Table, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	lower := defaultReverseJadeLizardLower
	if r.LowerMult != nil {
		lower = *r.LowerMult
	}
	upper := defaultReverseJadeLizardUpper
	if r.UpperMult != nil {
		upper = *r.UpperMult
	}
	return buildTable(r.Legs(), r.Spot, lower, upper)
}
