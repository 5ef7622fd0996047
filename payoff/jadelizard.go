package payoff

import "fmt"

// Default simulated-range multiples for a jade lizard. The position has no
// upside risk, so the ladder starts at zero and runs well past the call
// spread.
const (
	defaultJadeLizardLower = 0.0
	defaultJadeLizardUpper = 1.9
)

// JadeLizard is a short put sold below a bear call spread, opened for a net
// credit: the put and the near call are sold, the far call is bought to cap
// upside risk.
type JadeLizard struct {
	Spot float64 // reference spot price of the underlying

	PutStrike       float64 // short put strike
	CallShortStrike float64 // bear call spread short strike
	CallLongStrike  float64 // bear call spread long strike, above the short

	PutPremium       float64 // received for the short put
	CallShortPremium float64 // received for the short call
	CallLongPremium  float64 // paid for the long call

	// Simulated spot range bounds as multiples of Spot.
	// Nil selects the strategy default (0 and 1.9).
	LowerMult *float64
	UpperMult *float64
}

// NetCredit returns the premium collected at entry.
func (j JadeLizard) NetCredit() float64 {
	return j.PutPremium + j.CallShortPremium - j.CallLongPremium
}

// Legs returns the three option legs of the position.
func (j JadeLizard) Legs() []Leg {
	return []Leg{
		{Side: Sell, Type: Put, Strike: j.PutStrike, Premium: j.PutPremium},
		{Side: Sell, Type: Call, Strike: j.CallShortStrike, Premium: j.CallShortPremium},
		{Side: Buy, Type: Call, Strike: j.CallLongStrike, Premium: j.CallLongPremium},
	}
}

// Validate checks the call spread ordering and the premiums.
func (j JadeLizard) Validate() error {
	if j.CallShortStrike >= j.CallLongStrike {
		return fmt.Errorf("%w: call spread short strike %.2f must sit below long strike %.2f",
			ErrStrikeOrder, j.CallShortStrike, j.CallLongStrike)
	}
	return validateLegs(j.Legs())
}

// PnL returns the per-unit expiration profit at spot s, rounded to cents.
func (j JadeLizard) PnL(s float64) float64 {
	pnl := 0.0
	for _, l := range j.Legs() {
		pnl += l.PnLAt(s)
	}
	return round2(pnl)
}

// Table simulates the payoff over the configured spot range.
func (j JadeLizard) Table() (Table, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	lower := defaultJadeLizardLower
	if j.LowerMult != nil {
		lower = *j.LowerMult
	}
	upper := defaultJadeLizardUpper
	if j.UpperMult != nil {
		upper = *j.UpperMult
	}
	return buildTable(j.Legs(), j.Spot, lower, upper)
}
