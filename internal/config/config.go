// Package config loads and validates chart job definitions.
//
// A config file lists one job per chart to render. Strike and premium fields
// accept literal numbers or arithmetic expressions over the reference spot,
// so a job can be written once and reused across underlyings. Files decode
// as JSON or, by extension, YAML.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/contactkeval/option-payoff/payoff"
)

// Config drives a batch run: one rendered chart per job.
type Config struct {
	OutDir    string `json:"out_dir,omitempty" yaml:"out_dir"`
	Verbosity int    `json:"verbosity,omitempty" yaml:"verbosity" validate:"gte=0,lte=3"`
	Reports   bool   `json:"reports,omitempty" yaml:"reports"` // also write CSV/JSON tables
	Charts    []Job  `json:"charts" yaml:"charts" validate:"min=1"`
}

// Job describes a single chart: a reference spot (literal or looked up via
// an underlying symbol), exactly one strategy block, and optional range
// overrides.
type Job struct {
	Name       string   `json:"name,omitempty" yaml:"name"`
	Underlying string   `json:"underlying,omitempty" yaml:"underlying"`
	Spot       *float64 `json:"spot,omitempty" yaml:"spot"`

	JadeLizard        *JadeLizardSpec        `json:"jade_lizard,omitempty" yaml:"jade_lizard"`
	ReverseJadeLizard *ReverseJadeLizardSpec `json:"reverse_jade_lizard,omitempty" yaml:"reverse_jade_lizard"`

	// Simulated range bounds as multiples of spot; nil keeps the
	// strategy defaults.
	LowerMult *float64 `json:"lower_mult,omitempty" yaml:"lower_mult"`
	UpperMult *float64 `json:"upper_mult,omitempty" yaml:"upper_mult"`
}

// JadeLizardSpec holds the unresolved strikes and premiums of a jade lizard.
type JadeLizardSpec struct {
	PutStrike        Value `json:"put_strike" yaml:"put_strike"`
	CallShortStrike  Value `json:"call_short_strike" yaml:"call_short_strike"`
	CallLongStrike   Value `json:"call_long_strike" yaml:"call_long_strike"`
	PutPremium       Value `json:"put_premium" yaml:"put_premium"`
	CallShortPremium Value `json:"call_short_premium" yaml:"call_short_premium"`
	CallLongPremium  Value `json:"call_long_premium" yaml:"call_long_premium"`
}

// ReverseJadeLizardSpec holds the unresolved strikes and premiums of a
// reverse jade lizard.
type ReverseJadeLizardSpec struct {
	PutLongStrike   Value `json:"put_long_strike" yaml:"put_long_strike"`
	PutShortStrike  Value `json:"put_short_strike" yaml:"put_short_strike"`
	CallStrike      Value `json:"call_strike" yaml:"call_strike"`
	PutLongPremium  Value `json:"put_long_premium" yaml:"put_long_premium"`
	PutShortPremium Value `json:"put_short_premium" yaml:"put_short_premium"`
	CallPremium     Value `json:"call_premium" yaml:"call_premium"`
}

var structValidator = validator.New()

// Load reads, decodes and validates a config file. The decoder is chosen by
// extension: .yaml/.yml via yaml.v2, anything else as JSON.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("invalid yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("invalid json config: %w", err)
		}
	}

	if cfg.OutDir == "" {
		cfg.OutDir = "./out"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for i, job := range cfg.Charts {
		if (job.JadeLizard == nil) == (job.ReverseJadeLizard == nil) {
			return fmt.Errorf("chart %d: want exactly one of jade_lizard or reverse_jade_lizard", i+1)
		}
		if job.Spot == nil && job.Underlying == "" {
			return fmt.Errorf("chart %d: want a spot price or an underlying symbol", i+1)
		}
	}
	return nil
}

// resolver accumulates the first field resolution error so a strategy block
// can be mapped in one pass.
type resolver struct {
	spot float64
	err  error
}

func (r *resolver) value(name string, v Value) float64 {
	if r.err != nil {
		return 0
	}
	f, err := v.Resolve(r.spot)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", name, err)
	}
	return f
}

// Strategy resolves the spec's fields against the reference spot.
func (s *JadeLizardSpec) Strategy(spot float64, lower, upper *float64) (payoff.JadeLizard, error) {
	r := resolver{spot: spot}
	j := payoff.JadeLizard{
		Spot:             spot,
		PutStrike:        r.value("put_strike", s.PutStrike),
		CallShortStrike:  r.value("call_short_strike", s.CallShortStrike),
		CallLongStrike:   r.value("call_long_strike", s.CallLongStrike),
		PutPremium:       r.value("put_premium", s.PutPremium),
		CallShortPremium: r.value("call_short_premium", s.CallShortPremium),
		CallLongPremium:  r.value("call_long_premium", s.CallLongPremium),
		LowerMult:        lower,
		UpperMult:        upper,
	}
	return j, r.err
}

// Strategy resolves the spec's fields against the reference spot.
func (s *ReverseJadeLizardSpec) Strategy(spot float64, lower, upper *float64) (payoff.ReverseJadeLizard, error) {
	r := resolver{spot: spot}
	rjl := payoff.ReverseJadeLizard{
		Spot:            spot,
		PutLongStrike:   r.value("put_long_strike", s.PutLongStrike),
		PutShortStrike:  r.value("put_short_strike", s.PutShortStrike),
		CallStrike:      r.value("call_strike", s.CallStrike),
		PutLongPremium:  r.value("put_long_premium", s.PutLongPremium),
		PutShortPremium: r.value("put_short_premium", s.PutShortPremium),
		CallPremium:     r.value("call_premium", s.CallPremium),
		LowerMult:       lower,
		UpperMult:       upper,
	}
	return rjl, r.err
}
