package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/contactkeval/option-payoff/payoff"
)

func TestJadeLizardPnLRenders(t *testing.T) {
	bar, err := JadeLizardPnL(payoff.JadeLizard{
		Spot:             10,
		PutStrike:        15,
		CallShortStrike:  12,
		CallLongStrike:   17,
		PutPremium:       5,
		CallShortPremium: 2,
		CallLongPremium:  1,
	})
	if err != nil {
		t.Fatalf("chart failed: %v", err)
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Jade Lizard payoff at expiration") {
		t.Fatalf("rendered page is missing the title")
	}
	if !strings.Contains(html, profitColor) || !strings.Contains(html, lossColor) {
		t.Fatalf("rendered page is missing the profit/loss colors")
	}
}

func TestReverseJadeLizardPnLRenders(t *testing.T) {
	bar, err := ReverseJadeLizardPnL(payoff.ReverseJadeLizard{
		Spot:            15,
		PutLongStrike:   11,
		PutShortStrike:  14,
		CallStrike:      17,
		PutLongPremium:  3,
		PutShortPremium: 8,
		CallPremium:     1,
	})
	if err != nil {
		t.Fatalf("chart failed: %v", err)
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Reverse Jade Lizard payoff at expiration") {
		t.Fatalf("rendered page is missing the title")
	}
}

func TestChartPropagatesValidation(t *testing.T) {
	_, err := JadeLizardPnL(payoff.JadeLizard{Spot: -1, CallShortStrike: 12, CallLongStrike: 17})
	if !errors.Is(err, payoff.ErrInvalidRange) {
		t.Fatalf("expected %v, got %v", payoff.ErrInvalidRange, err)
	}
}
