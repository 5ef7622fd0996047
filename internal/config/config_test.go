package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "charts.json", `{
		"verbosity": 1,
		"charts": [{
			"name": "demo",
			"spot": 10,
			"jade_lizard": {
				"put_strike": 15,
				"call_short_strike": 12,
				"call_long_strike": "spot * 1.7",
				"put_premium": 5,
				"call_short_premium": 2,
				"call_long_premium": 1
			}
		}]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.OutDir != "./out" {
		t.Fatalf("expected default out dir, got %s", cfg.OutDir)
	}
	if len(cfg.Charts) != 1 || cfg.Charts[0].JadeLizard == nil {
		t.Fatalf("expected one jade lizard job, got %+v", cfg.Charts)
	}

	job := cfg.Charts[0]
	j, err := job.JadeLizard.Strategy(*job.Spot, job.LowerMult, job.UpperMult)
	if err != nil {
		t.Fatalf("resolving strategy: %v", err)
	}
	if j.CallLongStrike != 17 {
		t.Fatalf("expected expression to resolve to 17, got %.2f", j.CallLongStrike)
	}
	if j.PutStrike != 15 || j.PutPremium != 5 {
		t.Fatalf("literal fields mis-resolved: %+v", j)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "charts.yaml", `
out_dir: ./charts
charts:
  - name: rjl
    underlying: SPY
    reverse_jade_lizard:
      put_long_strike: spot * 0.7
      put_short_strike: spot * 0.9
      call_strike: spot * 1.1
      put_long_premium: 3
      put_short_premium: 8
      call_premium: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.OutDir != "./charts" {
		t.Fatalf("expected ./charts, got %s", cfg.OutDir)
	}

	job := cfg.Charts[0]
	if job.Underlying != "SPY" || job.Spot != nil {
		t.Fatalf("expected underlying lookup job, got %+v", job)
	}
	rjl, err := job.ReverseJadeLizard.Strategy(15, nil, nil)
	if err != nil {
		t.Fatalf("resolving strategy: %v", err)
	}
	if rjl.PutShortStrike != 13.5 {
		t.Fatalf("expected put short strike 13.5, got %.2f", rjl.PutShortStrike)
	}
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no charts", `{"charts": []}`},
		{"verbosity out of range", `{"verbosity": 9, "charts": [{"spot": 10, "jade_lizard": {}}]}`},
		{"both strategies", `{"charts": [{"spot": 10, "jade_lizard": {}, "reverse_jade_lizard": {}}]}`},
		{"no strategy", `{"charts": [{"spot": 10}]}`},
		{"no spot or underlying", `{"charts": [{"jade_lizard": {}}]}`},
	}

	for _, test := range tests {
		path := writeFile(t, "bad.json", test.body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected an error", test.name)
		}
	}
}

func TestValueResolve(t *testing.T) {
	tests := []struct {
		v        Value
		spot     float64
		expected float64
	}{
		{Number(42), 10, 42},
		{Expr("spot"), 10, 10},
		{Expr("spot * 1.9"), 10, 19},
		{Expr("(spot + 5) / 2"), 15, 10},
	}
	for _, test := range tests {
		got, err := test.v.Resolve(test.spot)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if got != test.expected {
			t.Fatalf("expected %.2f, got %.2f", test.expected, got)
		}
	}

	if _, err := (Value{}).Resolve(10); err == nil {
		t.Fatalf("expected an error for a missing value")
	}
	if _, err := Expr("spot +").Resolve(10); err == nil {
		t.Fatalf("expected an error for a malformed expression")
	}
	if _, err := Expr("nope * 2").Resolve(10); err == nil {
		t.Fatalf("expected an error for an unknown parameter")
	}
}
