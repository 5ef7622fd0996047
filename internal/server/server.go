// Package server exposes the payoff charts over HTTP.
//
// Each strategy gets a GET endpoint that takes strikes and premiums as float
// query parameters and answers with the rendered chart HTML.
package server

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/contactkeval/option-payoff/chart"
	"github.com/contactkeval/option-payoff/internal/logger"
	"github.com/contactkeval/option-payoff/payoff"
)

// New returns the chart router.
func New() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/chart/jade-lizard", handleJadeLizard).Methods(http.MethodGet)
	r.HandleFunc("/chart/reverse-jade-lizard", handleReverseJadeLizard).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	return r
}

// form accumulates the first query parsing error so handlers can read all
// parameters in one pass.
type form struct {
	q   url.Values
	err error
}

func (f *form) float(name string) float64 {
	if f.err != nil {
		return 0
	}
	raw := f.q.Get(name)
	if raw == "" {
		f.err = fmt.Errorf("missing parameter %s", name)
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.err = fmt.Errorf("parameter %s: %w", name, err)
		return 0
	}
	return v
}

func (f *form) optFloat(name string) *float64 {
	if f.err != nil || f.q.Get(name) == "" {
		return nil
	}
	v := f.float(name)
	if f.err != nil {
		return nil
	}
	return &v
}

func handleJadeLizard(w http.ResponseWriter, r *http.Request) {
	f := form{q: r.URL.Query()}
	position := payoff.JadeLizard{
		Spot:             f.float("spot"),
		PutStrike:        f.float("put_strike"),
		CallShortStrike:  f.float("call_short_strike"),
		CallLongStrike:   f.float("call_long_strike"),
		PutPremium:       f.float("put_premium"),
		CallShortPremium: f.float("call_short_premium"),
		CallLongPremium:  f.float("call_long_premium"),
		LowerMult:        f.optFloat("lower_mult"),
		UpperMult:        f.optFloat("upper_mult"),
	}
	if f.err != nil {
		http.Error(w, f.err.Error(), http.StatusBadRequest)
		return
	}

	bar, err := chart.JadeLizardPnL(position)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeChart(w, bar.Render)
}

func handleReverseJadeLizard(w http.ResponseWriter, r *http.Request) {
	f := form{q: r.URL.Query()}
	position := payoff.ReverseJadeLizard{
		Spot:            f.float("spot"),
		PutLongStrike:   f.float("put_long_strike"),
		PutShortStrike:  f.float("put_short_strike"),
		CallStrike:      f.float("call_strike"),
		PutLongPremium:  f.float("put_long_premium"),
		PutShortPremium: f.float("put_short_premium"),
		CallPremium:     f.float("call_premium"),
		LowerMult:       f.optFloat("lower_mult"),
		UpperMult:       f.optFloat("upper_mult"),
	}
	if f.err != nil {
		http.Error(w, f.err.Error(), http.StatusBadRequest)
		return
	}

	bar, err := chart.ReverseJadeLizardPnL(position)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeChart(w, bar.Render)
}

func writeChart(w http.ResponseWriter, render func(io.Writer) error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(w); err != nil {
		logger.Errorf("rendering chart: %v", err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
