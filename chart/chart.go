// Package chart renders payoff tables as echarts bar charts.
//
// No numeric computation happens here: tables arrive fully evaluated and
// classified, and this package only maps them onto series, colors and labels.
package chart

import (
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/contactkeval/option-payoff/payoff"
)

// Bar fill colors keyed by the profit flag.
const (
	profitColor = "#2f855a"
	lossColor   = "#c53030"
)

// Payoff draws one bar per table point, colored by sign and labeled with the
// PnL value, with an overlaid scatter series marking each point.
func Payoff(table payoff.Table, title, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithXAxisOpts(opts.XAxis{Name: "spot at expiration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "PnL per unit"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	spots := make([]string, len(table))
	bars := make([]opts.BarData, len(table))
	markers := make([]opts.ScatterData, len(table))
	for i, p := range table {
		spots[i] = strconv.FormatFloat(p.Spot, 'f', -1, 64)
		color := lossColor
		if p.Profitable {
			color = profitColor
		}
		bars[i] = opts.BarData{
			Value:     p.PnL,
			ItemStyle: &opts.ItemStyle{Color: color},
		}
		markers[i] = opts.ScatterData{Value: p.PnL, SymbolSize: 6}
	}

	bar.SetXAxis(spots).AddSeries("pnl", bars,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	points := charts.NewScatter()
	points.SetXAxis(spots).AddSeries("pnl", markers)
	bar.Overlap(points)

	return bar
}

// JadeLizardPnL evaluates the position and renders its payoff chart.
func JadeLizardPnL(j payoff.JadeLizard) (*charts.Bar, error) {
	table, err := j.Table()
	if err != nil {
		return nil, err
	}
	subtitle := fmt.Sprintf("short put %.2f / short call %.2f / long call %.2f, net credit %.2f",
		j.PutStrike, j.CallShortStrike, j.CallLongStrike, j.NetCredit())
	return Payoff(table, "Jade Lizard payoff at expiration", subtitle), nil
}

// ReverseJadeLizardPnL evaluates the position and renders its payoff chart.
func ReverseJadeLizardPnL(r payoff.ReverseJadeLizard) (*charts.Bar, error) {
	table, err := r.Table()
	if err != nil {
		return nil, err
	}
	subtitle := fmt.Sprintf("long put %.2f / short put %.2f / short call %.2f, net credit %.2f",
		r.PutLongStrike, r.PutShortStrike, r.CallStrike, r.NetCredit())
	return Payoff(table, "Reverse Jade Lizard payoff at expiration", subtitle), nil
}
