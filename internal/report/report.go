// Package report writes payoff tables to disk alongside the rendered charts.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/option-payoff/payoff"
)

// WriteJSON writes the table and its summary as <name>.json in outdir.
func WriteJSON(table payoff.Table, summary payoff.Summary, outdir, name string) error {
	out := struct {
		Summary payoff.Summary `json:"summary"`
		Points  payoff.Table   `json:"points"`
	}{Summary: summary, Points: table}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, name+".json"), b, 0644)
}

// WriteCSV writes the table as <name>.csv in outdir.
func WriteCSV(table payoff.Table, outdir, name string) error {
	f, err := os.Create(filepath.Join(outdir, name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"spot", "pnl", "profitable"}); err != nil {
		return err
	}
	for _, p := range table {
		row := []string{
			fmt.Sprintf("%.2f", p.Spot),
			fmt.Sprintf("%.2f", p.PnL),
			fmt.Sprintf("%t", p.Profitable),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
