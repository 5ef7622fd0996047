package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/joho/godotenv"

	"github.com/contactkeval/option-payoff/chart"
	"github.com/contactkeval/option-payoff/internal/config"
	"github.com/contactkeval/option-payoff/internal/data"
	"github.com/contactkeval/option-payoff/internal/logger"
	"github.com/contactkeval/option-payoff/internal/report"
	"github.com/contactkeval/option-payoff/internal/server"
	"github.com/contactkeval/option-payoff/payoff"
)

func main() {
	configPath := flag.String("config", filepath.Join("strategies", "jade_lizard.json"), "path to JSON or YAML config")
	serve := flag.Bool("serve", false, "run as HTTP chart server instead of a batch run")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	// .env is optional; real environments set POLYGON_API_KEY directly.
	_ = godotenv.Load()

	if *serve {
		log.Printf("[info] serving payoff charts on %s", *addr)
		log.Fatal(http.ListenAndServe(*addr, server.New()))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger.SetVerbosity(cfg.Verbosity)

	var prov data.Provider
	if apiKey := os.Getenv("POLYGON_API_KEY"); apiKey != "" {
		prov = data.NewMassiveProvider(apiKey)
		log.Printf("[info] massive spot provider enabled")
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Fatalf("creating output dir %s: %v", cfg.OutDir, err)
	}

	start := time.Now()
	for i, job := range cfg.Charts {
		if err := runJob(job, prov, cfg.OutDir, cfg.Reports); err != nil {
			log.Fatalf("chart %d (%s): %v", i+1, jobName(job), err)
		}
	}
	log.Printf("[done] rendered %d charts in %v to %s", len(cfg.Charts), time.Since(start), cfg.OutDir)
}

// runJob resolves the job's spot, evaluates the strategy and writes the
// chart HTML (plus table reports when enabled) into outDir.
func runJob(job config.Job, prov data.Provider, outDir string, reports bool) error {
	spot, err := resolveSpot(job, prov)
	if err != nil {
		return err
	}

	var (
		table payoff.Table
		bar   *charts.Bar
	)
	switch {
	case job.JadeLizard != nil:
		position, err := job.JadeLizard.Strategy(spot, job.LowerMult, job.UpperMult)
		if err != nil {
			return err
		}
		if table, err = position.Table(); err != nil {
			return err
		}
		if bar, err = chart.JadeLizardPnL(position); err != nil {
			return err
		}
	case job.ReverseJadeLizard != nil:
		position, err := job.ReverseJadeLizard.Strategy(spot, job.LowerMult, job.UpperMult)
		if err != nil {
			return err
		}
		if table, err = position.Table(); err != nil {
			return err
		}
		if bar, err = chart.ReverseJadeLizardPnL(position); err != nil {
			return err
		}
	default:
		return fmt.Errorf("no strategy configured")
	}

	name := jobName(job)
	f, err := os.Create(filepath.Join(outDir, name+".html"))
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()
	if err := bar.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	logger.Infof("wrote %s.html (%d points)", name, len(table))

	if reports {
		if err := report.WriteCSV(table, outDir, name); err != nil {
			return fmt.Errorf("writing csv report: %w", err)
		}
		if err := report.WriteJSON(table, payoff.Summarize(table), outDir, name); err != nil {
			return fmt.Errorf("writing json report: %w", err)
		}
	}
	return nil
}

func resolveSpot(job config.Job, prov data.Provider) (float64, error) {
	if job.Spot != nil {
		return *job.Spot, nil
	}
	if prov == nil {
		return 0, fmt.Errorf("underlying %s wants a spot lookup but no provider is configured (set POLYGON_API_KEY)", job.Underlying)
	}
	spot, err := prov.PrevClose(job.Underlying)
	if err != nil {
		return 0, fmt.Errorf("fetching spot for %s: %w", job.Underlying, err)
	}
	logger.Infof("spot for %s = %.2f", job.Underlying, spot)
	return spot, nil
}

func jobName(job config.Job) string {
	name := job.Name
	if name == "" {
		if job.JadeLizard != nil {
			name = "jade_lizard"
		} else {
			name = "reverse_jade_lizard"
		}
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
