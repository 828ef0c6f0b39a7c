package main

import (
	"flag"
	"fmt"

	"microgrid-sim/internal/config"
	"microgrid-sim/internal/model"
	"microgrid-sim/internal/simulate"
)

// Demo:
// - Build the stock residential scenario in code
// - Run two simulated days and print an excerpt of the ledger
// - Show how the pieces fit together without needing a config file
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 24, "Number of ledger rows to print")
	flag.Parse()

	var cfg *config.Config
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
		cfg.Simulation.DurationDays = 2
		cfg.Simulation.Season = "Winter"
		cfg.Simulation.Seed = 42
		cfg.Solar.PanelPeakKW = 5.0
		cfg.Load.BaseLoadKW = 0.5
		cfg.Load.PeakLoadKW = 3.0
		cfg.Load.PeakStartHour = 18
		cfg.Load.PeakEndHour = 21
		cfg.Grid.ExportLimitKW = 20.0
		cfg.Grid.CostImportCents = 0.75
		cfg.Grid.PriceExportCents = 0.90
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			panic(err)
		}
	}

	eng, err := simulate.FromConfig(cfg)
	if err != nil {
		panic(err)
	}

	res, err := eng.Run()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d steps (%d days, %s, seed %d)\n",
		len(res.Steps), res.Summary.DurationDays, res.Summary.Season, res.Summary.Seed)
	fmt.Printf("Strategy=%s\n\n", res.Summary.Strategy)

	for i := 0; i < minInt(*n, len(res.Steps)); i++ {
		r := res.Steps[i]
		action := model.BatteryActionFromFlows(r.BatteryChargeKW, r.BatteryDischargeKW)
		fmt.Printf(
			"d%d %05.2fh cloud=%.2f gen=%5.2f load=%5.2f  %-11s soc=%6.2f  imp=%5.2f exp=%5.2f  cost=%6.2f\n",
			r.Day,
			r.Hour,
			r.CloudCover,
			r.SolarGenKW,
			r.LoadKW,
			string(action),
			r.BatterySoCKWh,
			r.GridImportKW,
			r.GridExportKW,
			r.CostCents,
		)
	}

	fmt.Printf("\nDone. Final SoC=%.2f kWh  Net cost=$%.2f\n",
		res.Summary.FinalSoCKWh, res.Summary.NetCostCents/100)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
