package main

import (
	"flag"
	"fmt"
	"os"

	"microgrid-sim/internal/analysis"
	"microgrid-sim/internal/config"
	"microgrid-sim/internal/simulate"
	"microgrid-sim/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --config examples/config.yaml [--out results] [--db runs.db]")
	fmt.Println("  cli compare --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - run writes a timestamped CSV with one row per simulated step")
	fmt.Println("  - compare runs all three dispatch strategies on the same seed and ranks them by net cost")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outDir := fs.String("out", "", "Output directory for the results CSV (default from config)")
	dbPath := fs.String("db", "", "Optional SQLite path to record the run summary")
	noCSV := fs.Bool("no-csv", false, "Skip writing the results CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	eng, err := simulate.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building engine: %v\n", err)
		os.Exit(1)
	}

	res, err := eng.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "running simulation: %v\n", err)
		os.Exit(1)
	}

	if !*noCSV {
		path, err := simulate.WriteResultsCSV(cfg.Output.Dir, res.Steps)
		if err != nil {
			// Results are still in memory; print the summary before failing.
			printSummary(res.Summary)
			fmt.Fprintf(os.Stderr, "writing results CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Steps), path)
	}

	if *dbPath != "" {
		st, err := store.NewStore(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening run store: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()
		id, err := st.SaveRun(res.Summary)
		if err != nil {
			fmt.Fprintf(os.Stderr, "saving run: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Recorded run #%d in %s\n", id, *dbPath)
	}

	printSummary(res.Summary)
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	outcomes, err := analysis.CompareStrategies(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "comparing strategies: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-4s %-18s %-12s %-12s %-12s %-10s\n",
		"rank", "strategy", "import-kwh", "export-kwh", "cost-$", "final-soc")
	for i, o := range outcomes {
		fmt.Printf("%-4d %-18s %-12.2f %-12.2f %-12.2f %-10.2f\n",
			i+1,
			o.Strategy,
			o.Summary.TotalImportKWh,
			o.Summary.TotalExportKWh,
			o.Summary.NetCostCents/100,
			o.Summary.FinalSoCKWh,
		)
	}
}

func printSummary(s simulate.Summary) {
	line := "========================================"
	fmt.Println()
	fmt.Println(line)
	fmt.Println("       SIMULATION SUMMARY")
	fmt.Println(line)
	fmt.Printf("Strategy:      %s\n", s.Strategy)
	fmt.Printf("Season:        %s\n", s.Season)
	fmt.Printf("Duration:      %d Days (%d steps)\n", s.DurationDays, s.Steps)
	fmt.Printf("Total Load:    %.2f kWh\n", s.TotalLoadKWh)
	fmt.Printf("Total Solar:   %.2f kWh\n", s.TotalSolarKWh)
	fmt.Printf("Grid Import:   %.2f kWh\n", s.TotalImportKWh)
	fmt.Printf("Grid Export:   %.2f kWh\n", s.TotalExportKWh)
	fmt.Printf("Final SoC:     %.2f kWh\n", s.FinalSoCKWh)
	fmt.Println("----------------------------------------")
	fmt.Printf("NET COST:      $%.2f\n", s.NetCostCents/100)
	fmt.Println(line)
}
