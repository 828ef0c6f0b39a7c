package simulate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WriteResultsCSV writes the ledger into dir under a timestamped filename
// (so repeated runs never overwrite each other) and returns the full path.
// The results stay in memory if persistence fails.
func WriteResultsCSV(dir string, steps []StepResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := "simulation_results_" + time.Now().Format("2006-01-02_15-04-05") + ".csv"
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{
		"time_min",
		"day",
		"hour",
		"solar_gen_kw",
		"load_kw",
		"battery_soc_kwh",
		"grid_import_kw",
		"grid_export_kw",
		"cost_cents",
		"cloud_cover",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, r := range steps {
		row := []string{
			strconv.Itoa(r.TimeMin),
			strconv.Itoa(r.Day),
			fmtFloat(r.Hour),
			fmtFloat(r.SolarGenKW),
			fmtFloat(r.LoadKW),
			fmtFloat(r.BatterySoCKWh),
			fmtFloat(r.GridImportKW),
			fmtFloat(r.GridExportKW),
			fmtFloat(r.CostCents),
			fmtFloat(r.CloudCover),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return path, w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
