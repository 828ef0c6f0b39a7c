package simulate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResultsCSV(t *testing.T) {
	dir := t.TempDir()
	steps := []StepResult{
		{TimeMin: 0, Day: 0, Hour: 0, SolarGenKW: 1.5, LoadKW: 0.5, BatterySoCKWh: 6.75, GridExportKW: 1.0, CostCents: -0.9, CloudCover: 0.1},
		{TimeMin: 60, Day: 0, Hour: 1, LoadKW: 0.5, BatterySoCKWh: 6.25, GridImportKW: 0.5, CostCents: 0.375, CloudCover: 0.9},
	}

	path, err := WriteResultsCSV(dir, steps)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "simulation_results_"))
	assert.True(t, strings.HasSuffix(base, ".csv"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"time_min", "day", "hour", "solar_gen_kw", "load_kw",
		"battery_soc_kwh", "grid_import_kw", "grid_export_kw",
		"cost_cents", "cloud_cover",
	}, rows[0])

	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "1.500000", rows[1][3])
	assert.Equal(t, "60", rows[2][0])
	assert.Equal(t, "0.375000", rows[2][8])
}

func TestWriteResultsCSV_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	path, err := WriteResultsCSV(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
