// Package store persists run summaries in SQLite so past simulations can be
// listed and compared after the fact.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"microgrid-sim/internal/simulate"

	_ "modernc.org/sqlite"
)

// RunRecord is one persisted run summary.
type RunRecord struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Strategy     string    `json:"strategy"`
	Season       string    `json:"season"`
	DurationDays int       `json:"duration_days"`
	Seed         int64     `json:"seed"`

	TotalSolarKWh  float64 `json:"total_solar_kwh"`
	TotalLoadKWh   float64 `json:"total_load_kwh"`
	TotalImportKWh float64 `json:"total_import_kwh"`
	TotalExportKWh float64 `json:"total_export_kwh"`
	NetCostCents   float64 `json:"net_cost_cents"`
	FinalSoCKWh    float64 `json:"final_soc_kwh"`
}

// Store handles persistent storage using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		strategy TEXT NOT NULL,
		season TEXT NOT NULL,
		duration_days INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		total_solar_kwh REAL NOT NULL,
		total_load_kwh REAL NOT NULL,
		total_import_kwh REAL NOT NULL,
		total_export_kwh REAL NOT NULL,
		net_cost_cents REAL NOT NULL,
		final_soc_kwh REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists one run summary and returns its row id.
func (s *Store) SaveRun(sum simulate.Summary) (int64, error) {
	query := `INSERT INTO runs
		(created_at, strategy, season, duration_days, seed,
		 total_solar_kwh, total_load_kwh, total_import_kwh, total_export_kwh,
		 net_cost_cents, final_soc_kwh)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.Exec(query, time.Now().UTC(), sum.Strategy, sum.Season,
		sum.DurationDays, sum.Seed,
		sum.TotalSolarKWh, sum.TotalLoadKWh, sum.TotalImportKWh,
		sum.TotalExportKWh, sum.NetCostCents, sum.FinalSoCKWh)
	if err != nil {
		return 0, fmt.Errorf("saving run: %w", err)
	}
	return res.LastInsertId()
}

// ListRuns returns up to limit most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`SELECT id, created_at, strategy, season,
		duration_days, seed, total_solar_kwh, total_load_kwh,
		total_import_kwh, total_export_kwh, net_cost_cents, final_soc_kwh
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Strategy, &r.Season,
			&r.DurationDays, &r.Seed, &r.TotalSolarKWh, &r.TotalLoadKWh,
			&r.TotalImportKWh, &r.TotalExportKWh, &r.NetCostCents,
			&r.FinalSoCKWh); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
