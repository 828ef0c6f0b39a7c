package simulate

// StepResult is one row of per-step output, immutable once appended.
// This is the primary artifact for "what happened" in a run.
type StepResult struct {
	TimeMin int     `json:"time_min"`
	Day     int     `json:"day"`
	Hour    float64 `json:"hour"`

	CloudCover float64 `json:"cloud_cover"`
	SolarGenKW float64 `json:"solar_gen_kw"`
	LoadKW     float64 `json:"load_kw"`

	BatteryChargeKW    float64 `json:"battery_charge_kw"`
	BatteryDischargeKW float64 `json:"battery_discharge_kw"`
	BatterySoCKWh      float64 `json:"battery_soc_kwh"`

	GridImportKW float64 `json:"grid_import_kw"`
	GridExportKW float64 `json:"grid_export_kw"`
	CurtailedKW  float64 `json:"curtailed_kw"`

	CostCents float64 `json:"cost_cents"`
}

// Summary aggregates a run by reduction over its step sequence.
type Summary struct {
	Steps        int    `json:"steps"`
	DurationDays int    `json:"duration_days"`
	Strategy     string `json:"strategy"`
	Season       string `json:"season"`
	Seed         int64  `json:"seed"`

	TotalSolarKWh     float64 `json:"total_solar_kwh"`
	TotalLoadKWh      float64 `json:"total_load_kwh"`
	TotalImportKWh    float64 `json:"total_import_kwh"`
	TotalExportKWh    float64 `json:"total_export_kwh"`
	TotalCurtailedKWh float64 `json:"total_curtailed_kwh"`
	NetCostCents      float64 `json:"net_cost_cents"`
	FinalSoCKWh       float64 `json:"final_soc_kwh"`
}

// Result is the full outcome of one run.
type Result struct {
	Steps   []StepResult `json:"steps"`
	Summary Summary      `json:"summary"`
}

func summarize(steps []StepResult, stepHours float64) Summary {
	s := Summary{Steps: len(steps)}
	for _, r := range steps {
		s.TotalSolarKWh += r.SolarGenKW * stepHours
		s.TotalLoadKWh += r.LoadKW * stepHours
		s.TotalImportKWh += r.GridImportKW * stepHours
		s.TotalExportKWh += r.GridExportKW * stepHours
		s.TotalCurtailedKWh += r.CurtailedKW * stepHours
		s.NetCostCents += r.CostCents
	}
	if len(steps) > 0 {
		s.FinalSoCKWh = steps[len(steps)-1].BatterySoCKWh
	}
	return s
}
