package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"microgrid-sim/internal/model"
	"microgrid-sim/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). The same shape is
// accepted as JSON by the HTTP API.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
	Battery    BatteryConfig    `yaml:"battery" json:"battery"`
	Solar      SolarConfig      `yaml:"solar" json:"solar"`
	Load       LoadConfig       `yaml:"load" json:"load"`
	Grid       GridConfig       `yaml:"grid" json:"grid"`
	Strategy   StrategyConfig   `yaml:"strategy" json:"strategy"`
	Output     OutputConfig     `yaml:"output" json:"output"`
}

type SimulationConfig struct {
	DurationDays    int    `yaml:"duration_days" json:"duration_days"`
	TimeStepMinutes int    `yaml:"time_step_minutes" json:"time_step_minutes"`
	Season          string `yaml:"season" json:"season"`
	StartDate       string `yaml:"start_date" json:"start_date"`
	// Seed drives every stochastic draw of the run. 0 means derive a seed
	// from the wall clock (non-reproducible).
	Seed int64 `yaml:"seed" json:"seed"`
}

type BatteryConfig struct {
	Capacity       float64 `yaml:"capacity" json:"capacity"`
	InitialState   float64 `yaml:"initial_state" json:"initial_state"`
	Efficiency     float64 `yaml:"efficiency" json:"efficiency"`
	DischargeDepth float64 `yaml:"discharge_depth" json:"discharge_depth"`
}

type SolarConfig struct {
	PanelPeakKW             float64 `yaml:"panel_peak_kw" json:"panel_peak_kw"`
	InverterMaxKW           float64 `yaml:"inverter_max_kw" json:"inverter_max_kw"`
	InverterFailureRate     float64 `yaml:"inverter_failure_rate" json:"inverter_failure_rate"`
	FailureDurationMinHours float64 `yaml:"failure_duration_min_hours" json:"failure_duration_min_hours"`
	FailureDurationMaxHours float64 `yaml:"failure_duration_max_hours" json:"failure_duration_max_hours"`
}

type LoadConfig struct {
	BaseLoadKW    float64 `yaml:"base_load_kw" json:"base_load_kw"`
	PeakLoadKW    float64 `yaml:"peak_load_kw" json:"peak_load_kw"`
	PeakStartHour int     `yaml:"peak_start_hour" json:"peak_start_hour"`
	PeakEndHour   int     `yaml:"peak_end_hour" json:"peak_end_hour"`
}

type GridConfig struct {
	ExportLimitKW    float64 `yaml:"export_limit_kw" json:"export_limit_kw"`
	CostImportCents  float64 `yaml:"cost_import_cents" json:"cost_import_cents"`
	PriceExportCents float64 `yaml:"price_export_cents" json:"price_export_cents"`
}

type StrategyConfig struct {
	Name string `yaml:"name" json:"name"`
}

type OutputConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validation. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills unset fields with the stock residential scenario.
// Zero is a meaningful value for discharge_depth, panel_peak_kw, and the
// grid fields, so those are left alone.
func (c *Config) ApplyDefaults() {
	if c.Simulation.DurationDays == 0 {
		c.Simulation.DurationDays = 7
	}
	if c.Simulation.TimeStepMinutes == 0 {
		c.Simulation.TimeStepMinutes = 60
	}
	if c.Simulation.Season == "" {
		c.Simulation.Season = string(model.SeasonSummer)
	}
	if c.Battery.Capacity == 0 {
		c.Battery.Capacity = 13.5
	}
	if c.Battery.Efficiency == 0 {
		c.Battery.Efficiency = 0.90
	}
	// If initial_state is not provided, default it to the discharge floor.
	// This keeps configs concise and never starts below the usable range.
	if c.Battery.InitialState == 0 {
		c.Battery.InitialState = c.Battery.DischargeDepth
	}
	if c.Solar.InverterMaxKW == 0 {
		c.Solar.InverterMaxKW = 4.0
	}
	if c.Solar.FailureDurationMaxHours == 0 {
		c.Solar.FailureDurationMinHours = 4
		c.Solar.FailureDurationMaxHours = 72
	}
	if c.Strategy.Name == "" {
		c.Strategy.Name = strategy.NameLoadPriority
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "results"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Simulation.DurationDays <= 0 {
		return errors.New("simulation.duration_days must be > 0")
	}
	if c.Simulation.TimeStepMinutes <= 0 || c.Simulation.TimeStepMinutes > 1440 {
		return errors.New("simulation.time_step_minutes must be in (0, 1440]")
	}
	if _, err := model.ParseSeason(c.Simulation.Season); err != nil {
		return fmt.Errorf("simulation.season: %w", err)
	}
	if c.Simulation.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Simulation.StartDate); err != nil {
			return fmt.Errorf("simulation.start_date must be YYYY-MM-DD: %w", err)
		}
	}
	if _, err := c.ToBattery(); err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	if err := c.ToSolarParams().Validate(); err != nil {
		return fmt.Errorf("solar config invalid: %w", err)
	}
	if err := c.ToLoadParams().Validate(); err != nil {
		return fmt.Errorf("load config invalid: %w", err)
	}
	if err := c.ToGridParams().Validate(); err != nil {
		return fmt.Errorf("grid config invalid: %w", err)
	}
	if _, err := strategy.FromName(c.Strategy.Name); err != nil {
		return fmt.Errorf("strategy config invalid: %w", err)
	}
	return nil
}

func (c *Config) ToBattery() (*model.Battery, error) {
	return model.NewBattery(model.BatteryParams{
		CapacityKWh:         c.Battery.Capacity,
		RoundTripEfficiency: c.Battery.Efficiency,
		DischargeDepth:      c.Battery.DischargeDepth,
	}, c.Battery.InitialState)
}

func (c *Config) ToSolarParams() model.SolarParams {
	return model.SolarParams{
		PanelPeakKW:     c.Solar.PanelPeakKW,
		InverterMaxKW:   c.Solar.InverterMaxKW,
		FailureRate:     c.Solar.InverterFailureRate,
		FailureMinHours: c.Solar.FailureDurationMinHours,
		FailureMaxHours: c.Solar.FailureDurationMaxHours,
	}
}

func (c *Config) ToLoadParams() model.LoadParams {
	return model.LoadParams{
		BaseLoadKW:    c.Load.BaseLoadKW,
		PeakLoadKW:    c.Load.PeakLoadKW,
		PeakStartHour: c.Load.PeakStartHour,
		PeakEndHour:   c.Load.PeakEndHour,
	}
}

func (c *Config) ToGridParams() model.GridParams {
	return model.GridParams{
		ExportLimitKW:    c.Grid.ExportLimitKW,
		CostImportCents:  c.Grid.CostImportCents,
		PriceExportCents: c.Grid.PriceExportCents,
	}
}
