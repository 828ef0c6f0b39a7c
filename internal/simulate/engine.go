// Package simulate drives the step-by-step microgrid run: it owns the
// simulation clock, the random source, and the ordered ledger of step
// results. Each step depends on the previous step's battery state, so a run
// is strictly sequential; independent runs (parameter sweeps) get their own
// engine, battery, and seeded random source.
package simulate

import (
	"fmt"
	"math/rand"
	"time"

	"microgrid-sim/internal/config"
	"microgrid-sim/internal/environment"
	"microgrid-sim/internal/model"
	"microgrid-sim/internal/strategy"
)

const minutesPerDay = 1440

// Params are the engine-level knobs of a run.
type Params struct {
	DurationDays    int
	TimeStepMinutes int
	Season          model.Season
	// Seed of 0 derives a seed from the wall clock.
	Seed int64
}

// Engine wires the environment, the physical components, and the dispatch
// strategy into the per-step pipeline.
type Engine struct {
	params  Params
	rng     *rand.Rand
	seed    int64
	weather environment.Weather
	loads   environment.LoadProfile
	solar   *model.SolarArray
	battery *model.Battery
	grid    model.GridParams
	strat   strategy.Strategy

	// onStep, if set, observes each row as it is produced.
	onStep func(StepResult)
}

func New(p Params, battery *model.Battery, solar *model.SolarArray, loads environment.LoadProfile, grid model.GridParams, strat strategy.Strategy) (*Engine, error) {
	if battery == nil {
		return nil, fmt.Errorf("battery is nil")
	}
	if solar == nil {
		return nil, fmt.Errorf("solar array is nil")
	}
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if p.DurationDays <= 0 {
		return nil, fmt.Errorf("duration must be > 0 days")
	}
	if p.TimeStepMinutes <= 0 || p.TimeStepMinutes > minutesPerDay {
		return nil, fmt.Errorf("time step must be in (0, %d] minutes", minutesPerDay)
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		params:  p,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		weather: environment.Weather{Season: p.Season},
		loads:   loads,
		solar:   solar,
		battery: battery,
		grid:    grid,
		strat:   strat,
	}, nil
}

// FromConfig assembles an engine from a validated configuration.
func FromConfig(cfg *config.Config) (*Engine, error) {
	season, err := model.ParseSeason(cfg.Simulation.Season)
	if err != nil {
		return nil, err
	}
	battery, err := cfg.ToBattery()
	if err != nil {
		return nil, err
	}
	solar, err := model.NewSolarArray(cfg.ToSolarParams())
	if err != nil {
		return nil, err
	}
	strat, err := strategy.FromName(cfg.Strategy.Name)
	if err != nil {
		return nil, err
	}
	return New(Params{
		DurationDays:    cfg.Simulation.DurationDays,
		TimeStepMinutes: cfg.Simulation.TimeStepMinutes,
		Season:          season,
		Seed:            cfg.Simulation.Seed,
	}, battery, solar, environment.LoadProfile{Params: cfg.ToLoadParams()}, cfg.ToGridParams(), strat)
}

// Seed returns the seed actually driving this engine's random source.
func (e *Engine) Seed() int64 { return e.seed }

// OnStep registers an observer called once per completed step, in order,
// before Run returns. Used for live streaming.
func (e *Engine) OnStep(fn func(StepResult)) { e.onStep = fn }

// Run executes the whole simulation and returns the ordered ledger plus the
// aggregate summary. The loop terminates once the simulated clock reaches
// duration_days worth of minutes.
func (e *Engine) Run() (*Result, error) {
	totalMin := e.params.DurationDays * minutesPerDay
	stepMin := e.params.TimeStepMinutes
	stepHours := float64(stepMin) / 60

	steps := make([]StepResult, 0, totalMin/stepMin+1)

	for t := 0; t < totalMin; t += stepMin {
		day := t / minutesPerDay
		hour := float64(t%minutesPerDay) / 60

		cloud := e.weather.Sample(e.rng)

		// Failure check and downtime decrement happen exactly once per
		// step, before generation.
		e.solar.Tick(e.rng, float64(stepMin))
		gen := e.solar.GenerateACKW(cloud)

		load := e.loads.Sample(e.rng, hour)

		alloc := e.strat.Allocate(strategy.Context{
			GenerationKW: gen,
			LoadKW:       load,
			Battery:      e.battery,
			Grid:         e.grid,
			StepHours:    stepHours,
		})

		if alloc.BatteryChargeKW > 0 {
			e.battery.Charge(alloc.BatteryChargeKW, stepHours)
		}
		if alloc.BatteryDischargeKW > 0 {
			e.battery.Discharge(alloc.BatteryDischargeKW, stepHours)
		}

		row := StepResult{
			TimeMin:            t,
			Day:                day,
			Hour:               hour,
			CloudCover:         cloud,
			SolarGenKW:         gen,
			LoadKW:             load,
			BatteryChargeKW:    alloc.BatteryChargeKW,
			BatteryDischargeKW: alloc.BatteryDischargeKW,
			BatterySoCKWh:      e.battery.State.SoCKWh,
			GridImportKW:       alloc.GridImportKW,
			GridExportKW:       alloc.GridExportKW,
			CurtailedKW:        alloc.CurtailedKW,
			CostCents:          e.grid.StepCostCents(alloc.GridImportKW, alloc.GridExportKW, stepHours),
		}
		steps = append(steps, row)
		if e.onStep != nil {
			e.onStep(row)
		}
	}

	sum := summarize(steps, stepHours)
	sum.DurationDays = e.params.DurationDays
	sum.Strategy = e.strat.Name()
	sum.Season = string(e.params.Season)
	sum.Seed = e.seed

	return &Result{Steps: steps, Summary: sum}, nil
}
