package environment

import (
	"math/rand"

	"microgrid-sim/internal/model"
)

// LoadProfile samples the household demand for a step.
type LoadProfile struct {
	Params model.LoadParams
}

// Sample returns the instantaneous demand in kW for the given hour of day:
// the base load, plus a uniform spike in [0, PeakLoadKW) when the hour falls
// inside the peak window. The result is never below the base load.
func (p LoadProfile) Sample(rng *rand.Rand, hourOfDay float64) float64 {
	load := p.Params.BaseLoadKW
	if inPeakWindow(hourOfDay, p.Params.PeakStartHour, p.Params.PeakEndHour) {
		load += rng.Float64() * p.Params.PeakLoadKW
	}
	return load
}

// inPeakWindow checks whether hour lies in [start, end) on a 24h clock.
// If start == end, the window is empty (always false).
// If start > end, it wraps across midnight.
func inPeakWindow(hour float64, start, end int) bool {
	s, e := float64(start), float64(end)
	if s == e {
		return false
	}
	if s < e {
		return hour >= s && hour < e
	}
	// wrap
	return hour >= s || hour < e
}
