package model

import (
	"errors"
	"math/rand"
)

// SolarParams defines the solar array and its inverter.
// Units:
// - PanelPeakKW: DC peak output under a clear sky
// - InverterMaxKW: AC clipping ceiling
// - FailureRate: per-step Bernoulli probability of an inverter failure
// - FailureMinHours/FailureMaxHours: uniform bounds for repair time
type SolarParams struct {
	PanelPeakKW     float64
	InverterMaxKW   float64
	FailureRate     float64
	FailureMinHours float64
	FailureMaxHours float64
}

func (p SolarParams) Validate() error {
	if p.PanelPeakKW < 0 {
		return errors.New("PanelPeakKW must be >= 0")
	}
	if p.InverterMaxKW <= 0 {
		return errors.New("InverterMaxKW must be > 0")
	}
	if p.FailureRate < 0 || p.FailureRate > 1 {
		return errors.New("FailureRate must be in [0, 1]")
	}
	if p.FailureMinHours < 0 || p.FailureMaxHours < p.FailureMinHours {
		return errors.New("failure duration bounds must satisfy 0 <= min <= max")
	}
	return nil
}

// SolarArray models the panels plus the inverter, including the inverter's
// stochastic failure state.
type SolarArray struct {
	Params SolarParams

	failed       bool
	remainingMin float64
}

func NewSolarArray(params SolarParams) (*SolarArray, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &SolarArray{Params: params}, nil
}

// Failed reports whether the inverter is currently down.
func (s *SolarArray) Failed() bool { return s.failed }

// RemainingDowntimeMin returns the minutes of downtime left, 0 if healthy.
func (s *SolarArray) RemainingDowntimeMin() float64 {
	if !s.failed {
		return 0
	}
	return s.remainingMin
}

// Tick advances the inverter failure state by one step. It must be called
// exactly once per step, before generation is computed. A failure clears on
// the first tick where the cumulative elapsed minutes reach the drawn
// downtime; a cleared inverter is immediately exposed to a fresh failure
// roll on the same tick.
func (s *SolarArray) Tick(rng *rand.Rand, stepMinutes float64) {
	if s.failed {
		s.remainingMin -= stepMinutes
		if s.remainingMin > 0 {
			return
		}
		s.failed = false
		s.remainingMin = 0
	}
	if s.Params.FailureRate > 0 && rng.Float64() < s.Params.FailureRate {
		s.failed = true
		span := s.Params.FailureMaxHours - s.Params.FailureMinHours
		s.remainingMin = (s.Params.FailureMinHours + rng.Float64()*span) * 60
	}
}

// GenerateACKW converts the current cloud cover into AC power on the bus.
// DC output derates linearly with cloud cover; the inverter clips at its
// rated ceiling and produces nothing while failed.
func (s *SolarArray) GenerateACKW(cloudCover float64) float64 {
	if s.failed {
		return 0
	}
	dc := s.Params.PanelPeakKW * (1 - cloudCover)
	if dc < 0 {
		dc = 0
	}
	if dc > s.Params.InverterMaxKW {
		return s.Params.InverterMaxKW
	}
	return dc
}
