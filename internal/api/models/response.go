package models

import (
	"microgrid-sim/internal/analysis"
	"microgrid-sim/internal/simulate"
)

type SimulateResponse struct {
	Summary simulate.Summary      `json:"summary"`
	Steps   []simulate.StepResult `json:"steps,omitempty"`
	RunID   int64                 `json:"run_id,omitempty"`
}

type CompareResponse struct {
	Seed     int64                      `json:"seed"`
	Outcomes []analysis.StrategyOutcome `json:"outcomes"`
}

// StrategyInfo describes one dispatch strategy for discovery endpoints.
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
