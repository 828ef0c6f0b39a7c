package models

import "microgrid-sim/internal/config"

// SimulateRequest carries a full scenario configuration (same shape as the
// YAML config file, as JSON). Missing fields get the stock defaults.
type SimulateRequest struct {
	Config config.Config `json:"config"`

	// IncludeSteps returns the full per-step ledger, not just the summary.
	IncludeSteps bool `json:"include_steps"`

	// Save persists the run summary to the run-history store.
	Save bool `json:"save"`
}

// CompareRequest runs the scenario under every strategy.
type CompareRequest struct {
	Config config.Config `json:"config"`
}
