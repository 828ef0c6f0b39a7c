package analysis

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"microgrid-sim/internal/config"
	"microgrid-sim/internal/simulate"
	"microgrid-sim/internal/strategy"
)

// StrategyOutcome is one strategy's aggregate result in a comparison.
type StrategyOutcome struct {
	Strategy string           `json:"strategy"`
	Summary  simulate.Summary `json:"summary"`
}

// CompareStrategies runs the configured scenario once per dispatch strategy
// and ranks the outcomes by net cost, cheapest first. Every run gets its own
// engine, battery, and random source; sharing the seed across runs means all
// strategies face the identical weather and load trace, so the ranking is a
// pure strategy comparison. Runs execute in parallel (no state is shared).
func CompareStrategies(cfg *config.Config) ([]StrategyOutcome, error) {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	names := strategy.Names()
	outcomes := make([]StrategyOutcome, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			run := *cfg
			run.Strategy.Name = name
			run.Simulation.Seed = seed

			eng, err := simulate.FromConfig(&run)
			if err != nil {
				errs[i] = fmt.Errorf("strategy %s: %w", name, err)
				return
			}
			res, err := eng.Run()
			if err != nil {
				errs[i] = fmt.Errorf("strategy %s: %w", name, err)
				return
			}
			outcomes[i] = StrategyOutcome{Strategy: name, Summary: res.Summary}
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Summary.NetCostCents < outcomes[j].Summary.NetCostCents
	})
	return outcomes, nil
}
