// Package environment generates the stochastic inputs to a run: cloud cover
// and household load. All sampling draws from an explicit *rand.Rand owned
// by the caller, so runs are reproducible given a seed and parallel runs
// stay isolated.
package environment

import (
	"math/rand"

	"microgrid-sim/internal/model"
)

// cloudBands are the cover ranges for the four weather categories:
// clear, partly cloudy, mostly cloudy, overcast.
var cloudBands = [4][2]float64{
	{0.0, 0.2},
	{0.2, 0.6},
	{0.6, 0.8},
	{0.8, 1.0},
}

// seasonWeights are the per-season selection weights over the four
// categories, in band order.
var seasonWeights = map[model.Season][4]float64{
	model.SeasonSpring: {0.1, 0.3, 0.4, 0.2},
	model.SeasonSummer: {0.05, 0.15, 0.3, 0.5},
	model.SeasonFall:   {0.2, 0.4, 0.3, 0.1},
	model.SeasonWinter: {0.3, 0.4, 0.2, 0.1},
}

// Weather samples cloud cover for a season.
type Weather struct {
	Season model.Season
}

// Sample draws one cloud-cover value in [0, 1]: a weighted category pick
// followed by a uniform draw inside the category's band. Unknown seasons
// fall back to uniform category weights.
func (w Weather) Sample(rng *rand.Rand) float64 {
	weights, ok := seasonWeights[w.Season]
	if !ok {
		weights = [4]float64{0.25, 0.25, 0.25, 0.25}
	}

	total := 0.0
	for _, wt := range weights {
		total += wt
	}
	pick := rng.Float64() * total

	band := cloudBands[len(cloudBands)-1]
	for i, wt := range weights {
		if pick < wt {
			band = cloudBands[i]
			break
		}
		pick -= wt
	}

	return band[0] + rng.Float64()*(band[1]-band[0])
}
