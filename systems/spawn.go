package systems

import (
	"math/rand"

	"github.com/automoto/merge-drop/config"
)

// PickWeightedTier chooses a drop tier in proportion to the configured weights
func PickWeightedTier(r *rand.Rand, weights []config.SpawnWeight) int {
	if len(weights) == 0 {
		return 0
	}
	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return weights[0].Tier
	}

	n := r.Float64() * float64(total)
	for _, w := range weights {
		n -= float64(w.Weight)
		if n <= 0 {
			return w.Tier
		}
	}
	return weights[0].Tier
}
