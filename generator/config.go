package generator

import (
	"math/rand"
)

// Fixed endurance tiers of the military network.
const (
	// HeadquartersEndurance is the removal cost of headquarters.
	HeadquartersEndurance = 10000
	// SecureEndurance applies to every vertex adjacent to headquarters.
	SecureEndurance = 100
)

// DefaultCells is the default grid size (a 10×10 grid).
const DefaultCells = 100

// defaultSeed is used when no RNG option is supplied.
const defaultSeed int64 = 1

// enduranceTiers are the endurance values of ordinary military units.
var enduranceTiers = [3]int{1, 2, 3}

// genConfig aggregates all generator knobs. Defaults are deterministic.
type genConfig struct {
	rng              *rand.Rand
	enduranceWeights [3]float64
	separation       int
	separationSet    bool
}

// newGenConfig applies opts over the defaults, last option wins.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		enduranceWeights: [3]float64{0.2, 0.2, 0.6},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// drawEndurance picks 1, 2 or 3 according to the configured weights.
func (c *genConfig) drawEndurance() int {
	total := c.enduranceWeights[0] + c.enduranceWeights[1] + c.enduranceWeights[2]
	u := c.rng.Float64() * total
	acc := 0.0
	for i, w := range c.enduranceWeights {
		acc += w
		if u < acc {
			return enduranceTiers[i]
		}
	}
	// Only reachable through float rounding at the top of the range;
	// return the last tier with positive weight.
	for i := len(c.enduranceWeights) - 1; i >= 0; i-- {
		if c.enduranceWeights[i] > 0 {
			return enduranceTiers[i]
		}
	}

	return enduranceTiers[len(enduranceTiers)-1]
}
