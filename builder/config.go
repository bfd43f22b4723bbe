// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// DefaultFirstID is the value given to the first vertex of every constructor.
const DefaultFirstID = 1

// builderConfig aggregates the knobs used by constructors. It is passed by
// value, so a constructor cannot leak changes to the next one.
type builderConfig struct {
	// idFn maps a vertex position to its value.
	idFn func(int) int
	// rng drives stochastic constructors; nil means none was configured.
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: offsetID(DefaultFirstID),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func offsetID(first int) func(int) int {
	return func(i int) int { return first + i }
}
