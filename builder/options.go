// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithFirstID numbers vertices first, first+1, ...
func WithFirstID(first int) BuilderOption {
	return func(c *builderConfig) { c.idFn = offsetID(first) }
}

// WithIDScheme sets an arbitrary position-to-value mapping. The mapping must
// be injective over the positions a constructor uses. Panics on nil.
func WithIDScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
