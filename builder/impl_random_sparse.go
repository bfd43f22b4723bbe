// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/mincut/core"

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 2
)

// RandomSparse builds a connected random graph: the path 0-1-...-(n-1) plus
// every other pair (i,j), i<j, independently with probability p. Requires
// WithSeed or WithRand.
//
// Pairs are visited in lexicographic order and one draw is made per
// non-path pair, so a fixed seed fixes the graph.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if j == i+1 {
					if err := addEdge(methodRandomSparse, g, ids[i], ids[j]); err != nil {
						return err
					}
					continue
				}
				if cfg.rng.Float64() < p {
					if err := addEdge(methodRandomSparse, g, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
