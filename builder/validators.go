// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

const (
	minProbability = 0.0
	maxProbability = 1.0
)

// validateMin ensures got ≥ min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}

// validateProbability ensures p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < minProbability || p > maxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%g not in [%.1f,%.1f]", p, minProbability, maxProbability)
	}

	return nil
}

// addVertices adds n vertices numbered by cfg and returns their values.
func addVertices(g *core.Graph, cfg builderConfig, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// addEdge adds u-v, wrapping a core failure with the constructor name.
func addEdge(method string, g *core.Graph, u, v int) error {
	if _, _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}
