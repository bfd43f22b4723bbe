// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/mincut/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n. Its minimum cut isolates one vertex and has n-1 edges.
//
// Pairs are emitted in lexicographic (i,j), i<j, order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)

		return addClique(methodComplete, g, ids)
	}
}

// addClique joins every pair of ids.
func addClique(method string, g *core.Graph, ids []int) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(method, g, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
