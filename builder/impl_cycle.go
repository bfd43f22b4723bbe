// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/mincut/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the simple cycle C_n. Every cut of a cycle crosses at least
// two edges, and any two edges form a minimum cut.
//
// Edges are emitted as (0,1), (1,2), ..., (n-1,0) in vertex positions.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
