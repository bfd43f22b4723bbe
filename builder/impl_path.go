// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/mincut/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the simple path P_n; every edge is a bridge.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
