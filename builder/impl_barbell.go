// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/mincut/core"

const (
	methodBarbell    = "Barbell"
	minBarbellClique = 3
)

// Barbell builds two k-cliques on positions [0,k) and [k,2k) joined by the
// single bridge (k-1, k). The bridge is the unique minimum cut.
//
// With the default numbering Barbell(3) is the triangles 1-2-3 and 4-5-6
// joined by 3-4.
// Complexity: O(k²).
func Barbell(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodBarbell, k, minBarbellClique); err != nil {
			return err
		}
		ids := addVertices(g, cfg, 2*k)
		if err := addClique(methodBarbell, g, ids[:k]); err != nil {
			return err
		}
		if err := addClique(methodBarbell, g, ids[k:]); err != nil {
			return err
		}

		return addEdge(methodBarbell, g, ids[k-1], ids[k])
	}
}
