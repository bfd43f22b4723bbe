// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves vertex indices and edge IDs exactly.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// dedup index and incidence lists. Mutating the clone never affects g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make([]Vertex, len(g.vertices)),
		index:      make(map[int]int, len(g.index)),
		edges:      make([]Edge, len(g.edges)),
		ends:       make([][2]int, len(g.ends)),
		pairs:      make(map[[2]int]int, len(g.pairs)),
		incident:   make([][]int, len(g.incident)),
	}
	copy(clone.vertices, g.vertices)
	for v, idx := range g.index {
		clone.index[v] = idx
	}
	copy(clone.edges, g.edges)
	copy(clone.ends, g.ends)
	for k, eid := range g.pairs {
		clone.pairs[k] = eid
	}
	for i, inc := range g.incident {
		clone.incident[i] = append([]int(nil), inc...)
	}

	return clone
}
