// SPDX-License-Identifier: MIT

// File: view.go
// Role: Non-mutating read-only snapshots of a Graph.
// Determinism:
//   - Arena preserves vertex indices and edge IDs.
//   - Fingerprint depends only on the vertex set and the unordered edge set,
//     never on insertion order.
// Concurrency:
//   - Read locks on source; results share no memory with the Graph.

package core

import (
	"sort"

	"tailscale.com/util/deephash"
)

// Arena is an immutable, index-addressed snapshot of a Graph, sized for
// algorithms that allocate per-run state (union-find, edge multisets) over
// dense indices. It is safe to share one Arena between goroutines as long
// as nobody writes to its slices.
type Arena struct {
	// Values maps arena index → vertex value.
	Values []int

	// Ends maps edge ID → endpoint arena indices (from, to).
	Ends [][2]int
}

// Arena returns a snapshot of g's vertices and edge endpoints.
// Complexity: O(V + E)
func (g *Graph) Arena() Arena {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	a := Arena{
		Values: make([]int, len(g.vertices)),
		Ends:   make([][2]int, len(g.ends)),
	}
	for i, v := range g.vertices {
		a.Values[i] = v.Value
	}
	copy(a.Ends, g.ends)

	return a
}

// Edge reconstructs the Edge with the given ID.
func (a Arena) Edge(id int) Edge {
	return Edge{ID: id, From: a.Values[a.Ends[id][0]], To: a.Values[a.Ends[id][1]]}
}

// Len returns the number of vertices.
func (a Arena) Len() int { return len(a.Values) }

// fingerprint is the canonical form hashed by Fingerprint.
type fingerprint struct {
	Loops  bool
	Values []int
	Edges  [][2]int
}

// Fingerprint returns a content hash of g: two graphs with the same vertex
// values, the same unordered edges and the same loop policy hash equally,
// whatever order their rows were added in.
//
// Complexity: O(V log V + E log E)
func (g *Graph) Fingerprint() deephash.Sum {
	fp := fingerprint{Loops: g.allowLoops, Values: g.Values()}

	edges := g.Edges()
	fp.Edges = make([][2]int, len(edges))
	for i, e := range edges {
		fp.Edges[i] = e.Key()
	}
	sort.Slice(fp.Edges, func(i, j int) bool {
		if fp.Edges[i][0] != fp.Edges[j][0] {
			return fp.Edges[i][0] < fp.Edges[j][0]
		}
		return fp.Edges[i][1] < fp.Edges[j][1]
	})

	return deephash.Hash(&fp)
}
