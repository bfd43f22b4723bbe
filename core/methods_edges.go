// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc (insertion order).
// Concurrency:
//   - Mutations under muEdge write lock, after endpoints are ensured under muVert.
//   - Read queries under read locks.

package core

// AddEdge connects the vertices with values from and to, creating missing
// vertices on demand. The pair is unordered: if an edge between the same two
// vertices already exists (in either orientation) AddEdge returns its ID with
// added == false.
//
// Steps:
//  1. Reject from == to unless WithLoops() (ErrLoopNotAllowed).
//  2. Ensure both endpoints under muVert.
//  3. Under muEdge, look up the canonical index pair; append if absent.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) (id int, added bool, err error) {
	if from == to && !g.allowLoops {
		return -1, false, ErrLoopNotAllowed
	}

	g.muVert.Lock()
	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)
	g.muVert.Unlock()

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	key := canonical(u, v)
	if eid, ok := g.pairs[key]; ok {
		return eid, false, nil
	}

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to})
	g.ends = append(g.ends, [2]int{u, v})
	g.pairs[key] = eid
	g.incident[u] = append(g.incident[u], eid)
	if u != v {
		g.incident[v] = append(g.incident[v], eid)
	}

	return eid, true, nil
}

// HasEdge reports whether u and v are adjacent (orientation ignored).
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ui, ok := g.index[u]
	if !ok {
		return false
	}
	vi, ok := g.index[v]
	if !ok {
		return false
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok = g.pairs[canonical(ui, vi)]

	return ok
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of all edges in ID order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
