// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Values() returns vertex values sorted ascending.
//   - Indices are assigned in insertion order and never change.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Incidence bootstrap under muEdge (lock order muVert → muEdge).
package core

import (
	"sort"

	"golang.org/x/exp/maps"
)

// AddVertex inserts the vertex with the given value if missing and returns
// its arena index. Adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(value int) int {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	return g.addVertexLocked(value)
}

// addVertexLocked requires muVert held for writing.
func (g *Graph) addVertexLocked(value int) int {
	if idx, ok := g.index[value]; ok {
		return idx
	}
	idx := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{Value: value, Index: idx})
	g.index[value] = idx

	g.muEdge.Lock()
	g.incident = append(g.incident, nil)
	g.muEdge.Unlock()

	return idx
}

// HasVertex reports whether a vertex with the given value exists.
// Complexity: O(1)
func (g *Graph) HasVertex(value int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.index[value]

	return ok
}

// IndexOf returns the arena index of value, or ErrVertexNotFound.
// Complexity: O(1)
func (g *Graph) IndexOf(value int) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	idx, ok := g.index[value]
	if !ok {
		return -1, ErrVertexNotFound
	}

	return idx, nil
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Vertices returns a copy of the vertex arena in index order.
// Complexity: O(V)
func (g *Graph) Vertices() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Values returns all vertex values sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Values() []int {
	g.muVert.RLock()
	vals := maps.Keys(g.index)
	g.muVert.RUnlock()
	sort.Ints(vals)

	return vals
}

// Neighbors returns the distinct neighbor values of v, sorted ascending.
// A vertex with a self-loop lists itself.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(value int) ([]int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	idx, ok := g.index[value]
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	seen := make(map[int]struct{}, len(g.incident[idx]))
	for _, eid := range g.incident[idx] {
		other := g.ends[eid][0]
		if other == idx {
			other = g.ends[eid][1]
		}
		seen[g.vertices[other].Value] = struct{}{}
	}
	out := maps.Keys(seen)
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edge endpoints at v. A self-loop contributes
// two, so the degree sum over all vertices is always 2·|E|.
//
// Complexity: O(d).
func (g *Graph) Degree(value int) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	idx, ok := g.index[value]
	if !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	deg := 0
	for _, eid := range g.incident[idx] {
		deg++
		if g.ends[eid][0] == g.ends[eid][1] {
			deg++
		}
	}

	return deg, nil
}
