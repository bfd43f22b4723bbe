// SPDX-License-Identifier: MIT

// File: adjacency_list.go
// Role: Conversion between adjacency rows and Graph.
// Determinism:
//   - AddRows processes rows and neighbors in input order, so edge IDs follow
//     the order edges are first seen.
//   - Rows() lists vertices by ascending value and neighbors by edge ID.

package core

import (
	"fmt"
	"sort"
)

// FromRows builds a Graph from adjacency rows.
//
// Every row vertex is added even if its neighbor list is empty. Neighbors
// that never appear as a row vertex are created on demand. An edge listed
// from both endpoints is stored once.
//
// Complexity: O(Σ|row|) amortized.
func FromRows(rows []Row, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.AddRows(rows); err != nil {
		return nil, err
	}

	return g, nil
}

// AddRows adds every row to g. The first failing row aborts the call; rows
// before it remain applied.
func (g *Graph) AddRows(rows []Row) error {
	for i, row := range rows {
		g.AddVertex(row.Vertex)
		for _, nb := range row.Neighbors {
			if _, _, err := g.AddEdge(row.Vertex, nb); err != nil {
				return fmt.Errorf("core: row %d (vertex %d): %w", i+1, row.Vertex, err)
			}
		}
	}

	return nil
}

// Rows renders g as adjacency rows: one row per vertex in ascending value
// order, each edge listed once under its From vertex.
//
// Complexity: O(V log V + E).
func (g *Graph) Rows() []Row {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	byValue := make(map[int]*Row, len(g.vertices))
	out := make([]Row, len(g.vertices))
	order := make([]int, len(g.vertices))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return g.vertices[order[a]].Value < g.vertices[order[b]].Value
	})
	for pos, idx := range order {
		out[pos] = Row{Vertex: g.vertices[idx].Value}
		byValue[out[pos].Vertex] = &out[pos]
	}
	for _, e := range g.edges {
		r := byValue[e.From]
		r.Neighbors = append(r.Neighbors, e.To)
	}

	return out
}
