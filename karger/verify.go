// SPDX-License-Identifier: MIT

// Package karger - independent cut checks on top of gonum.
package karger

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/mincut/core"
)

// toGonum converts g to a gonum undirected graph keyed by vertex value,
// leaving out self-loops and any edge whose unordered key is in skip.
func toGonum(g *core.Graph, skip map[[2]int]struct{}) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, v := range g.Values() {
		ug.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if _, cut := skip[e.Key()]; cut {
			continue
		}
		ug.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
	}

	return ug
}

// Components returns the number of connected components of g.
// Complexity: O(V + E).
func Components(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return len(topo.ConnectedComponents(toGonum(g, nil)))
}

// VerifyCut checks that c is a genuine cut of g:
//   - Size matches the number of edges and every edge exists in g;
//   - removing the edges leaves at least two connected components
//     (graphs with fewer than two vertices only admit the empty cut);
//   - when Sides are populated, they cover every vertex, each component
//     lies within one side, and every cut edge crosses the sides.
//
// Complexity: O(V + E).
func VerifyCut(g *core.Graph, c Cut) error {
	if g == nil {
		return ErrGraphNil
	}
	if c.Size != len(c.Edges) {
		return fmt.Errorf("%w: size %d but %d edges", ErrNotACut, c.Size, len(c.Edges))
	}

	skip := make(map[[2]int]struct{}, len(c.Edges))
	for _, e := range c.Edges {
		if !g.HasEdge(e.From, e.To) {
			return fmt.Errorf("%w: %v", ErrUnknownEdge, e)
		}
		skip[e.Key()] = struct{}{}
	}

	if g.VertexCount() < 2 {
		if c.Size != 0 {
			return fmt.Errorf("%w: %d-vertex graph has only the empty cut", ErrNotACut, g.VertexCount())
		}
		return nil
	}

	comps := topo.ConnectedComponents(toGonum(g, skip))
	if len(comps) < 2 {
		return fmt.Errorf("%w: graph stays connected without the %d cut edges", ErrNotACut, c.Size)
	}

	if len(c.Sides[0]) == 0 && len(c.Sides[1]) == 0 {
		return nil
	}

	if len(c.Sides[0]) == 0 || len(c.Sides[1]) == 0 {
		return fmt.Errorf("%w: one side is empty", ErrNotACut)
	}
	side := make(map[int]int, g.VertexCount())
	for s := range c.Sides {
		for _, v := range c.Sides[s] {
			side[v] = s
		}
	}
	if len(side) != g.VertexCount() {
		return fmt.Errorf("%w: sides cover %d of %d vertices", ErrNotACut, len(side), g.VertexCount())
	}
	for _, comp := range comps {
		want, ok := side[int(comp[0].ID())]
		if !ok {
			return fmt.Errorf("%w: vertex %d missing from sides", ErrNotACut, comp[0].ID())
		}
		for _, n := range comp[1:] {
			if s, ok := side[int(n.ID())]; !ok || s != want {
				return fmt.Errorf("%w: component of %d spans both sides", ErrNotACut, comp[0].ID())
			}
		}
	}
	for _, e := range c.Edges {
		if side[e.From] == side[e.To] {
			return fmt.Errorf("%w: edge %v does not cross the sides", ErrNotACut, e)
		}
	}

	return nil
}
