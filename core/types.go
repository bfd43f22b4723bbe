// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, Edge and Row types.
//
// This file declares the types, sentinel errors, GraphOption and the
// NewGraph constructor.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is a node of the graph.
type Vertex struct {
	// Value is the caller-visible identifier read from the input.
	Value int

	// Index is the dense arena position, assigned in insertion order.
	Index int
}

// Edge is an unordered connection between two vertices.
//
// From and To hold vertex values in the order the edge was first seen;
// the edge itself has no direction.
type Edge struct {
	// ID is the insertion position of the edge in its Graph.
	ID int

	// From is the vertex whose adjacency row introduced the edge.
	From int

	// To is the other endpoint.
	To int
}

// Same reports whether e and o connect the same pair of vertices,
// regardless of orientation.
func (e Edge) Same(o Edge) bool {
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// Key returns the endpoint values in ascending order.
func (e Edge) Key() [2]int {
	if e.From <= e.To {
		return [2]int{e.From, e.To}
	}

	return [2]int{e.To, e.From}
}

// String renders the edge as "from-to".
func (e Edge) String() string {
	b := make([]byte, 0, 24)
	b = strconv.AppendInt(b, int64(e.From), 10)
	b = append(b, '-')
	b = strconv.AppendInt(b, int64(e.To), 10)

	return string(b)
}

// Row is one adjacency line: a vertex followed by its neighbors.
type Row struct {
	Vertex    int
	Neighbors []int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (rows listing a vertex as its own neighbor).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, unweighted graph over integer-valued vertices.
//
// muVert protects vertices and index; muEdge protects edges, ends, pairs
// and incident. Edges are never removed, so edge IDs are dense.
type Graph struct {
	muVert sync.RWMutex // guards vertices, index
	muEdge sync.RWMutex // guards edges, ends, pairs, incident

	allowLoops bool

	vertices []Vertex   // arena index → Vertex
	index    map[int]int // vertex value → arena index

	edges    []Edge         // edge ID → Edge
	ends     [][2]int       // edge ID → (from index, to index)
	pairs    map[[2]int]int // canonical (lo, hi) index pair → edge ID
	incident [][]int        // arena index → incident edge IDs
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int]int),
		pairs: make(map[[2]int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are accepted.
func (g *Graph) Looped() bool { return g.allowLoops }

// canonical orders an index pair so that (u,v) and (v,u) share one key.
func canonical(u, v int) [2]int {
	if u <= v {
		return [2]int{u, v}
	}

	return [2]int{v, u}
}
