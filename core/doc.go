// SPDX-License-Identifier: MIT

// Package core provides the in-memory, thread-safe undirected Graph used as
// input to the contraction algorithms.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are identified by integer values and stored in a dense arena;
//     each vertex gets a stable Index in insertion order.
//   - Edges are unordered pairs. AddEdge deduplicates by the canonical
//     (lo, hi) index pair, so (u,v) and (v,u) collapse to one edge and
//     adjacency rows may list an edge from either endpoint or both.
//   - Edge.ID is the edge's insertion position (0, 1, 2, …).
//   - Self-loops are rejected unless WithLoops() is set.
//   - Separate sync.RWMutex for vertices (muVert) and edges (muEdge);
//     lock order is always muVert → muEdge.
//
// Building:
//
//	g, err := core.FromRows([]core.Row{
//	    {Vertex: 1, Neighbors: []int{2, 4}},
//	    {Vertex: 2, Neighbors: []int{1, 3}},
//	    {Vertex: 3, Neighbors: []int{2, 4}},
//	})
//
// Core Methods:
//
//	AddVertex(v int) int                         // O(1)
//	AddEdge(u, v int) (id int, added bool, err)  // O(1) amortized
//	AddRows(rows []Row) error                    // O(Σ|row|)
//	HasVertex / HasEdge / IndexOf                // O(1)
//	Neighbors(v) ([]int, error)                  // O(d log d)
//	Degree(v) (int, error)                       // O(d)
//	Values() []int                               // O(V log V), ascending
//	Edges() []Edge                               // O(E), by ID
//	Rows() []Row                                 // O(V log V + E)
//	Arena() Arena                                // O(V+E) read-only snapshot
//	Clone() *Graph                               // O(V+E) deep copy
//	Fingerprint() deephash.Sum                   // O(V log V + E log E)
//
// Errors:
//
//	ErrVertexNotFound: missing vertex
//	ErrLoopNotAllowed: self-loop when loops are disabled
package core
