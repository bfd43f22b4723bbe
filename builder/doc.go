// Package builder generates test and benchmark graphs for the karger package
// in the functional-options style: a Constructor adds a fixed topology to a
// *core.Graph, and BuilderOption values tune the vertex numbering and the
// random source.
//
// Topologies:
//   - Cycle(n):          C_n, min cut 2 (n ≥ 3).
//   - Path(n):           P_n, min cut 1 (n ≥ 2).
//   - Complete(n):       K_n, min cut n-1 (n ≥ 1).
//   - Barbell(k):        two K_k joined by one bridge, min cut 1 (k ≥ 3).
//   - RandomSparse(n,p): a spanning path plus each other pair with
//     probability p; always connected (n ≥ 2, p ∈ [0,1]).
//
// Vertex values are firstID+i for the i-th vertex of a constructor;
// firstID defaults to 1 so generated graphs read like hand-written
// adjacency lists. Constructors emit edges in a fixed order, so equal
// inputs (including the seed) produce identical graphs.
//
// Options panic on meaningless arguments. Constructors never panic; they
// return errors wrapping ErrTooFewVertices, ErrInvalidProbability or
// ErrNeedRandSource.
package builder
