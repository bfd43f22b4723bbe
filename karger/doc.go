// SPDX-License-Identifier: MIT

// Package karger computes an approximate global minimum edge cut of an
// undirected, unweighted *core.Graph by randomized edge contraction.
//
// What & Why
//
//   - A cut splits the vertex set into two nonempty sides; its size is the
//     number of edges crossing between them. The minimum cut measures how
//     well connected a network is: the fewest links whose failure splits it.
//
//   - Karger's algorithm repeatedly picks a uniformly random remaining edge,
//     merges its endpoints into one super-vertex and drops the edges that
//     became self-loops, until two super-vertices remain. The edges left are
//     the crossing edges of the cut that trial found.
//
//   - One trial finds a particular minimum cut with probability at least
//     2/(n(n−1)); running about n²·ln n independent trials and keeping the
//     best makes failure unlikely. A returned cut is always a real cut, so
//     the answer can overestimate the minimum but never underestimate it.
//
// Algorithms Provided
//
//   - Contract(g, src, opts...) (Cut, error)
//     One trial driven by the random source src.
//     Time: O(n·E) (the self-loop purge after each of the n−2 merges scans
//     the remaining edges). Memory: O(V + E).
//
//   - MinCut(g, iterations, opts...) (Cut, error)
//     Runs exactly iterations trials on a worker pool and keeps the smallest
//     cut; ties go to the lowest trial index.
//
//   - ComputeMinCut(rows, iterations, opts...) (Cut, error)
//     Builds the graph from adjacency rows, then calls MinCut.
//
//   - VerifyCut(g, c) error / Components(g) int
//     Independent checks on top of gonum: a reported cut must disconnect g.
//
// Determinism
//
//	Trial t draws from its own stream seeded by mixing (Seed, t), so the same
//	seed gives the same Cut whatever the worker count. WithSourceFactory
//	replaces the streams, e.g. with a scripted Source in tests.
//
// Error Conditions
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrInvalidIterations iterations <= 0 (checked before any trial)
//   - ErrInvariantViolated contraction bookkeeping broke; the run is aborted
//   - ErrUnknownEdge       VerifyCut: a cut edge does not exist in g
//   - ErrNotACut           VerifyCut: removing the edges leaves g connected
//     or the sides disagree with the edges
//   - context.Canceled / context.DeadlineExceeded, checked between trials
//
// Degenerate inputs have a defined answer: a graph with fewer than two
// vertices or no edges yields Size 0 and no edges without running trials;
// a disconnected graph yields Size 0 once its edges run out.
package karger
