// Package mincut finds minimum cuts of undirected graphs by repeated random
// edge contraction (Karger's algorithm).
//
// What is a minimum cut?
//
//	Split the vertices into two non-empty groups. The edges with one end in
//	each group form a cut. A minimum cut has the fewest such edges.
//
//	  2           5
//	 ╱ ╲         ╱ ╲
//	1───3───────4───6
//
//	Two triangles joined by the bridge 3-4: removing that single edge
//	disconnects the graph, so the minimum cut has size 1.
//
// One contraction trial merges the endpoints of uniformly random edges until
// two super-vertices remain; the edges left between them are a cut. A trial
// finds a given minimum cut with probability at least 2/(n(n-1)), so the
// driver repeats independent trials and keeps the smallest result.
//
// Packages:
//
//	core/      undirected Graph with int vertices, dedup of parallel edges
//	unionfind/ disjoint sets with smallest-key leaders (super-vertices)
//	karger/    single-trial contraction, concurrent trial driver, cut checks
//	adjlist/   adjacency-list text reader and writer
//	builder/   deterministic fixture graphs (cycles, cliques, barbells, random)
//	cmd/karger command-line front end
//
// Quick start:
//
//	rows, _ := adjlist.ReadFile("graph.txt")
//	cut, err := karger.ComputeMinCut(rows, karger.SuggestedIterations(len(rows)))
//	fmt.Println(cut.Size, cut.Edges)
//
//	go install github.com/katalvlaran/mincut/cmd/karger@latest
package mincut
