// Package adjlist reads and writes graphs in the whitespace-separated
// adjacency-list text format:
//
//	1 2 3
//	2 3
//	3 4
//
// Each non-blank line is one row: the first integer is the vertex, the rest
// are its neighbors. An edge may be listed under one endpoint or both; the
// graph stores it once either way. A line with a single integer declares an
// isolated vertex.
package adjlist
