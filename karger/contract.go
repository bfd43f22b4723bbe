// SPDX-License-Identifier: MIT

// Package karger provides the single-trial contraction engine.
package karger

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/unionfind"
)

// contraction is the mutable state of one trial: a union-find over the
// arena's vertices and the multiset of edges that still cross groups.
// The arena itself is shared and never written.
type contraction struct {
	arena   core.Arena
	groups  *unionfind.UnionFind
	live    multiset
	onMerge func(before, after int)
}

// newContraction starts a trial from pristine, a union-find keyed by vertex
// value with no merges yet. pristine is cloned, never modified.
func newContraction(a core.Arena, pristine *unionfind.UnionFind, onMerge func(before, after int)) *contraction {
	return &contraction{
		arena:   a,
		groups:  pristine.Clone(),
		live:    newMultiset(len(a.Ends)),
		onMerge: onMerge,
	}
}

// loop reports whether edge id joins two vertices of the same group.
func (c *contraction) loop(id int) bool {
	e := c.arena.Ends[id]
	return c.groups.Same(e[0], e[1])
}

// run contracts until two groups remain or no edges are left.
//
// Steps:
//  1. Purge edges that are already self-loops (only loop edges at start).
//  2. While more than two groups remain:
//     a. No edges left ⇒ the graph was disconnected; stop with what we have.
//     b. Extract a uniformly random edge.
//     c. Endpoints already joined ⇒ discard and draw again.
//     d. Union the endpoints; groups must drop by exactly one.
//     e. Purge every edge that became a self-loop, then report the merge.
//  3. The remaining edges cross between the final groups.
func (c *contraction) run(src Source) (Cut, error) {
	c.live.removeSelfLoops(c.loop)

	for c.groups.Groups() > 2 {
		if c.live.Len() == 0 {
			break
		}
		id, ok := c.live.extractRandom(src)
		if !ok {
			return Cut{}, fmt.Errorf("%w: extraction from an empty edge set with %d groups left",
				ErrInvariantViolated, c.groups.Groups())
		}
		e := c.arena.Ends[id]
		if c.groups.Same(e[0], e[1]) {
			continue
		}

		before := c.groups.Groups()
		if !c.groups.Union(e[0], e[1]) || c.groups.Groups() != before-1 {
			return Cut{}, fmt.Errorf("%w: merging edge %v left %d groups (was %d)",
				ErrInvariantViolated, c.arena.Edge(id), c.groups.Groups(), before)
		}
		c.live.removeSelfLoops(c.loop)
		if c.onMerge != nil {
			c.onMerge(before, c.groups.Groups())
		}
	}

	return c.cut(), nil
}

// cut assembles the result from the current state.
func (c *contraction) cut() Cut {
	ids := append([]int(nil), c.live.ids...)
	sort.Ints(ids)
	edges := make([]core.Edge, len(ids))
	for i, id := range ids {
		edges[i] = c.arena.Edge(id)
	}

	return Cut{Size: len(edges), Edges: edges, Sides: c.sides()}
}

// sides splits the vertices into the group holding the smallest value and
// everything else.
func (c *contraction) sides() [2][]int {
	out := [2][]int{{}, {}}
	n := c.arena.Len()
	if n == 0 {
		return out
	}

	// The groups are keyed by value, so the smallest vertex leads its group.
	minIdx := 0
	for i := 1; i < n; i++ {
		if c.arena.Values[i] < c.arena.Values[minIdx] {
			minIdx = i
		}
	}
	for i := 0; i < n; i++ {
		side := 1
		if c.groups.Leader(i) == minIdx {
			side = 0
		}
		out[side] = append(out[side], c.arena.Values[i])
	}
	sort.Ints(out[0])
	sort.Ints(out[1])

	return out
}

// Contract runs a single contraction trial on g using src for every random
// draw. A nil src uses the default seeded stream. Only the OnMerge option is
// consulted.
//
// Returns Cut with Trial == 0.
//
// Complexity: O(n·E) time, O(V + E) memory.
func Contract(g *core.Graph, src Source, opts ...Option) (Cut, error) {
	if g == nil {
		return Cut{}, ErrGraphNil
	}
	o := resolve(opts)
	if src == nil {
		src = rngFromSeed(0)
	}
	a := g.Arena()

	return newContraction(a, unionfind.NewKeyed(a.Values), o.OnMerge).run(src)
}
