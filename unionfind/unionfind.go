// SPDX-License-Identifier: MIT

package unionfind

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// UnionFind is a disjoint-set forest over slots 0..n-1.
type UnionFind struct {
	parent []int // parent[i] == i for roots
	size   []int // size[r] is valid only for roots
	leader []int // leader[r] is valid only for roots
	rank   []int // rank[i] orders slots by key; smaller rank wins leadership
	groups int   // live number of distinct groups
}

// New returns a UnionFind with n singleton groups whose leaders are chosen
// by smallest index.
//
// Complexity: O(n).
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	u := newArena(n)
	for i := 0; i < n; i++ {
		u.rank[i] = i
	}

	return u
}

// NewKeyed returns a UnionFind with len(keys) singleton groups. When groups
// merge, the member with the smallest key becomes the leader of the result.
// Equal keys are ordered by index.
//
// Complexity: O(n log n) to rank the keys.
func NewKeyed[K constraints.Ordered](keys []K) *UnionFind {
	n := len(keys)
	u := newArena(n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})
	for r, i := range order {
		u.rank[i] = r
	}

	return u
}

func newArena(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		leader: make([]int, n),
		rank:   make([]int, n),
		groups: n,
	}
	for i := 0; i < n; i++ {
		u.parent[i] = i
		u.size[i] = 1
		u.leader[i] = i
	}

	return u
}

// Clone returns an independent copy of u. Cloning a pristine keyed
// UnionFind is cheaper than calling NewKeyed again: O(n), no sorting.
func (u *UnionFind) Clone() *UnionFind {
	return &UnionFind{
		parent: append([]int(nil), u.parent...),
		size:   append([]int(nil), u.size...),
		leader: append([]int(nil), u.leader...),
		rank:   append([]int(nil), u.rank...),
		groups: u.groups,
	}
}

// Len returns the number of slots.
func (u *UnionFind) Len() int { return len(u.parent) }

// Groups returns the number of distinct groups. It starts at Len() and
// decreases by exactly one per successful Union.
func (u *UnionFind) Groups() int { return u.groups }

// Find returns the root slot of i's tree, halving the path as it walks.
func (u *UnionFind) Find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}

	return i
}

// Leader returns the member of i's group with the smallest key.
func (u *UnionFind) Leader(i int) int {
	return u.leader[u.Find(i)]
}

// Same reports whether a and b belong to the same group.
func (u *UnionFind) Same(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// Size returns the number of slots in i's group.
func (u *UnionFind) Size(i int) int {
	return u.size[u.Find(i)]
}

// Union merges the groups of a and b. It returns false, and changes nothing,
// when they are already in the same group.
//
// The smaller tree is attached under the larger root; the merged group's
// leader is whichever of the two leaders has the smaller key.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
	if u.rank[u.leader[rb]] < u.rank[u.leader[ra]] {
		u.leader[ra] = u.leader[rb]
	}
	u.groups--

	return true
}

// Depth returns the number of parent hops from i to its root without
// compressing anything. Diagnostics only.
func (u *UnionFind) Depth(i int) int {
	d := 0
	for u.parent[i] != i {
		i = u.parent[i]
		d++
	}

	return d
}

// Members returns the slots of every group keyed by leader, each list in
// ascending slot order.
//
// Complexity: O(n α(n)).
func (u *UnionFind) Members() map[int][]int {
	out := make(map[int][]int, u.groups)
	for i := range u.parent {
		l := u.Leader(i)
		out[l] = append(out[l], i)
	}

	return out
}
