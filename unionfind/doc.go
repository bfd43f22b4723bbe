// SPDX-License-Identifier: MIT

// Package unionfind implements a disjoint-set forest over a dense arena of
// integer slots, used to track which original vertices have been merged into
// the same super-vertex during edge contraction.
//
// What:
//
//   - Every slot i in [0, n) starts in its own group (parent[i] == i).
//   - Union merges two groups by size (the smaller tree is attached under the
//     larger root) and Find walks parent links with path halving, so lookups
//     stay O(α(n)) amortized and the tree height never exceeds ⌊log₂ n⌋.
//   - Each group also carries a Leader: the member with the smallest key.
//     The leader is independent of the physical root, which lets callers
//     keep the "smaller value wins" representative rule while still getting
//     balanced trees.
//
// Keys:
//
//	New(n)            key(i) == i, so the leader is the smallest index.
//	NewKeyed(keys)    key(i) == keys[i]; ties broken by index.
//
// Complexity:
//
//   - New/NewKeyed: O(n) (O(n log n) for NewKeyed, which ranks the keys).
//   - Find/Same/Union/Leader: O(α(n)) amortized.
//   - Groups/Len/Size: O(1) (Size pays one Find).
//
// Concurrency:
//
//	A UnionFind is NOT safe for concurrent use: Find mutates parent links.
//	Allocate one per goroutine (the contraction engine allocates one per trial).
//
// Errors:
//
//	Indices outside [0, Len()) panic, exactly like slice indexing. They can
//	only come from a caller bug, never from user input.
package unionfind
