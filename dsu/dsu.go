// SPDX-License-Identifier: MIT
// Package: graphy/dsu
//
// dsu.go: disjoint-set forest over a fixed universe 0..n-1.
//
// Contract:
//   • The universe size is fixed at construction; indices are valid by
//     caller contract (no error states, out-of-range indices panic like a
//     slice access would).
//   • Find compresses paths by grandparent halving (iterative, no recursion).
//   • Union reports whether a merge happened and keeps a live count of
//     components so generators can stop exactly when it reaches 1.

package dsu

// DisjointSet is a union-find structure over the integers 0..n-1.
// It is not safe for concurrent use.
type DisjointSet struct {
	parent     []int // parent[v] == v for roots
	rank       []int // upper bound on tree height, used to keep trees shallow
	components int   // number of disjoint sets currently in the forest
}

// New returns a forest of n singleton sets.
// Complexity: O(n) time and memory.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for v := range d.parent {
		d.parent[v] = v
	}

	return d
}

// Len returns the size of the universe.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Components returns the number of disjoint sets remaining.
func (d *DisjointSet) Components() int { return d.components }

// Find returns the root of the set containing u.
// Every visited node is re-pointed to its grandparent on the way up.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// Union merges the sets containing u and v.
// It returns false, and changes nothing, when both already share a root.
func (d *DisjointSet) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}
	d.components--

	return true
}

// Connected reports whether u and v belong to the same set.
func (d *DisjointSet) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}
