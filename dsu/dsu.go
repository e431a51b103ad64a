// Package dsu implements a disjoint-set forest (union-find) over the dense
// integer ids 0..n-1, with path compression and union by rank.
//
// A Forest is cheap to build and is meant to be thrown away: the MST builder
// creates one per query, sized to the graph's current node count.
//
// Complexity: Find and Union run in O(α(n)) amortized, where α is the inverse
// Ackermann function. Space is O(n).
//
// Ids outside [0, Len()) are programmer errors and panic like slice indexing.
package dsu

// Forest is a disjoint-set forest. parent[x] == x marks a root; rank is only
// meaningful for roots and bounds the height of their tree.
type Forest struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets remaining
}

// New returns a Forest of n singleton sets, each element its own root with rank 0.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.count }

// Find returns the root of x's set.
//
// Two passes, no recursion: the first walks up to the root, the second
// repoints every node on the walked path directly at that root.
func (f *Forest) Find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y and reports whether a merge happened.
//
// If both already share a root it does nothing and returns false: an edge
// (x, y) would close a cycle. Otherwise the lower-rank root goes under the
// higher-rank one; on equal rank y's root goes under x's root and x's root
// rank grows by one.
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.count--

	return true
}

// Connected reports whether x and y are in the same set.
func (f *Forest) Connected(x, y int) bool {
	return f.Find(x) == f.Find(y)
}

// Rank returns the rank of the root of x's set.
func (f *Forest) Rank(x int) int {
	return f.rank[f.Find(x)]
}

// Sets returns every disjoint set with its elements sorted ascending.
// Sets are ordered by their smallest element.
// Complexity: O(n α(n)).
func (f *Forest) Sets() [][]int {
	index := make(map[int]int, f.count) // root -> position in out
	out := make([][]int, 0, f.count)
	// Ascending scan: sets are born in order of their smallest element.
	for i := range f.parent {
		root := f.Find(i)
		pos, ok := index[root]
		if !ok {
			pos = len(out)
			index[root] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], i)
	}

	return out
}
