// Package unionfind provides an integer-indexed disjoint-set structure with
// path compression and union by rank, in the same style as the parent/rank
// map pair katalvlaran/lvlath's Kruskal implementation builds inline
// (prim_kruskal/kruskal.go) — generalized here to a reusable index-addressed
// structure since several fields (Loop Engine connectivity, Numberlink
// chain_connectivity, GraphSeparation root lookups) all need the same
// primitive over dense int ranges rather than string vertex IDs.
package unionfind

// UnionFind is a disjoint-set over the dense index range [0, n).
type UnionFind struct {
	parent []int
	rank   []int
}

// New allocates a union-find where every index starts in its own set.
func New(n int) *UnionFind {
	u := &UnionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// Find returns the representative of x's set, compressing the path.
func (u *UnionFind) Find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// Union merges the sets containing x and y and reports whether they were
// previously distinct.
func (u *UnionFind) Union(x, y int) bool {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}
	if u.rank[rx] < u.rank[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	if u.rank[rx] == u.rank[ry] {
		u.rank[rx]++
	}
	return true
}

// Connected reports whether x and y are in the same set.
func (u *UnionFind) Connected(x, y int) bool {
	return u.Find(x) == u.Find(y)
}

// Clone deep-copies the structure for trial-and-error snapshots.
func (u *UnionFind) Clone() *UnionFind {
	out := &UnionFind{parent: make([]int, len(u.parent)), rank: make([]int, len(u.rank))}
	copy(out.parent, u.parent)
	copy(out.rank, u.rank)
	return out
}
