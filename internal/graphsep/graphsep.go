// Package graphsep implements graph separation: given an undirected graph
// with per-vertex weights, compute, for every vertex v and
// every DFS-tree child of v that v separates from the rest of the graph, the
// summed weight of that child's subtree plus the complementary weight.
//
// The adjacency structure is github.com/katalvlaran/lvlath/core.Graph (the
// pack's general-purpose graph library); the DFS spine that drives the
// lowlink computation reuses github.com/katalvlaran/lvlath/dfs.DFS's
// OnVisit hook to record discovery order and its Parent/Order results to
// find tree edges and a valid bottom-up processing sequence. lvlath does not
// itself expose articulation points or subtree weights, so the lowlink
// algorithm and the weight aggregation are implemented here on top of its
// traversal primitives — this is the one place in the repo where a pack
// library supplies the substrate (graph storage + traversal) but not the
// domain algorithm.
package graphsep

import (
	"strconv"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// Separation describes one articulation cut at a vertex: removing the
// vertex disconnects a subtree of SubtreeWeight from the rest of the graph,
// whose total weight (excluding the articulation vertex itself) is RestWeight.
type Separation struct {
	Child         int
	SubtreeWeight int
	RestWeight    int
}

// GraphSeparation wraps an undirected, vertex-weighted graph over the dense
// index range [0, n) and answers articulation queries.
type GraphSeparation struct {
	n      int
	weight []int
	g      *core.Graph

	built     bool
	disc      []int
	low       []int
	parent    []int
	order     []int // DFS Order (post-order), vertex ids
	totalFrom map[int]int
}

// New allocates a GraphSeparation over n vertices with the given per-vertex
// weights (len(weight) must equal n).
func New(n int, weight []int) *GraphSeparation {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vid(i))
	}
	return &GraphSeparation{n: n, weight: weight, g: g}
}

func vid(i int) string { return strconv.Itoa(i) }

// AddEdge adds an undirected edge between u and v. Invalidates any
// previously computed separation until Build runs again.
func (gs *GraphSeparation) AddEdge(u, v int) {
	if u == v {
		return
	}
	_, _ = gs.g.AddEdge(vid(u), vid(v), 0)
	gs.built = false
}

// Build runs the DFS spine and lowlink computation. Safe to call repeatedly
// after edges change; idempotent if nothing changed since the last Build.
func (gs *GraphSeparation) Build() {
	if gs.n == 0 {
		gs.built = true
		return
	}
	disc := make([]int, gs.n)
	low := make([]int, gs.n)
	parent := make([]int, gs.n)
	for i := range parent {
		parent[i] = -1
		disc[i] = -1
	}

	discCounter := 0
	var discOrder []int

	// lvlath's DFS covers one connected component per call; the grid
	// adjacency graphs this package serves (Tapa/Nurimisaki black-or-white
	// connectivity) are built one component at a time by the caller, but we
	// still use WithFullTraversal so a disconnected weighted graph (e.g. a
	// candidate region split by undecided cells) degrades gracefully instead
	// of erroring.
	res, err := dfs.DFS(gs.g, vid(0), dfs.WithFullTraversal(), dfs.WithOnVisit(func(id string) error {
		v := mustAtoi(id)
		disc[v] = discCounter
		discOrder = append(discOrder, v)
		discCounter++
		return nil
	}))
	if err != nil || res == nil {
		gs.built = true
		gs.disc, gs.low, gs.parent, gs.order = disc, low, parent, nil
		return
	}
	for id, p := range res.Parent {
		parent[mustAtoi(id)] = mustAtoi(p)
	}
	order := make([]int, 0, len(res.Order))
	for _, id := range res.Order {
		order = append(order, mustAtoi(id))
	}

	for v := range low {
		low[v] = disc[v]
	}

	// Process in post-order: every DFS-tree child of v is finalized before v.
	for _, v := range order {
		if disc[v] < 0 {
			continue
		}
		neighborIDs, _ := gs.g.NeighborIDs(vid(v))
		for _, wID := range neighborIDs {
			w := mustAtoi(wID)
			if disc[w] < 0 {
				continue
			}
			if parent[v] == w {
				continue // skip the tree edge back to our own parent
			}
			if parent[w] == v {
				// tree child, already processed (post-order)
				if low[w] < low[v] {
					low[v] = low[w]
				}
				continue
			}
			if disc[w] < disc[v] {
				// back edge to an ancestor
				if disc[w] < low[v] {
					low[v] = disc[w]
				}
			}
		}
	}

	gs.disc, gs.low, gs.parent, gs.order = disc, low, parent, order
	gs.built = true
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic("graphsep: non-integer vertex id " + s)
	}
	return n
}

// Separate returns, for each DFS-tree child c of v such that v is an
// articulation point separating c's subtree from the rest of the graph
// (low[c] >= disc[v]), the weight of that subtree and the complementary
// weight of everything else (total graph weight minus the subtree minus
// weight[v]).
func (gs *GraphSeparation) Separate(v int) []Separation {
	if !gs.built {
		gs.Build()
	}
	if gs.order == nil {
		return nil
	}
	subtreeWeight := gs.subtreeWeights()
	total := 0
	for _, w := range gs.weight {
		total += w
	}

	var out []Separation
	for _, c := range gs.order {
		if gs.parent[c] != v {
			continue
		}
		if gs.low[c] < gs.disc[v] {
			continue // c can reach above v; v does not separate it
		}
		sw := subtreeWeight[c]
		out = append(out, Separation{
			Child:         c,
			SubtreeWeight: sw,
			RestWeight:    total - sw - gs.weight[v],
		})
	}
	return out
}

// subtreeWeights computes, for every vertex, the sum of weights in its DFS
// subtree (itself plus all descendants), via a single post-order pass.
func (gs *GraphSeparation) subtreeWeights() []int {
	sw := make([]int, gs.n)
	copy(sw, gs.weight)
	for _, v := range gs.order {
		p := gs.parent[v]
		if p >= 0 {
			sw[p] += sw[v]
		}
	}
	return sw
}
