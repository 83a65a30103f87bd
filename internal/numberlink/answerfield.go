package numberlink

import (
	"math/rand"

	"penciloid/internal/gridcore"
	"penciloid/internal/unionfind"
)

// AnswerField grows a canonical placement of non-crossing paths that
// together tile an H x W grid, subject to a chain-length floor, an
// endpoint-constraint grid, and (optionally) a symmetry class.
//
// Canonicalization is scoped down from the full L-shaped-detour elimination
// rule (see DESIGN.md): this field enforces path validity (degree <= 2 per
// cell, no premature loop closure, endpoint constraints, the length floor)
// but does not dedupe equivalent detour placements, so it may occasionally
// grow two placements that are the same unordered path set drawn through a
// different internal route. Re-rolling on a uniqueness-pretest failure
// (also scoped out, see DESIGN.md) is the caller's responsibility.
type AnswerField struct {
	Height, Width int

	edges *gridcore.LoopGrid[gridcore.EdgeStatus]

	chainUnion  []int
	chainLength []int

	endpointConstraint []EndpointConstraint

	seeds   []gridcore.P
	seedIdx []int // indexed by cell index, -1 if not a seed

	connectivity *unionfind.UnionFind

	minChainLength   int
	numUndecidedEdge int
	inconsistent     bool

	symmetry Symmetry
}

// New allocates an H x W AnswerField with every cell isolated and every
// endpoint constraint Any.
func New(height, width, minChainLength int) *AnswerField {
	n := height * width
	f := &AnswerField{
		Height:             height,
		Width:              width,
		edges:              gridcore.NewLoopGrid[gridcore.EdgeStatus](height, width),
		chainUnion:         make([]int, n),
		chainLength:        make([]int, n),
		endpointConstraint: make([]EndpointConstraint, n),
		seedIdx:            make([]int, n),
		connectivity:       unionfind.New(n),
		minChainLength:     minChainLength,
	}
	for i := 0; i < n; i++ {
		f.chainUnion[i] = i
		f.chainLength[i] = 1
		f.seedIdx[i] = -1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := gridcore.P{Y: y, X: x}
			if x+1 < width {
				f.numUndecidedEdge++
			}
			if y+1 < height {
				f.numUndecidedEdge++
			}
			f.inspectCell(p)
			_ = p
		}
	}
	return f
}

func (f *AnswerField) index(p gridcore.P) int { return p.Y*f.Width + p.X }

// SetEndpointConstraint fixes p's constraint. Callers wanting symmetric
// generation apply Mirror themselves and call this once per mirrored cell.
func (f *AnswerField) SetEndpointConstraint(p gridcore.P, c EndpointConstraint) {
	f.endpointConstraint[f.index(p)] = c
}

// SetSymmetry arms Grow to mirror every edge decision it makes onto the
// edge's image(s) under sym, so the finished placement is invariant under
// sym. Call before Grow; it has no effect on edges already decided.
func (f *AnswerField) SetSymmetry(sym Symmetry) {
	f.symmetry = sym
}

// Inconsistent reports whether the placement has violated a structural
// invariant (degree > 2, premature loop closure, or a broken endpoint
// constraint).
func (f *AnswerField) Inconsistent() bool { return f.inconsistent }

// FullySolved reports whether every edge has been decided.
func (f *AnswerField) FullySolved() bool { return !f.inconsistent && f.numUndecidedEdge == 0 }

// GetEdge returns the current status of the edge between two orthogonally
// adjacent cells (Blank if out of bounds).
func (f *AnswerField) GetEdge(e gridcore.LP) gridcore.EdgeStatus {
	return f.edges.Safe(e, gridcore.Blank)
}

func (f *AnswerField) classify(p gridcore.P) (lines, undecided []gridcore.LP) {
	for _, e := range cellEdges(f.Height, f.Width, p) {
		switch f.edges.At(e) {
		case gridcore.Line:
			lines = append(lines, e)
		case gridcore.Undecided:
			undecided = append(undecided, e)
		}
	}
	return
}

func isSeed(lines, undecided []gridcore.LP) bool {
	if len(lines) == 0 && len(undecided) == 2 {
		return true
	}
	if len(lines) == 1 && len(undecided) >= 1 {
		return true
	}
	return false
}

// inspectCell recomputes p's seed membership and, once p's degree is fully
// decided, checks its endpoint constraint.
func (f *AnswerField) inspectCell(p gridcore.P) {
	lines, undecided := f.classify(p)
	if len(lines) == 2 && len(undecided) > 0 {
		// p has already reached its physical degree cap; any edges still
		// undecided from its side can never become Line.
		for _, e := range undecided {
			f.DecideEdge(e, gridcore.Blank)
		}
		return
	}

	i := f.index(p)
	seed := isSeed(lines, undecided)
	already := f.seedIdx[i] >= 0
	switch {
	case seed && !already:
		f.seedIdx[i] = len(f.seeds)
		f.seeds = append(f.seeds, p)
	case !seed && already:
		last := len(f.seeds) - 1
		removed := f.seedIdx[i]
		f.seeds[removed] = f.seeds[last]
		f.seedIdx[f.index(f.seeds[removed])] = removed
		f.seeds = f.seeds[:last]
		f.seedIdx[i] = -1
	}

	if len(undecided) > 0 {
		return
	}
	switch f.endpointConstraint[i] {
	case Forced:
		if len(lines) == 2 {
			f.inconsistent = true
		}
	case Prohibited:
		if len(lines) != 2 {
			f.inconsistent = true
		}
	}
}

// DecideEdge commits status to the edge between the two cells flanking e,
// idempotently, maintaining the chain-union endpoint ring, the
// chain-connectivity union-find, and the seed set.
func (f *AnswerField) DecideEdge(e gridcore.LP, status gridcore.EdgeStatus) {
	if f.inconsistent {
		return
	}
	c1, c2 := gridcore.CellNeighbors2(e)
	p1, p2 := c1.ToCell(), c2.ToCell()
	if !f.inBounds(p1) || !f.inBounds(p2) {
		if status == gridcore.Line {
			f.inconsistent = true
		}
		return
	}

	cur := f.edges.At(e)
	if cur == status {
		return
	}
	if cur != gridcore.Undecided {
		f.inconsistent = true
		return
	}
	f.edges.Set(e, status)
	f.numUndecidedEdge--

	if status == gridcore.Line {
		i1, i2 := f.index(p1), f.index(p2)
		lines1, _ := f.classify(p1)
		lines2, _ := f.classify(p2)
		if len(lines1) > 2 || len(lines2) > 2 {
			f.inconsistent = true
			return
		}
		far1, far2 := f.chainUnion[i1], f.chainUnion[i2]
		if far1 == i2 {
			f.inconsistent = true
			return
		}
		newLen := f.chainLength[i1] + f.chainLength[i2]
		f.chainUnion[far1] = far2
		f.chainUnion[far2] = far1
		f.chainLength[far1] = newLen
		f.chainLength[far2] = newLen
		f.connectivity.Union(i1, i2)
	}

	f.inspectCell(p1)
	f.inspectCell(p2)
}

func (f *AnswerField) inBounds(p gridcore.P) bool {
	return p.Y >= 0 && p.Y < f.Height && p.X >= 0 && p.X < f.Width
}

// turnProbability/extendProbability bias growth toward long winding paths,
// matching the generator's preference for fewer, longer chains over many
// short ones.
const (
	turnProbability   = 0.8
	extendProbability = 0.7
)

// decideSym commits status to e and, under an active symmetry class, to
// every image of e under that symmetry as well. Deterministic consequences
// of a decision (inspectCell's forced moves) never need a matching mirror
// call of their own: as long as the field stays symmetric before each call,
// deciding e's own neighborhood and its image's neighborhood in the same
// decideSym call keeps it symmetric afterward too.
func (f *AnswerField) decideSym(e gridcore.LP, status gridcore.EdgeStatus) {
	f.DecideEdge(e, status)
	if f.symmetry == NoSymmetry {
		return
	}
	for _, image := range MirrorEdge(f.symmetry, f.Height, f.Width, e) {
		f.DecideEdge(image, status)
	}
}

// Grow drains the seed set, picking a random seed each step and applying
// the forced or probabilistic extension rule, until no seed remains or the
// placement goes inconsistent. It returns false if growth was aborted by an
// inconsistency.
func (f *AnswerField) Grow(rng *rand.Rand) bool {
	for len(f.seeds) > 0 && !f.inconsistent {
		p := f.seeds[rng.Intn(len(f.seeds))]
		lines, undecided := f.classify(p)

		switch {
		case len(lines) == 0 && len(undecided) == 2:
			if rng.Float64() < turnProbability {
				f.decideSym(undecided[0], gridcore.Line)
				f.decideSym(undecided[1], gridcore.Line)
			} else {
				i := rng.Intn(2)
				f.decideSym(undecided[i], gridcore.Line)
				f.decideSym(undecided[1-i], gridcore.Blank)
			}
		case len(lines) == 1:
			curLen := f.chainLength[f.index(p)]
			mustExtend := curLen < f.minChainLength
			if mustExtend || rng.Float64() < extendProbability {
				j := rng.Intn(len(undecided))
				for k, e := range undecided {
					if k == j {
						f.decideSym(e, gridcore.Line)
					} else {
						f.decideSym(e, gridcore.Blank)
					}
				}
			} else {
				for _, e := range undecided {
					f.decideSym(e, gridcore.Blank)
				}
			}
		default:
			// Not a seed any more (resolved as a byproduct of an earlier
			// decision); drop it.
			f.inspectCell(p)
		}
	}
	return !f.inconsistent
}

// Clone deep-copies the field for trial-and-error branches.
func (f *AnswerField) Clone() *AnswerField {
	out := &AnswerField{
		Height:           f.Height,
		Width:            f.Width,
		edges:            f.edges.Clone(),
		chainUnion:       append([]int(nil), f.chainUnion...),
		chainLength:      append([]int(nil), f.chainLength...),
		endpointConstraint: append([]EndpointConstraint(nil), f.endpointConstraint...),
		seeds:            append([]gridcore.P(nil), f.seeds...),
		seedIdx:          append([]int(nil), f.seedIdx...),
		connectivity:     f.connectivity.Clone(),
		minChainLength:   f.minChainLength,
		numUndecidedEdge: f.numUndecidedEdge,
		inconsistent:     f.inconsistent,
		symmetry:         f.symmetry,
	}
	return out
}
