package kakuro

import (
	"penciloid/internal/gridcore"
	"penciloid/internal/squeue"
)

const undecided = -1

type fieldGroup struct {
	unmetNum int
	unmetSum int
	unused   gridcore.Candidates
}

// Field is the Kakuro constraint-propagation solver: it narrows each
// non-clue cell's candidate digit set via the group dictionary, two-cell
// propagation, naked pairs, and a min-max bound, until every cell is
// decided or the assignment is shown inconsistent.
type Field struct {
	dic    *Dictionary
	shape  *shape
	groups []fieldGroup

	val  []int
	cand []gridcore.Candidates

	inconsistent    bool
	solved          bool
	undecidedCells  int
	totalCandidates int

	queue *squeue.Queue
}

// NewField builds a field over an H x W clue grid. clues is row-major,
// length height*width.
func NewField(height, width int, clues []Clue, dic *Dictionary) *Field {
	n := height * width
	s := newShape(height, width, clues)

	nonClue := 0
	for _, c := range clues {
		if !c.HasClue {
			nonClue++
		}
	}

	f := &Field{
		dic:             dic,
		shape:           s,
		groups:          make([]fieldGroup, len(s.groups)),
		val:             make([]int, n),
		cand:            make([]gridcore.Candidates, n),
		undecidedCells:  nonClue,
		totalCandidates: nonClue * MaxVal,
		queue:           squeue.New(len(s.groups)),
	}
	for i := range f.val {
		f.val[i] = undecided
		f.cand[i] = gridcore.AllCandidates(MaxVal)
	}
	for gi, g := range s.groups {
		f.groups[gi] = fieldGroup{
			unmetNum: len(g.cells),
			unmetSum: g.sum,
			unused:   gridcore.AllCandidates(MaxVal),
		}
	}
	return f
}

func (f *Field) Inconsistent() bool       { return f.inconsistent }
func (f *Field) Solved() bool             { return f.solved }
func (f *Field) UndecidedCells() int      { return f.undecidedCells }
func (f *Field) TotalCandidates() int     { return f.totalCandidates }
func (f *Field) Height() int              { return f.shape.height }
func (f *Field) Width() int               { return f.shape.width }
func (f *Field) Val(p gridcore.P) int     { return f.val[f.shape.index(p)] }
func (f *Field) Candidates(p gridcore.P) gridcore.Candidates {
	return f.cand[f.shape.index(p)]
}

// CheckAll pushes every group onto the work queue and drains it, the entry
// point for a freshly constructed field.
func (f *Field) CheckAll() {
	f.queue.Start()
	for gi := range f.groups {
		f.queue.Push(gi)
	}
	f.drain()
}

// Decide commits val at p and propagates to quiescence.
func (f *Field) Decide(p gridcore.P, val int) {
	f.queue.Start()
	f.decideInt(f.shape.index(p), val)
	f.drain()
}

func (f *Field) drain() {
	for !f.queue.Empty() {
		f.checkGroup(f.queue.Pop())
	}
	f.queue.Finish()
}

func (f *Field) decideInt(loc, val int) {
	if f.val[loc] != undecided {
		if f.val[loc] != val {
			f.inconsistent = true
		}
		return
	}
	if !f.cand[loc].Has(val) {
		f.inconsistent = true
		return
	}

	f.val[loc] = val
	f.undecidedCells--
	if f.undecidedCells == 0 {
		f.solved = true
	}
	f.totalCandidates -= f.cand[loc].Count() - 1
	f.cand[loc] = gridcore.Candidates(0).Set(val)

	gh, gv := f.shape.cellGroups(loc)
	for _, gi := range [2]int{gh, gv} {
		if gi < 0 {
			continue
		}
		g := &f.groups[gi]
		g.unmetNum--
		g.unmetSum -= val
		g.unused = g.unused.Clear(val)
		f.eliminateFromGroup(gi, val, loc)
		f.queue.Push(gi)
	}
}

func (f *Field) eliminateFromGroup(gi, digit, except int) {
	for _, c := range f.shape.groups[gi].cells {
		if c != except {
			f.limitCand(c, gridcore.AllCandidates(MaxVal).Clear(digit))
		}
	}
}

func (f *Field) limitCand(loc int, lim gridcore.Candidates) {
	if f.cand[loc].Intersect(lim) == f.cand[loc] {
		return
	}
	f.totalCandidates -= f.cand[loc].Subtract(lim).Count()
	f.cand[loc] = f.cand[loc].Intersect(lim)

	if f.cand[loc].IsEmpty() {
		f.inconsistent = true
		return
	}
	if d, ok := f.cand[loc].Only(); ok {
		f.decideInt(loc, d)
	}

	gh, gv := f.shape.cellGroups(loc)
	if gh >= 0 {
		f.queue.Push(gh)
	}
	if gv >= 0 {
		f.queue.Push(gv)
	}
}

func (f *Field) checkGroup(gi int) {
	g := f.groups[gi]
	imperative, allowed, possible := f.dic.At(g.unmetNum, g.unmetSum, g.unused)
	if !possible {
		f.inconsistent = true
		return
	}

	// unique position: an imperative digit that only one undecided cell in
	// the group can still hold must go there.
	if imperative != 0 {
		var uniq, mult gridcore.Candidates
		for _, c := range f.shape.groups[gi].cells {
			if f.val[c] == undecided {
				mult = mult.Union(uniq.Intersect(f.cand[c]))
				uniq = uniq.Union(f.cand[c])
			}
		}
		uniq = uniq.Intersect(imperative).Subtract(mult)
		if uniq != 0 {
			for _, c := range f.shape.groups[gi].cells {
				if f.val[c] == undecided {
					if isect := f.cand[c].Intersect(uniq); !isect.IsEmpty() {
						if d, ok := isect.Only(); ok {
							f.decideInt(c, d)
						} else {
							// multiple imperative digits still open on this
							// cell; decide the lowest to make progress.
							f.decideInt(c, isect.ToSlice()[0])
						}
					}
				}
			}
		}
	}

	for _, c := range f.shape.groups[gi].cells {
		if f.val[c] == undecided {
			f.limitCand(c, allowed)
		}
	}
	if f.inconsistent {
		return
	}

	f.twoCellsPropagation(gi)
	if f.inconsistent {
		return
	}
	f.nakedPair(gi)
	if f.inconsistent {
		return
	}
	f.minMax(gi)
}

func (f *Field) twoCellsPropagation(gi int) {
	g := f.groups[gi]
	if g.unmetNum != 2 {
		return
	}
	var c1, c2 = -1, -1
	for _, c := range f.shape.groups[gi].cells {
		if f.val[c] == undecided {
			if c1 < 0 {
				c1 = c
			} else {
				c2 = c
			}
		}
	}
	if c1 < 0 || c2 < 0 {
		return
	}
	var c1Lim, c2Lim gridcore.Candidates = gridcore.AllCandidates(MaxVal), gridcore.AllCandidates(MaxVal)
	for i := 1; i <= MaxVal; i++ {
		partner := g.unmetSum - i
		if partner < 1 || partner > MaxVal {
			continue
		}
		if !f.cand[c1].Has(i) {
			c2Lim = c2Lim.Clear(partner)
		}
		if !f.cand[c2].Has(i) {
			c1Lim = c1Lim.Clear(partner)
		}
	}
	f.limitCand(c1, c1Lim)
	if f.inconsistent {
		return
	}
	f.limitCand(c2, c2Lim)
}

func (f *Field) nakedPair(gi int) {
	cells := f.shape.groups[gi].cells
	for _, c := range cells {
		if f.val[c] != undecided || f.cand[c].Count() != 2 {
			continue
		}
		for _, d := range cells {
			if f.val[d] != undecided || c == d || f.cand[d] != f.cand[c] {
				continue
			}
			lim := gridcore.AllCandidates(MaxVal).Subtract(f.cand[c])
			for _, e := range cells {
				if e != c && e != d {
					f.limitCand(e, lim)
					if f.inconsistent {
						return
					}
				}
			}
		}
	}
}

func (f *Field) minMax(gi int) {
	g := f.groups[gi]
	cells := f.shape.groups[gi].cells
	minSum, maxSum := 0, 0
	for _, c := range cells {
		if f.val[c] != undecided {
			continue
		}
		digits := f.cand[c].ToSlice()
		minSum += digits[0]
		maxSum += digits[len(digits)-1]
	}
	type update struct {
		loc int
		lim gridcore.Candidates
	}
	var updates []update
	for _, c := range cells {
		if f.val[c] != undecided {
			continue
		}
		digits := f.cand[c].ToSlice()
		currentMax := g.unmetSum - (minSum - digits[0])
		currentMin := g.unmetSum - (maxSum - digits[len(digits)-1])

		lim := gridcore.AllCandidates(MaxVal)
		if currentMax <= MaxVal {
			for v := currentMax + 1; v <= MaxVal; v++ {
				lim = lim.Clear(v)
			}
		}
		if currentMin >= 2 {
			for v := 1; v < currentMin; v++ {
				lim = lim.Clear(v)
			}
		}
		if lim != gridcore.AllCandidates(MaxVal) {
			updates = append(updates, update{c, lim})
		}
	}
	for _, u := range updates {
		f.limitCand(u.loc, u.lim)
		if f.inconsistent {
			return
		}
	}
}
