// Package endview implements the border-clue Latin-square field: a size x
// size board carries n_alpha distinct symbols, one per row and column, with
// the rest of each line filled by an "empty" filler value, and border clues
// pin the first non-empty symbol seen looking into a row or column from one
// edge.
package endview

import "penciloid/internal/gridcore"

// Value is a cell's assignment: Undecided, Empty (filler, never a symbol),
// Some (known non-empty, symbol not yet pinned down), or a specific symbol
// in [0, n_alpha).
type Value int

const (
	Undecided Value = -1
	Empty     Value = -2
	Some      Value = -3
)

// NoClue marks a border position with no view constraint.
const NoClue = -1

// ClueSide names one of the four border directions a clue can sit on.
type ClueSide int

const (
	Left ClueSide = iota
	Right
	Top
	Bottom
)

// Field is the deductive solver over the board.
type Field struct {
	size   int
	nAlpha int

	cand  []gridcore.Candidates
	value []Value

	// clueFront[i] / clueBack[i] for i < size is the Left/Right clue on row
	// i; for size <= i < 2*size it is the Top/Bottom clue on column i-size.
	clueFront []int
	clueBack  []int

	inconsistent bool
}

// NewField allocates an empty size x size board over nAlpha (>= 2) symbols.
func NewField(size, nAlpha int) *Field {
	if nAlpha < 2 {
		panic("endview: n_alpha must be at least 2")
	}
	n := size * size
	f := &Field{
		size:      size,
		nAlpha:    nAlpha,
		cand:      make([]gridcore.Candidates, n),
		value:     make([]Value, n),
		clueFront: make([]int, 2*size),
		clueBack:  make([]int, 2*size),
	}
	full := allCandidates(nAlpha)
	for i := range f.cand {
		f.cand[i] = full
		f.value[i] = Undecided
	}
	for i := range f.clueFront {
		f.clueFront[i] = NoClue
		f.clueBack[i] = NoClue
	}
	return f
}

// allCandidates encodes symbols 0..nAlpha-1 as bits 0..nAlpha-1 (0-origin,
// unlike the 1-origin gridcore.Candidates convention, since Endview symbols
// include 0).
func allCandidates(nAlpha int) gridcore.Candidates {
	return gridcore.Candidates((uint32(1) << uint(nAlpha)) - 1)
}

func symbolBit(sym int) gridcore.Candidates { return gridcore.Candidates(1 << uint(sym)) }

func (f *Field) index(p gridcore.P) int { return p.Y*f.size + p.X }

func (f *Field) Inconsistent() bool { return f.inconsistent }

func (f *Field) Solved() bool {
	for _, v := range f.value {
		if v == Undecided || v == Some {
			return false
		}
	}
	return true
}

func (f *Field) Value(p gridcore.P) Value             { return f.value[f.index(p)] }
func (f *Field) Candidates(p gridcore.P) gridcore.Candidates { return f.cand[f.index(p)] }

// Decide commits val (a specific symbol, Empty, or Some) at cell, idempotently.
func (f *Field) Decide(cell gridcore.P, val Value) {
	i := f.index(cell)
	cur := f.value[i]
	if cur != Undecided {
		if cur != val {
			f.inconsistent = true
		}
		return
	}
	f.value[i] = val

	switch {
	case val == Empty:
		f.limitCand(i, 0)
	case val == Some:
		f.inspectCell(cell)
	case val >= 0:
		f.limitCand(i, symbolBit(int(val)))
		lim := allCandidates(f.nAlpha) &^ symbolBit(int(val))
		for y2 := 0; y2 < f.size; y2++ {
			if y2 != cell.Y {
				f.limitCand(f.index(gridcore.P{Y: y2, X: cell.X}), lim)
			}
		}
		for x2 := 0; x2 < f.size; x2++ {
			if x2 != cell.X {
				f.limitCand(f.index(gridcore.P{Y: cell.Y, X: x2}), lim)
			}
		}
	}
}

// SetClue fixes the clue at (side, idx) for idx in [0, size), idempotently.
func (f *Field) SetClue(side ClueSide, idx, clue int) {
	cur := f.getClue(side, idx)
	if cur != NoClue {
		if cur != clue {
			f.inconsistent = true
		}
		return
	}
	switch side {
	case Left:
		f.clueFront[idx] = clue
	case Right:
		f.clueBack[idx] = clue
	case Top:
		f.clueFront[idx+f.size] = clue
	case Bottom:
		f.clueBack[idx+f.size] = clue
	}
	if side == Left || side == Right {
		f.inspectLine(idx)
	} else {
		f.inspectLine(idx + f.size)
	}
}

func (f *Field) getClue(side ClueSide, idx int) int {
	switch side {
	case Left:
		return f.clueFront[idx]
	case Right:
		return f.clueBack[idx]
	case Top:
		return f.clueFront[idx+f.size]
	case Bottom:
		return f.clueBack[idx+f.size]
	}
	panic("endview: unknown clue side")
}

// group returns the pos-th cell of line gid: gid < size addresses row gid,
// otherwise column gid-size.
func (f *Field) group(gid, pos int) gridcore.P {
	if gid < f.size {
		return gridcore.P{Y: gid, X: pos}
	}
	return gridcore.P{Y: pos, X: gid - f.size}
}

// directedGroup reverses the indexing within the line when dir is true, so
// callers can scan a line from either end with the same loop.
func (f *Field) directedGroup(gid, pos int, dir bool) gridcore.P {
	if dir {
		return f.group(gid, f.size-pos-1)
	}
	return f.group(gid, pos)
}

func (f *Field) limitCand(i int, lim gridcore.Candidates) {
	cur := f.cand[i]
	if cur&lim == cur {
		return
	}
	f.cand[i] = cur & lim
	if f.cand[i] == 0 {
		f.decideAt(i, Empty)
	}
	f.inspectCellAt(i)
}

func (f *Field) decideAt(i int, val Value) {
	y, x := i/f.size, i%f.size
	f.Decide(gridcore.P{Y: y, X: x}, val)
}

func (f *Field) inspectCell(cell gridcore.P) { f.inspectCellAt(f.index(cell)) }

func (f *Field) inspectCellAt(i int) {
	if f.value[i] == Some {
		if only := onlyBit(f.cand[i]); only >= 0 {
			f.decideAt(i, Value(only))
		}
	}
	y, x := i/f.size, i%f.size
	f.inspectLine(y)
	f.inspectLine(x + f.size)
}

func onlyBit(c gridcore.Candidates) int {
	if c == 0 || c&(c-1) != 0 {
		return -1
	}
	for b := 0; b < 31; b++ {
		if c&(1<<uint(b)) != 0 {
			return b
		}
	}
	return -1
}

func (f *Field) inspectLine(group int) {
	if f.inconsistent {
		return
	}
	size, nAlpha := f.size, f.nAlpha

	nSome, nEmpty := 0, 0
	for i := 0; i < size; i++ {
		v := f.value[f.index(f.group(group, i))]
		switch {
		case v == Empty:
			nEmpty++
		case v != Undecided:
			nSome++
		}
	}
	if nSome == nAlpha {
		for i := 0; i < size; i++ {
			c := f.group(group, i)
			if f.value[f.index(c)] == Undecided {
				f.Decide(c, Empty)
			}
		}
	}
	if nEmpty == size-nAlpha {
		for i := 0; i < size; i++ {
			c := f.group(group, i)
			if f.value[f.index(c)] == Undecided {
				f.Decide(c, Some)
			}
		}
	}

	for a := 0; a < nAlpha; a++ {
		loc := -1
		for i := 0; i < size; i++ {
			if f.cand[f.index(f.group(group, i))]&symbolBit(a) != 0 {
				if loc == -1 {
					loc = i
				} else {
					loc = -2
					break
				}
			}
		}
		if loc == -1 {
			f.inconsistent = true
			return
		} else if loc != -2 {
			f.Decide(f.group(group, loc), Value(a))
		}
	}

	for _, dir := range [2]bool{true, false} {
		var clue int
		if !dir {
			clue = f.clueFront[group]
		} else {
			clue = f.clueBack[group]
		}
		if clue == NoClue {
			continue
		}

		firstNonEmpty := -1
		for i := 0; i < size; i++ {
			if f.value[f.index(f.directedGroup(group, i, dir))] != Empty {
				firstNonEmpty = i
				break
			}
		}
		if firstNonEmpty == -1 {
			f.inconsistent = true
			return
		}
		f.limitCand(f.index(f.directedGroup(group, firstNonEmpty, dir)), symbolBit(clue))
		if f.inconsistent {
			return
		}

		firstDiff := -1
		for i := 0; i < size; i++ {
			c := f.directedGroup(group, i, dir)
			v := f.value[f.index(c)]
			if v != Undecided && f.cand[f.index(c)]&symbolBit(clue) == 0 {
				firstDiff = i
			}
		}
		if firstDiff != -1 {
			for i := firstDiff + 1; i < size; i++ {
				f.limitCand(f.index(f.directedGroup(group, i, dir)), ^symbolBit(clue))
				if f.inconsistent {
					return
				}
			}
		}

		nBackDiff := nAlpha - 1
		for i := 0; i < size; i++ {
			c := f.directedGroup(group, i, !dir)
			v := f.value[f.index(c)]
			if v != Empty {
				f.limitCand(f.index(c), ^symbolBit(clue))
				if f.inconsistent {
					return
				}
				nBackDiff--
				if nBackDiff == 0 {
					break
				}
			}
		}
	}
}
