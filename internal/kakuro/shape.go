// Package kakuro implements the sum-placement puzzle field: groups of
// non-clue cells (maximal horizontal or vertical runs) each carry a target
// sum, and every group's cells must hold distinct digits 1-9 summing to it.
package kakuro

import "penciloid/internal/gridcore"

// MaxVal is the largest digit a Kakuro cell may hold.
const MaxVal = 9

// Clue describes one cell of the input grid. A clue cell is a block: it is
// never assigned a digit itself, but may carry a horizontal and/or vertical
// sub-clue (-1 for "no sub-clue in this direction") that targets the run of
// plain cells immediately following it on that line.
type Clue struct {
	HasClue    bool
	Horizontal int
	Vertical   int
}

// NoSubClue marks a direction with no sum requirement.
const NoSubClue = -1

// group is a maximal run of same-line non-clue cells sharing one sum target.
type group struct {
	cells []int // flat cell indices, in line order
	sum   int
}

// shape derives, from the clue layout alone, the two groups each non-clue
// cell belongs to (its horizontal run and its vertical run).
type shape struct {
	height, width int
	hasClue       []bool
	cellGroupH    []int // flat index -> group index, -1 if cell is a clue cell
	cellGroupV    []int
	groups        []group
}

func newShape(height, width int, clues []Clue) *shape {
	n := height * width
	s := &shape{
		height:     height,
		width:      width,
		hasClue:    make([]bool, n),
		cellGroupH: make([]int, n),
		cellGroupV: make([]int, n),
	}
	for i := range s.cellGroupH {
		s.cellGroupH[i] = -1
		s.cellGroupV[i] = -1
	}
	for i, c := range clues {
		s.hasClue[i] = c.HasClue
	}

	idx := func(y, x int) int { return y*width + x }

	for y := 0; y < height; y++ {
		start := -1
		for x := 0; x <= width; x++ {
			if x == width || s.hasClue[idx(y, x)] {
				if start >= 0 {
					g := group{sum: clues[idx(y, start-1)].Horizontal}
					for xx := start; xx < x; xx++ {
						g.cells = append(g.cells, idx(y, xx))
						s.cellGroupH[idx(y, xx)] = len(s.groups)
					}
					s.groups = append(s.groups, g)
				}
				start = -1
			} else if start < 0 {
				start = x
			}
		}
	}

	for x := 0; x < width; x++ {
		start := -1
		for y := 0; y <= height; y++ {
			if y == height || s.hasClue[idx(y, x)] {
				if start >= 0 {
					g := group{sum: clues[idx(start-1, x)].Vertical}
					for yy := start; yy < y; yy++ {
						g.cells = append(g.cells, idx(yy, x))
						s.cellGroupV[idx(yy, x)] = len(s.groups)
					}
					s.groups = append(s.groups, g)
				}
				start = -1
			} else if start < 0 {
				start = y
			}
		}
	}

	return s
}

func (s *shape) cellGroups(i int) (h, v int) { return s.cellGroupH[i], s.cellGroupV[i] }

func (s *shape) index(p gridcore.P) int { return p.Y*s.width + p.X }
