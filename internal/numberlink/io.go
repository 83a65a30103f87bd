package numberlink

import (
	"fmt"
	"strconv"
	"strings"

	"penciloid/internal/gridcore"
)

// ParseSolverClues reads the penciloid-style Numberlink text format: a first
// line "H W", then H lines of W space-separated tokens, where a positive
// integer is a clue label and any non-numeric token is an empty cell.
func ParseSolverClues(text string) (*SolverField, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("numberlink: empty puzzle text")
	}
	var h, w int
	if _, err := fmt.Sscanf(lines[0], "%d %d", &h, &w); err != nil {
		return nil, fmt.Errorf("numberlink: invalid header %q: %w", lines[0], err)
	}
	if len(lines) < h+1 {
		return nil, fmt.Errorf("numberlink: expected %d rows, got %d", h, len(lines)-1)
	}
	grid := make([][]int, h)
	for y := 0; y < h; y++ {
		tokens := strings.Fields(lines[y+1])
		if len(tokens) != w {
			return nil, fmt.Errorf("numberlink: row %d has %d tokens, want %d", y, len(tokens), w)
		}
		grid[y] = make([]int, w)
		for x, tok := range tokens {
			v, err := strconv.Atoi(tok)
			if err != nil || v <= 0 {
				grid[y][x] = noClue
			} else {
				grid[y][x] = v
			}
		}
	}
	return NewSolverField(h, w, grid), nil
}

// Dump renders the solved edge placement as ASCII: '.' for a cell not yet
// fully connected, '+' joints, '-'/'|' for committed Line segments.
func (f *SolverField) Dump() string {
	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := gridcore.P{Y: y, X: x}
			b.WriteByte('o')
			if x+1 < f.Width {
				e := gridcore.OfCell(p).Add(gridcore.DRight)
				if f.edges.At(e) == gridcore.Line {
					b.WriteByte('-')
				} else {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteByte('\n')
		if y+1 < f.Height {
			for x := 0; x < f.Width; x++ {
				p := gridcore.P{Y: y, X: x}
				e := gridcore.OfCell(p).Add(gridcore.DDown)
				if f.edges.At(e) == gridcore.Line {
					b.WriteByte('|')
				} else {
					b.WriteByte(' ')
				}
				if x+1 < f.Width {
					b.WriteByte(' ')
				}
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
