package slitherlink

import (
	"fmt"
	"strings"

	"penciloid/internal/gridcore"
)

// ParseClues reads an H-line text block, one character per cell ('.' for no
// clue, '0'-'3' for a clue), and returns a ready-to-solve Field.
func ParseClues(text string) (*Field, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("slitherlink: empty puzzle text")
	}
	width := len(lines[0])
	for _, l := range lines {
		if len(l) != width {
			return nil, fmt.Errorf("slitherlink: ragged row, want width %d", width)
		}
	}
	f := New(len(lines), width)
	for y, line := range lines {
		for x, ch := range line {
			switch {
			case ch == '.':
				// no clue
			case ch >= '0' && ch <= '3':
				f.AddClue(gridcore.P{Y: y, X: x}, int8(ch-'0'))
			default:
				return nil, fmt.Errorf("slitherlink: invalid clue rune %q at (%d,%d)", ch, y, x)
			}
		}
	}
	return f, nil
}

// Dump renders the current edge state as an ASCII grid: '+' at every vertex,
// '-'/'|' for a decided Line edge, space for Blank, '?' for Undecided, and
// the clue digit (or '.') at each cell center.
func (f *Field) Dump() string {
	var b strings.Builder
	for y := 0; y <= 2*f.Height; y++ {
		for x := 0; x <= 2*f.Width; x++ {
			lp := gridcore.LP{Y: y, X: x}
			switch {
			case lp.IsVertex():
				b.WriteByte('+')
			case lp.IsCell():
				p := lp.ToCell()
				if c := f.clues.At(p); c == NoClue {
					b.WriteByte('.')
				} else {
					b.WriteByte(byte('0' + c))
				}
			case lp.IsHorizontal():
				b.WriteByte(horizontalGlyph(f.Loop.GetEdge(lp)))
			default:
				b.WriteByte(verticalGlyph(f.Loop.GetEdge(lp)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func horizontalGlyph(s gridcore.EdgeStatus) byte {
	switch s {
	case gridcore.Line:
		return '-'
	case gridcore.Blank:
		return ' '
	default:
		return '?'
	}
}

func verticalGlyph(s gridcore.EdgeStatus) byte {
	switch s {
	case gridcore.Line:
		return '|'
	case gridcore.Blank:
		return ' '
	default:
		return '?'
	}
}
