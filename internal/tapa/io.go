package tapa

import (
	"fmt"
	"strings"

	"penciloid/internal/gridcore"
)

// ParseClues reads a penciloid-style Tapa problem: height lines of
// width 4-char tokens, each up to four digits followed by '.' padding
// ("13.." = clue {1,3}; "0..." = the special "0" clue; "...." = no clue).
func ParseClues(text string) (height, width int, clues map[gridcore.P]Clue, err error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	height = len(lines)
	if height == 0 {
		return 0, 0, nil, fmt.Errorf("tapa: empty problem text")
	}
	if len(lines[0])%4 != 0 {
		return 0, 0, nil, fmt.Errorf("tapa: row length %d not a multiple of 4", len(lines[0]))
	}
	width = len(lines[0]) / 4
	clues = make(map[gridcore.P]Clue)

	for y, line := range lines {
		if len(line) != width*4 {
			return 0, 0, nil, fmt.Errorf("tapa: row %d has length %d, want %d", y, len(line), width*4)
		}
		for x := 0; x < width; x++ {
			tok := line[x*4 : x*4+4]
			if tok == "...." {
				continue
			}
			pattern := []int{}
			for _, ch := range tok {
				if ch == '.' {
					break
				}
				if ch < '0' || ch > '9' {
					return 0, 0, nil, fmt.Errorf("tapa: bad clue token %q at (%d,%d)", tok, y, x)
				}
				d := int(ch - '0')
				if d == 0 {
					continue // the "0" clue is represented as an empty Pattern
				}
				pattern = append(pattern, d)
			}
			clues[gridcore.P{Y: y, X: x}] = Clue{HasClue: true, Pattern: pattern}
		}
	}
	return height, width, clues, nil
}

// BuildField constructs a Field of the given shape with clues attached.
func BuildField(height, width int, clues map[gridcore.P]Clue, dic *Dictionary) *Field {
	f := NewField(height, width, dic)
	for p, c := range clues {
		f.AddClue(p, c)
	}
	return f
}

// Dump renders the board: "#" for a clue cell, "B" for Black, "." for
// White, "?" for Undecided.
func (f *Field) Dump() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := gridcore.P{Y: y, X: x}
			if f.Clue(p).HasClue {
				b.WriteByte('#')
				continue
			}
			switch f.Cell(p) {
			case Black:
				b.WriteByte('B')
			case White:
				b.WriteByte('.')
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
