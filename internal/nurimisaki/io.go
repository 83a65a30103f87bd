package nurimisaki

import (
	"fmt"
	"strconv"
	"strings"

	"penciloid/internal/gridcore"
)

// ParseClues reads a penciloid-style Nurimisaki problem: height lines of
// width space-separated tokens, a non-negative integer is a cape clue
// length, anything else means no clue.
func ParseClues(text string) (height, width int, clues map[gridcore.P]int, err error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	height = len(lines)
	if height == 0 {
		return 0, 0, nil, fmt.Errorf("nurimisaki: empty problem text")
	}
	clues = make(map[gridcore.P]int)
	for y, line := range lines {
		tokens := strings.Fields(line)
		if y == 0 {
			width = len(tokens)
		} else if len(tokens) != width {
			return 0, 0, nil, fmt.Errorf("nurimisaki: row %d has %d tokens, want %d", y, len(tokens), width)
		}
		for x, tok := range tokens {
			n, err := strconv.Atoi(tok)
			if err != nil || n < 0 {
				continue
			}
			clues[gridcore.P{Y: y, X: x}] = n
		}
	}
	return height, width, clues, nil
}

// BuildField constructs a Field of the given shape with clues attached.
func BuildField(height, width int, clues map[gridcore.P]int) *Field {
	return NewField(height, width, clues)
}

// Dump renders the board: "#" Black, " " White, "." Undecided, the clue
// number (or "?" if unknown) for a cape.
func (f *Field) Dump() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.Cell(gridcore.P{Y: y, X: x})
			switch c.Kind {
			case Black:
				b.WriteByte('#')
			case White:
				b.WriteByte(' ')
			case Cape:
				if c.N >= 1 {
					b.WriteString(strconv.Itoa(c.N))
				} else {
					b.WriteByte('?')
				}
			default:
				b.WriteByte('.')
			}
			if x != f.width-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
