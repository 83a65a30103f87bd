package kakuro

import (
	"fmt"
	"strings"
)

// ParseClues reads the "H W N" header followed by N "y x horizontal
// vertical" clue lines; every other cell is a plain digit cell.
func ParseClues(text string) (height, width int, clues []Clue, err error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 1 {
		return 0, 0, nil, fmt.Errorf("kakuro: empty input")
	}
	var n int
	if _, err := fmt.Sscanf(lines[0], "%d %d %d", &height, &width, &n); err != nil {
		return 0, 0, nil, fmt.Errorf("kakuro: malformed header %q: %w", lines[0], err)
	}
	if height <= 0 || width <= 0 {
		return 0, 0, nil, fmt.Errorf("kakuro: non-positive dimensions %dx%d", height, width)
	}
	clues = make([]Clue, height*width)
	for i := 0; i < n; i++ {
		if i+1 >= len(lines) {
			return 0, 0, nil, fmt.Errorf("kakuro: expected %d clue lines, found %d", n, len(lines)-1)
		}
		var y, x, h, v int
		if _, err := fmt.Sscanf(lines[i+1], "%d %d %d %d", &y, &x, &h, &v); err != nil {
			return 0, 0, nil, fmt.Errorf("kakuro: malformed clue line %q: %w", lines[i+1], err)
		}
		if y < 0 || y >= height || x < 0 || x >= width {
			return 0, 0, nil, fmt.Errorf("kakuro: clue at (%d,%d) out of bounds", y, x)
		}
		clues[y*width+x] = Clue{HasClue: true, Horizontal: h, Vertical: v}
	}
	return height, width, clues, nil
}

// Dump renders the field's current state: "#" for a clue cell, a digit for
// a decided cell, "." for an undecided one.
func (f *Field) Dump() string {
	var b strings.Builder
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			i := y*f.Width() + x
			switch {
			case f.shape.hasClue[i]:
				b.WriteByte('#')
			case f.val[i] != undecided:
				b.WriteByte(byte('0' + f.val[i]))
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
