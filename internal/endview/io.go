package endview

import (
	"fmt"
	"strconv"
	"strings"

	"penciloid/internal/gridcore"
)

// ParseClues reads a penciloid-style Endview problem: first line "size
// n_alpha", then four lines of size tokens each (top, bottom, left, right
// border clues in that order), a non-numeric token meaning no clue.
func ParseClues(text string) (*Field, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 5 {
		return nil, fmt.Errorf("endview: expected header + 4 clue lines, found %d lines", len(lines))
	}
	var size, nAlpha int
	if _, err := fmt.Sscanf(lines[0], "%d %d", &size, &nAlpha); err != nil {
		return nil, fmt.Errorf("endview: malformed header %q: %w", lines[0], err)
	}
	f := NewField(size, nAlpha)

	rows := [4]struct {
		side ClueSide
		line string
	}{
		{Top, lines[1]},
		{Bottom, lines[2]},
		{Left, lines[3]},
		{Right, lines[4]},
	}
	for _, row := range rows {
		tokens := strings.Fields(row.line)
		if len(tokens) != size {
			return nil, fmt.Errorf("endview: expected %d clue tokens, found %d", size, len(tokens))
		}
		for i, tok := range tokens {
			v, err := strconv.Atoi(tok)
			if err != nil || v < 0 || v >= nAlpha {
				continue
			}
			f.SetClue(row.side, i, v)
		}
	}
	return f, nil
}

// Dump renders the board: a digit per decided symbol, "." for Some (known
// non-empty but undetermined), "x" for Empty, "?" for Undecided.
func (f *Field) Dump() string {
	var b strings.Builder
	for y := 0; y < f.size; y++ {
		for x := 0; x < f.size; x++ {
			switch v := f.Value(gridcore.P{Y: y, X: x}); {
			case v >= 0:
				b.WriteByte(byte('0' + int(v)))
			case v == Empty:
				b.WriteByte('x')
			case v == Some:
				b.WriteByte('.')
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
