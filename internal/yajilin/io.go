package yajilin

import (
	"fmt"
	"strings"

	"penciloid/internal/gridcore"
)

// ParseClues reads an H-line text block. '.' marks an open cell; a clue
// cell is written as a direction letter (U/D/L/R) immediately followed by
// its count digit (0-9), e.g. "R3".
func ParseClues(text string) (*Field, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("yajilin: empty puzzle text")
	}
	var rows [][]string
	width := -1
	for _, line := range lines {
		var tokens []string
		runes := []rune(line)
		for i := 0; i < len(runes); {
			if runes[i] == '.' {
				tokens = append(tokens, ".")
				i++
				continue
			}
			if i+1 >= len(runes) || runes[i+1] < '0' || runes[i+1] > '9' {
				return nil, fmt.Errorf("yajilin: malformed clue token at rune %d", i)
			}
			tokens = append(tokens, string(runes[i:i+2]))
			i += 2
		}
		if width == -1 {
			width = len(tokens)
		} else if len(tokens) != width {
			return nil, fmt.Errorf("yajilin: ragged row, want width %d", width)
		}
		rows = append(rows, tokens)
	}

	f := New(len(rows), width)
	for y, row := range rows {
		for x, tok := range row {
			if tok == "." {
				continue
			}
			var dir gridcore.D
			switch tok[0] {
			case 'U':
				dir = gridcore.DUp
			case 'D':
				dir = gridcore.DDown
			case 'L':
				dir = gridcore.DLeft
			case 'R':
				dir = gridcore.DRight
			default:
				return nil, fmt.Errorf("yajilin: unknown direction %q", tok[0])
			}
			f.AddClue(gridcore.P{Y: y, X: x}, dir, int(tok[1]-'0'))
		}
	}
	f.CheckAll()
	return f, nil
}

// Dump renders the cell grid as ASCII: '.' Undecided, '#' Blocked, 'o' Line,
// and a two-character direction+count token for clues.
func (f *Field) Dump() string {
	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := gridcore.P{Y: y, X: x}
			switch f.cells.At(p) {
			case Blocked:
				b.WriteByte('#')
			case Line:
				b.WriteByte('o')
			case Clue:
				info := f.clues.At(p)
				b.WriteByte(dirGlyph(info.dir))
				b.WriteByte(byte('0' + info.n))
				continue
			default:
				b.WriteByte('.')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func dirGlyph(d gridcore.D) byte {
	switch d {
	case gridcore.DUp:
		return 'U'
	case gridcore.DDown:
		return 'D'
	case gridcore.DLeft:
		return 'L'
	default:
		return 'R'
	}
}
