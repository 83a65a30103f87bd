package looplib

import "penciloid/internal/gridcore"

const (
	sideUnknown = -1
	sideOut     = 0
	sideIn      = 1
)

// ApplyInOutRule 2-colors every cell reachable from outside the grid by
// crossing only decided edges (Blank keeps the same side, Line flips it),
// then forces any still-Undecided edge whose two flanking cells both have a
// known side: same side forces Blank, differing sides force Line. Puzzle
// fields call this after clue propagation settles, the way Yajilin's field
// runs it as a periodic global pass rather than a per-edge callback.
func (gl *GridLoop) ApplyInOutRule() {
	if gl.inconsistent {
		return
	}
	sides := gridcore.NewGridFilled[int](gl.Height, gl.Width, sideUnknown)

	flip := func(s int, status gridcore.EdgeStatus) int {
		if status == gridcore.Line {
			if s == sideOut {
				return sideIn
			}
			return sideOut
		}
		return s
	}

	var queue []gridcore.P
	for y := 0; y < gl.Height; y++ {
		for x := 0; x < gl.Width; x++ {
			p := gridcore.P{Y: y, X: x}
			if sides.At(p) != sideUnknown {
				continue
			}
			cellLP := gridcore.OfCell(p)
			for _, d := range gridcore.Dirs4 {
				if sides.InBounds(p.Add(d)) {
					continue // not a boundary edge of the grid
				}
				status := gl.edges.At(cellLP.Add(d))
				if status == gridcore.Undecided {
					continue
				}
				sides.Set(p, flip(sideOut, status))
				queue = append(queue, p)
				break
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		s := sides.At(p)
		cellLP := gridcore.OfCell(p)
		for _, d := range gridcore.Dirs4 {
			np := p.Add(d)
			if !sides.InBounds(np) {
				continue
			}
			if sides.At(np) != sideUnknown {
				continue
			}
			status := gl.edges.At(cellLP.Add(d))
			if status == gridcore.Undecided {
				continue
			}
			sides.Set(np, flip(s, status))
			queue = append(queue, np)
		}
	}

	cellSide := func(c gridcore.LP) int {
		p := c.ToCell()
		if !sides.InBounds(p) {
			return sideOut
		}
		return sides.At(p)
	}

	for y := 0; y < gl.loopH; y++ {
		for x := 0; x < gl.loopW; x++ {
			e := gridcore.LP{Y: y, X: x}
			if !e.IsEdge() || !gl.edges.InBounds(e) {
				continue
			}
			if gl.edges.At(e) != gridcore.Undecided {
				continue
			}
			c1, c2 := gridcore.CellNeighbors2(e)
			s1, s2 := cellSide(c1), cellSide(c2)
			if s1 == sideUnknown || s2 == sideUnknown {
				continue
			}
			if s1 == s2 {
				gl.DecideEdge(e, gridcore.Blank)
			} else {
				gl.DecideEdge(e, gridcore.Line)
			}
			if gl.inconsistent {
				return
			}
		}
	}
}
