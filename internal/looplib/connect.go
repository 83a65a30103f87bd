package looplib

import "penciloid/internal/gridcore"

// InBoundsCell reports whether p addresses a real cell of the grid.
func (gl *GridLoop) InBoundsCell(p gridcore.P) bool {
	return p.Y >= 0 && p.Y < gl.Height && p.X >= 0 && p.X < gl.Width
}

// CheckConnectability latches inconsistent if the cells touched by at least
// one Line edge are not all mutually reachable via non-Blank edges. A single
// simple loop visits a connected set of cells; once the Line edges split into
// two components that can never be joined (every edge between them already
// Blank), the partial state can never complete.
func (gl *GridLoop) CheckConnectability() {
	if gl.inconsistent {
		return
	}
	touched := make(map[gridcore.P]bool)
	for y := 0; y < gl.Height; y++ {
		for x := 0; x < gl.Width; x++ {
			p := gridcore.P{Y: y, X: x}
			cellLP := gridcore.OfCell(p)
			for _, d := range gridcore.Dirs4 {
				if gl.edges.Safe(cellLP.Add(d), gridcore.Blank) == gridcore.Line {
					touched[p] = true
					break
				}
			}
		}
	}
	if len(touched) == 0 {
		return
	}

	var start gridcore.P
	for p := range touched {
		start = p
		break
	}
	visited := map[gridcore.P]bool{start: true}
	queue := []gridcore.P{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curLP := gridcore.OfCell(cur)
		for _, d := range gridcore.Dirs4 {
			if gl.edges.Safe(curLP.Add(d), gridcore.Blank) == gridcore.Blank {
				continue
			}
			np := cur.Add(d)
			if !gl.InBoundsCell(np) || visited[np] {
				continue
			}
			visited[np] = true
			queue = append(queue, np)
		}
	}

	for p := range touched {
		if !visited[p] {
			gl.setInconsistent()
			return
		}
	}
}
