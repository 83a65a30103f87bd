package looplib

import "penciloid/internal/gridcore"

// inspectVertex applies the degree rule at vertex v: a loop is a single
// cycle, so every vertex must end up with Line-degree 0 or 2.
func (gl *GridLoop) inspectVertex(v gridcore.LP) {
	var lines, undecideds []gridcore.LP
	for _, e := range gridcore.VertexNeighbors4(v) {
		if !gl.edges.InBounds(e) {
			continue
		}
		switch gl.edges.At(e) {
		case gridcore.Line:
			lines = append(lines, e)
		case gridcore.Undecided:
			undecideds = append(undecideds, e)
		}
	}

	if len(lines) >= 3 {
		gl.setInconsistent()
		return
	}

	switch len(lines) {
	case 2:
		for _, e := range undecideds {
			gl.DecideEdge(e, gridcore.Blank)
			if gl.inconsistent {
				return
			}
		}
		gl.join(lines[0], lines[1], v)

	case 1:
		lineEdge := lines[0]
		lineFar := gl.farEndpoint(lineEdge, v)
		var candidates []gridcore.LP
		for _, e := range undecideds {
			if gl.edges.At(e) != gridcore.Undecided {
				continue
			}
			if gl.farEndpoint(e, v) == lineFar {
				// Extending the loop this way would close a sub-loop
				// before every Line edge is accounted for.
				gl.DecideEdge(e, gridcore.Blank)
				if gl.inconsistent {
					return
				}
				continue
			}
			candidates = append(candidates, e)
		}
		switch len(candidates) {
		case 0:
			gl.setInconsistent()
		case 1:
			gl.join(lineEdge, candidates[0], v)
		}

	case 0:
		switch len(undecideds) {
		case 1:
			gl.DecideEdge(undecideds[0], gridcore.Blank)
		case 2:
			gl.join(undecideds[0], undecideds[1], v)
		}
	}
}
