// Package numberlink implements the placement generator (AnswerField) and
// clue solver (SolverField) for Numberlink: a grid of non-crossing paths,
// each connecting a pair of same-labeled endpoints, that together visit
// every cell.
package numberlink

import "penciloid/internal/gridcore"

// EndpointConstraint restricts whether a cell may be a path endpoint.
type EndpointConstraint int

const (
	Any EndpointConstraint = iota
	Forced
	Prohibited
)

func (c EndpointConstraint) String() string {
	switch c {
	case Forced:
		return "Forced"
	case Prohibited:
		return "Prohibited"
	default:
		return "Any"
	}
}

// Symmetry names a point-reflection class applied to a generated placement's
// endpoint constraint grid.
type Symmetry int

const (
	NoSymmetry Symmetry = iota
	Dyad
	Tetrad
	Horizontal
	Vertical
)

// Mirror returns the image(s) of p under sym for an H x W grid, including p
// itself. Dyad mirrors (y,x) -> (H-1-y, W-1-x); Tetrad additionally mirrors
// (y,x) -> (x,y) composed with dyad; Horizontal mirrors (y,x) -> (y, W-1-x);
// Vertical mirrors (y,x) -> (H-1-y, x).
func Mirror(sym Symmetry, height, width int, p gridcore.P) []gridcore.P {
	dyad := gridcore.P{Y: height - 1 - p.Y, X: width - 1 - p.X}
	switch sym {
	case Dyad:
		return []gridcore.P{p, dyad}
	case Tetrad:
		if height != width {
			return []gridcore.P{p, dyad}
		}
		transposed := gridcore.P{Y: p.X, X: p.Y}
		transposedDyad := gridcore.P{Y: height - 1 - transposed.Y, X: width - 1 - transposed.X}
		return []gridcore.P{p, dyad, transposed, transposedDyad}
	case Horizontal:
		return []gridcore.P{p, {Y: p.Y, X: width - 1 - p.X}}
	case Vertical:
		return []gridcore.P{p, {Y: height - 1 - p.Y, X: p.X}}
	default:
		return []gridcore.P{p}
	}
}

// edgeBetween returns the loop-lattice edge connecting two orthogonally
// adjacent cells a and b.
func edgeBetween(a, b gridcore.P) (gridcore.LP, bool) {
	dy, dx := b.Y-a.Y, b.X-a.X
	if (dy == 0) == (dx == 0) {
		return gridcore.LP{}, false
	}
	if dy < -1 || dy > 1 || dx < -1 || dx > 1 {
		return gridcore.LP{}, false
	}
	return gridcore.OfCell(a).Add(gridcore.D{Y: dy, X: dx}), true
}

// MirrorEdge returns the image(s) of edge e under sym for an H x W grid,
// including e itself, by mirroring the pair of cells e connects and
// reconnecting their images pairwise. Mirror's image lists are produced in
// a fixed, symmetry-class-specific order (identity, then each reflection),
// so the i'th image of one flanking cell always pairs with the i'th image
// of the other.
func MirrorEdge(sym Symmetry, height, width int, e gridcore.LP) []gridcore.LP {
	c1, c2 := gridcore.CellNeighbors2(e)
	images1 := Mirror(sym, height, width, c1.ToCell())
	images2 := Mirror(sym, height, width, c2.ToCell())

	out := make([]gridcore.LP, 0, len(images1))
	for i := range images1 {
		if image, ok := edgeBetween(images1[i], images2[i]); ok {
			out = append(out, image)
		}
	}
	return out
}

// cellEdges returns the (at most 4) loop-lattice edge points connecting p to
// its in-bounds orthogonal neighbors.
func cellEdges(height, width int, p gridcore.P) []gridcore.LP {
	var out []gridcore.LP
	cellLP := gridcore.OfCell(p)
	for _, d := range gridcore.Dirs4 {
		np := p.Add(d)
		if np.Y < 0 || np.Y >= height || np.X < 0 || np.X >= width {
			continue
		}
		out = append(out, cellLP.Add(d))
	}
	return out
}
