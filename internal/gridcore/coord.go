// Package gridcore provides the three coordinate spaces shared by every
// puzzle field (cell-space P, loop-edge-space LP, offset D) and the generic
// dense grid they index into, generalized to arbitrary H x W and to the
// loop lattice Numberlink/Slitherlink/Yajilin all share.
package gridcore

// P is a cell of an H x W grid.
type P struct {
	Y, X int
}

// Add returns p shifted by d.
func (p P) Add(d D) P {
	return P{Y: p.Y + d.Y, X: p.X + d.X}
}

// D is a signed offset, addable to P or LP and rotatable 90 degrees.
type D struct {
	Y, X int
}

// CW rotates the offset 90 degrees clockwise.
func (d D) CW() D {
	return D{Y: d.X, X: -d.Y}
}

// CCW rotates the offset 90 degrees counter-clockwise.
func (d D) CCW() D {
	return D{Y: -d.X, X: d.Y}
}

// Opposite returns the offset negated.
func (d D) Opposite() D {
	return D{Y: -d.Y, X: -d.X}
}

// The four orthogonal unit offsets, in a fixed enumeration order used
// throughout the solvers for deterministic iteration.
var (
	DUp    = D{Y: -1, X: 0}
	DDown  = D{Y: 1, X: 0}
	DLeft  = D{Y: 0, X: -1}
	DRight = D{Y: 0, X: 1}
)

// Dirs4 lists the four orthogonal offsets in Up, Right, Down, Left order.
var Dirs4 = [4]D{DUp, DRight, DDown, DLeft}

// LP is a point in the (2H+1) x (2W+1) loop lattice. Parity of (Y, X)
// determines what it addresses:
//
//	(even, even) -> a vertex
//	(odd, odd)   -> a cell center
//	otherwise    -> an edge (horizontal if Y even, vertical if Y odd)
type LP struct {
	Y, X int
}

// OfCell returns the loop-lattice point for the center of cell p.
func OfCell(p P) LP {
	return LP{Y: 2*p.Y + 1, X: 2*p.X + 1}
}

// OfVertex returns the loop-lattice point for the vertex at cell-corner p
// (the vertex at the top-left of cell p, i.e. vertex coordinates directly).
func OfVertex(p P) LP {
	return LP{Y: 2 * p.Y, X: 2 * p.X}
}

// Add returns lp shifted by d (d's units are half-cells on the lattice).
func (lp LP) Add(d D) LP {
	return LP{Y: lp.Y + d.Y, X: lp.X + d.X}
}

// IsVertex reports whether lp addresses a lattice vertex.
func (lp LP) IsVertex() bool {
	return lp.Y%2 == 0 && lp.X%2 == 0
}

// IsCell reports whether lp addresses a cell center.
func (lp LP) IsCell() bool {
	return lp.Y%2 != 0 && lp.X%2 != 0
}

// IsEdge reports whether lp addresses an edge (the remaining parity classes).
func (lp LP) IsEdge() bool {
	return !lp.IsVertex() && !lp.IsCell()
}

// IsHorizontal reports whether an edge point runs horizontally (its Y is even).
func (lp LP) IsHorizontal() bool {
	return lp.Y%2 == 0
}

// ToCell converts a cell-center loop point back to cell-space.
func (lp LP) ToCell() P {
	return P{Y: (lp.Y - 1) / 2, X: (lp.X - 1) / 2}
}

// ToVertex converts a vertex loop point back to cell-space vertex coordinates.
func (lp LP) ToVertex() P {
	return P{Y: lp.Y / 2, X: lp.X / 2}
}

// VertexNeighbors4 returns the four edge loop-points incident to a vertex,
// in Up, Right, Down, Left order.
func VertexNeighbors4(v LP) [4]LP {
	return [4]LP{v.Add(D{-1, 0}), v.Add(D{0, 1}), v.Add(D{1, 0}), v.Add(D{0, -1})}
}

// EdgeEndpoints returns the two vertex loop-points at the ends of edge e.
// For a horizontal edge (even row) the ends are left/right; for a vertical
// edge (odd row) the ends are up/down.
func EdgeEndpoints(e LP) (LP, LP) {
	if e.IsHorizontal() {
		return LP{Y: e.Y, X: e.X - 1}, LP{Y: e.Y, X: e.X + 1}
	}
	return LP{Y: e.Y - 1, X: e.X}, LP{Y: e.Y + 1, X: e.X}
}

// CellNeighbors2 returns the two cell centers adjacent across edge e (one may
// be outside the grid). For a horizontal edge the cells are above/below; for
// a vertical edge they are left/right.
func CellNeighbors2(e LP) (LP, LP) {
	if e.IsHorizontal() {
		return LP{Y: e.Y - 1, X: e.X}, LP{Y: e.Y + 1, X: e.X}
	}
	return LP{Y: e.Y, X: e.X - 1}, LP{Y: e.Y, X: e.X + 1}
}
