// Package looplib implements GridLoop: a reusable propagator for the family
// of puzzles whose solution is a single simple closed loop on the edges of
// a grid. It tracks edge state, chains of same-status edges linked into
// rings, vertex degree constraints, the inside/outside parity deduction, and
// global connectivity, and calls back into a puzzle-specific Field for
// clue-aware rules, driving per-position Inspect calls over a shared
// GridLoop the way a constraint-propagation solver drives per-technique
// detectors over a shared board.
package looplib

import (
	"penciloid/internal/gridcore"
	"penciloid/internal/squeue"
)

// chainInfo holds the per-edge ring bookkeeping: the doubly-linked chain
// pointers and cached endpoint/size data used to detect and merge rings.
type chainInfo struct {
	next       gridcore.LP
	anotherEnd gridcore.LP
	endPoints  [2]gridcore.LP
	size       int
}

// GridLoop maintains the edge-state / chain-ring propagation for an H x W
// cell grid (i.e. a (2H+1) x (2W+1) loop lattice).
type GridLoop struct {
	Height, Width int

	edges *gridcore.LoopGrid[gridcore.EdgeStatus]
	chain *gridcore.LoopGrid[chainInfo]

	numDecidedEdges int
	numDecidedLines int

	inconsistent bool
	fullySolved  bool

	queue     *squeue.Queue
	loopW     int
	loopH     int
	field     Field
}

// New constructs a GridLoop for an H x W cell grid. field receives the
// CheckNeighborhood/Inspect callbacks; pass NopField{} if the caller only
// wants generic loop propagation (e.g. the Numberlink-style placement
// generators built on a bare loop lattice).
func New(height, width int, field Field) *GridLoop {
	loopH, loopW := 2*height+1, 2*width+1
	gl := &GridLoop{
		Height: height,
		Width:  width,
		edges:  gridcore.NewLoopGrid[gridcore.EdgeStatus](height, width),
		chain:  gridcore.NewLoopGrid[chainInfo](height, width),
		queue:  squeue.New(loopH * loopW),
		loopH:  loopH,
		loopW:  loopW,
		field:  field,
	}
	gl.initChains()
	gl.seedCorners()
	return gl
}

func (gl *GridLoop) lpIndex(lp gridcore.LP) int {
	return lp.Y*gl.loopW + lp.X
}

// initChains makes every edge its own singleton chain (next points to self,
// anotherEnd points to self, endPoints are both the edge itself, size 1).
func (gl *GridLoop) initChains() {
	for y := 0; y < gl.loopH; y++ {
		for x := 0; x < gl.loopW; x++ {
			lp := gridcore.LP{Y: y, X: x}
			if !lp.IsEdge() {
				continue
			}
			v1, v2 := gridcore.EdgeEndpoints(lp)
			gl.chain.Set(lp, chainInfo{
				next:       lp,
				anotherEnd: lp,
				endPoints:  [2]gridcore.LP{v1, v2},
				size:       1,
			})
		}
	}
}

// seedCorners joins the two edges meeting at each of the four grid corners:
// a corner vertex has exactly two incident in-grid edges, and those two
// edges must always share a status (there is nothing else they could do at
// a degree-2 boundary vertex with only two neighbors ever possible).
func (gl *GridLoop) seedCorners() {
	corners := []gridcore.LP{
		gridcore.OfVertex(gridcore.P{Y: 0, X: 0}),
		gridcore.OfVertex(gridcore.P{Y: 0, X: gl.Width}),
		gridcore.OfVertex(gridcore.P{Y: gl.Height, X: 0}),
		gridcore.OfVertex(gridcore.P{Y: gl.Height, X: gl.Width}),
	}
	gl.queue.Start()
	for _, v := range corners {
		var inGrid []gridcore.LP
		for _, e := range gridcore.VertexNeighbors4(v) {
			if gl.edges.InBounds(e) {
				inGrid = append(inGrid, e)
			}
		}
		if len(inGrid) == 2 {
			gl.join(inGrid[0], inGrid[1], v)
		}
	}
	gl.drain()
	gl.queue.Finish()
}

// Inconsistent reports whether an irrecoverable contradiction has been
// latched. Once true, it is sticky: no further mutator changes visible state.
func (gl *GridLoop) Inconsistent() bool { return gl.inconsistent }

// FullySolved reports whether the Line edges now form a single simple
// closed loop covering every decided edge.
func (gl *GridLoop) FullySolved() bool { return gl.fullySolved }

// NumDecidedEdges returns the count of non-Undecided edges.
func (gl *GridLoop) NumDecidedEdges() int { return gl.numDecidedEdges }

// NumDecidedLines returns the count of Line edges.
func (gl *GridLoop) NumDecidedLines() int { return gl.numDecidedLines }

// GetEdge returns the status of the edge at lp. Panics if lp is off the
// lattice or does not address an edge; use GetEdgeSafe for boundary access.
func (gl *GridLoop) GetEdge(lp gridcore.LP) gridcore.EdgeStatus {
	return gl.edges.At(lp)
}

// GetEdgeSafe returns Blank for any position outside the grid (outside-grid
// edges behave as Blank in all safe accessors), otherwise the real status.
func (gl *GridLoop) GetEdgeSafe(lp gridcore.LP) gridcore.EdgeStatus {
	return gl.edges.Safe(lp, gridcore.Blank)
}

func (gl *GridLoop) setInconsistent() {
	gl.inconsistent = true
}

// Contradict lets a puzzle field latch inconsistency directly when its own
// clue arithmetic detects an impossible state the generic edge/vertex rules
// would not catch on their own (e.g. a clue's Line count already exceeds the
// clue value).
func (gl *GridLoop) Contradict() {
	gl.setInconsistent()
}

// Check pushes lp into the work queue for re-inspection, opening and
// draining its own session if none is active (so callers outside the
// engine's own commit path can still ask for a recheck).
func (gl *GridLoop) Check(lp gridcore.LP) {
	if gl.inconsistent {
		return
	}
	reentrant := gl.queue.Active()
	if !reentrant {
		gl.queue.Start()
	}
	gl.queue.Push(gl.lpIndex(lp))
	if !reentrant {
		gl.drain()
		gl.queue.Finish()
	}
}

// DecideEdge commits status to the edge at lp, idempotently: re-deciding the
// same status is a no-op, deciding a conflicting status latches inconsistent.
// Positions outside the grid: Blank is a no-op, Line latches inconsistent.
func (gl *GridLoop) DecideEdge(lp gridcore.LP, status gridcore.EdgeStatus) {
	if gl.inconsistent {
		return
	}
	if !gl.edges.InBounds(lp) {
		if status == gridcore.Blank {
			return
		}
		gl.setInconsistent()
		return
	}
	cur := gl.edges.At(lp)
	if cur == status {
		return
	}
	if cur != gridcore.Undecided {
		gl.setInconsistent()
		return
	}

	reentrant := gl.queue.Active()
	if !reentrant {
		gl.queue.Start()
	}
	gl.commitEdge(lp, status)
	if !reentrant {
		gl.drain()
		gl.queue.Finish()
	}
}

// commitEdge performs the actual state mutation for a freshly-decided edge:
// set status, update counters, notify the field, and attempt to join with
// same-status neighbor chains at both endpoints.
func (gl *GridLoop) commitEdge(lp gridcore.LP, status gridcore.EdgeStatus) {
	gl.edges.Set(lp, status)
	gl.numDecidedEdges++
	if status == gridcore.Line {
		gl.numDecidedLines++
	}

	gl.field.CheckNeighborhood(lp)
	v1, v2 := gridcore.EdgeEndpoints(lp)
	gl.queue.Push(gl.lpIndex(v1))
	gl.queue.Push(gl.lpIndex(v2))

	for _, v := range [2]gridcore.LP{v1, v2} {
		gl.tryJoinAt(v, lp)
	}
}

// tryJoinAt looks for another chain-end edge at vertex v (other than just,
// the one just set) to join with lp's chain.
func (gl *GridLoop) tryJoinAt(v gridcore.LP, from gridcore.LP) {
	if gl.inconsistent {
		return
	}
	var other gridcore.LP
	found := false
	for _, e := range gridcore.VertexNeighbors4(v) {
		if e == from || !gl.edges.InBounds(e) {
			continue
		}
		if gl.isChainEnd(e, v) {
			other = e
			found = true
			break
		}
	}
	if found {
		gl.join(from, other, v)
	}
}

// isChainEnd reports whether e's chain terminates at vertex v (v is one of
// the chain's two end points on that side).
func (gl *GridLoop) isChainEnd(e, v gridcore.LP) bool {
	ci := gl.chain.At(e)
	return ci.endPoints[0] == v || ci.endPoints[1] == v
}

// drain processes the work queue to quiescence: each dequeued position
// triggers Inspect, followed by the vertex rule if the position is a vertex.
func (gl *GridLoop) drain() {
	for !gl.queue.Empty() && !gl.inconsistent {
		idx := gl.queue.Pop()
		lp := gridcore.LP{Y: idx / gl.loopW, X: idx % gl.loopW}
		gl.field.Inspect(lp)
		if gl.inconsistent {
			return
		}
		if lp.IsVertex() {
			gl.inspectVertex(lp)
		}
	}
}

// Clone deep-copies the engine's mutable state. The field callback target is
// NOT cloned automatically; callers building a trial-and-error branch must
// supply a clone of their own field that points back at the cloned GridLoop.
func (gl *GridLoop) Clone(field Field) *GridLoop {
	out := &GridLoop{
		Height:          gl.Height,
		Width:           gl.Width,
		edges:           gl.edges.Clone(),
		chain:           gl.chain.Clone(),
		numDecidedEdges: gl.numDecidedEdges,
		numDecidedLines: gl.numDecidedLines,
		inconsistent:    gl.inconsistent,
		fullySolved:     gl.fullySolved,
		queue:           gl.queue.Clone(),
		loopH:           gl.loopH,
		loopW:           gl.loopW,
		field:           field,
	}
	return out
}
