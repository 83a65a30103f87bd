package looplib

import "penciloid/internal/gridcore"

// join attempts to merge the chains of e1 and e2, which meet at vertex v and
// have each just been found to be a chain end there.
func (gl *GridLoop) join(e1, e2, v gridcore.LP) {
	if gl.inconsistent || e1 == e2 {
		return
	}
	// Step 1: already the same ring -- nothing to do.
	if gl.sameRing(e1, e2) {
		return
	}

	gl.reorientToVertex(e1, v)
	gl.reorientToVertex(e2, v)

	ci1 := gl.chain.At(e1)
	ci2 := gl.chain.At(e2)
	s1, s2 := gl.edges.At(e1), gl.edges.At(e2)

	// Step 3: disagreeing known statuses are a contradiction; one-sided
	// Undecided propagates the known status over the whole Undecided chain
	// and recurses (the propagation may itself complete the join).
	if s1 != gridcore.Undecided && s2 != gridcore.Undecided && s1 != s2 {
		gl.setInconsistent()
		return
	}
	if s1 == gridcore.Undecided && s2 != gridcore.Undecided {
		gl.extendChainStatus(e1, s2)
		gl.join(e1, e2, v)
		return
	}
	if s2 == gridcore.Undecided && s1 != gridcore.Undecided {
		gl.extendChainStatus(e2, s1)
		gl.join(e1, e2, v)
		return
	}

	outer1, outer2 := ci1.endPoints[1], ci2.endPoints[1]
	status := s1 // == s2 here, possibly both Undecided

	if outer1 == outer2 {
		// Step 4: the two chains' far ends already coincide -- joining
		// would create a (possibly premature) closed sub-loop.
		switch status {
		case gridcore.Undecided:
			if gl.numDecidedLines > 0 {
				gl.extendChainStatus(e1, gridcore.Blank)
				gl.extendChainStatus(e2, gridcore.Blank)
			}
			// else: defer -- not enough information yet.
		case gridcore.Line:
			total := ci1.size + ci2.size
			if gl.numDecidedLines != total {
				gl.setInconsistent()
				return
			}
			gl.fullySolved = true
			gl.finalizeRemainingAsBlank()
		case gridcore.Blank:
			// A closed run of Blank edges needs no further bookkeeping:
			// Blank regions never have to form a single connected loop.
		}
		return
	}

	// Step 5: splice the two rings together at v.
	gl.spliceRings(e1, e2, outer1, outer2, ci1, ci2)
	gl.queue.Push(gl.lpIndex(outer1))
	gl.queue.Push(gl.lpIndex(outer2))
}

// sameRing reports whether e2 is reachable from e1 by following chain_next,
// i.e. whether they already belong to the same ring.
func (gl *GridLoop) sameRing(e1, e2 gridcore.LP) bool {
	cur := e1
	n := gl.chain.At(e1).size
	for i := 0; i < n; i++ {
		if cur == e2 {
			return true
		}
		cur = gl.chain.At(cur).next
	}
	return false
}

// reorientToVertex ensures e's chain_end_points has v in slot 0.
func (gl *GridLoop) reorientToVertex(e, v gridcore.LP) {
	ci := gl.chain.At(e)
	if ci.endPoints[0] != v {
		ci.endPoints[0], ci.endPoints[1] = ci.endPoints[1], ci.endPoints[0]
		gl.chain.Set(e, ci)
	}
}

// extendChainStatus walks e's whole ring (uniform status by the ring
// invariant) and commits status to every edge still Undecided in it.
func (gl *GridLoop) extendChainStatus(e gridcore.LP, status gridcore.EdgeStatus) {
	size := gl.chain.At(e).size
	cur := e
	for i := 0; i < size; i++ {
		if gl.edges.At(cur) == gridcore.Undecided {
			gl.edges.Set(cur, status)
			gl.numDecidedEdges++
			if status == gridcore.Line {
				gl.numDecidedLines++
			}
			gl.field.CheckNeighborhood(cur)
			v1, v2 := gridcore.EdgeEndpoints(cur)
			gl.queue.Push(gl.lpIndex(v1))
			gl.queue.Push(gl.lpIndex(v2))
		}
		cur = gl.chain.At(cur).next
	}
}

// spliceRings merges ring(e1) and ring(e2) into a single ring via the
// standard singly-linked-cycle splice (swap next at the two splice points),
// then propagates the merged size/endpoints/anotherEnd across every edge of
// the new ring so a later isChainEnd check never consults stale data from an
// edge that used to be a chain end and is now interior.
func (gl *GridLoop) spliceRings(e1, e2, outer1, outer2 gridcore.LP, ci1, ci2 chainInfo) {
	farEdge1 := ci1.anotherEnd
	farEdge2 := ci2.anotherEnd
	newSize := ci1.size + ci2.size

	next1, next2 := ci1.next, ci2.next
	c1 := gl.chain.At(e1)
	c1.next = next2
	gl.chain.Set(e1, c1)
	c2 := gl.chain.At(e2)
	c2.next = next1
	gl.chain.Set(e2, c2)

	cur := e1
	for i := 0; i < newSize; i++ {
		info := gl.chain.At(cur)
		info.size = newSize
		info.endPoints = [2]gridcore.LP{outer1, outer2}
		switch cur {
		case farEdge1:
			info.anotherEnd = farEdge2
		case farEdge2:
			info.anotherEnd = farEdge1
		default:
			info.anotherEnd = farEdge1
		}
		next := gl.chain.At(cur).next
		gl.chain.Set(cur, info)
		cur = next
	}
}

// finalizeRemainingAsBlank commits Blank to every edge still Undecided once
// the loop is known to be fully solved.
func (gl *GridLoop) finalizeRemainingAsBlank() {
	for y := 0; y < gl.loopH; y++ {
		for x := 0; x < gl.loopW; x++ {
			lp := gridcore.LP{Y: y, X: x}
			if !lp.IsEdge() {
				continue
			}
			if gl.edges.At(lp) == gridcore.Undecided {
				gl.edges.Set(lp, gridcore.Blank)
				gl.numDecidedEdges++
			}
		}
	}
}

// farEndpoint returns the chain endpoint of e on the side opposite v.
func (gl *GridLoop) farEndpoint(e, v gridcore.LP) gridcore.LP {
	ci := gl.chain.At(e)
	if ci.endPoints[0] == v {
		return ci.endPoints[1]
	}
	return ci.endPoints[0]
}
