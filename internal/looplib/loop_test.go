package looplib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"penciloid/internal/gridcore"
	"penciloid/internal/looplib"
)

// TestNewSeedsCorners verifies a fresh GridLoop starts consistent and with
// no edges decided -- corner seeding only links chains, it never commits a
// status.
func TestNewSeedsCorners(t *testing.T) {
	gl := looplib.New(3, 3, looplib.NopField{})
	assert.False(t, gl.Inconsistent())
	assert.Equal(t, 0, gl.NumDecidedEdges())
	assert.Equal(t, 0, gl.NumDecidedLines())
}

// TestDecideEdgeIdempotent checks that re-deciding the same status is a
// no-op and that deciding a conflicting status latches inconsistent.
func TestDecideEdgeIdempotent(t *testing.T) {
	gl := looplib.New(3, 3, looplib.NopField{})
	e := gridcore.OfVertex(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight)

	gl.DecideEdge(e, gridcore.Line)
	assert.False(t, gl.Inconsistent())
	assert.Equal(t, 1, gl.NumDecidedEdges())

	gl.DecideEdge(e, gridcore.Line)
	assert.False(t, gl.Inconsistent())
	assert.Equal(t, 1, gl.NumDecidedEdges(), "re-deciding the same status must not double count")

	gl.DecideEdge(e, gridcore.Blank)
	assert.True(t, gl.Inconsistent(), "conflicting status must latch inconsistent")
}

// TestDecideEdgeOutOfBounds exercises the boundary behavior: Blank outside
// the grid is a no-op, Line outside the grid is a contradiction.
func TestDecideEdgeOutOfBounds(t *testing.T) {
	gl := looplib.New(2, 2, looplib.NopField{})
	outside := gridcore.LP{Y: -1, X: 1}

	gl.DecideEdge(outside, gridcore.Blank)
	assert.False(t, gl.Inconsistent())

	gl2 := looplib.New(2, 2, looplib.NopField{})
	gl2.DecideEdge(outside, gridcore.Line)
	assert.True(t, gl2.Inconsistent())
}

// TestVertexThreeLinesInconsistent checks the degree rule: no vertex may
// have three or more incident Line edges.
func TestVertexThreeLinesInconsistent(t *testing.T) {
	gl := looplib.New(3, 3, looplib.NopField{})
	v := gridcore.OfVertex(gridcore.P{Y: 1, X: 1})
	for _, d := range []gridcore.D{gridcore.DUp, gridcore.DRight, gridcore.DDown} {
		gl.DecideEdge(v.Add(d), gridcore.Line)
	}
	assert.True(t, gl.Inconsistent())
}

// TestVertexTwoLinesBlanksRest checks the degree-2 rule: once a vertex has
// two incident Line edges, its remaining incident edges must become Blank.
func TestVertexTwoLinesBlanksRest(t *testing.T) {
	gl := looplib.New(3, 3, looplib.NopField{})
	v := gridcore.OfVertex(gridcore.P{Y: 1, X: 1})
	gl.DecideEdge(v.Add(gridcore.DUp), gridcore.Line)
	gl.DecideEdge(v.Add(gridcore.DRight), gridcore.Line)

	assert.False(t, gl.Inconsistent())
	assert.Equal(t, gridcore.Blank, gl.GetEdge(v.Add(gridcore.DDown)))
	assert.Equal(t, gridcore.Blank, gl.GetEdge(v.Add(gridcore.DLeft)))
}

// TestFullSmallLoop decides every edge of a 1x1 grid's boundary as Line and
// checks the loop is recognized as fully solved with no contradiction.
func TestFullSmallLoop(t *testing.T) {
	gl := looplib.New(1, 1, looplib.NopField{})
	top := gridcore.OfVertex(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight)
	right := gridcore.OfVertex(gridcore.P{Y: 0, X: 1}).Add(gridcore.DDown)
	bottom := gridcore.OfVertex(gridcore.P{Y: 1, X: 0}).Add(gridcore.DRight)
	left := gridcore.OfVertex(gridcore.P{Y: 0, X: 0}).Add(gridcore.DDown)

	gl.DecideEdge(top, gridcore.Line)
	gl.DecideEdge(right, gridcore.Line)
	gl.DecideEdge(bottom, gridcore.Line)
	gl.DecideEdge(left, gridcore.Line)

	assert.False(t, gl.Inconsistent())
	assert.True(t, gl.FullySolved())
	assert.Equal(t, 4, gl.NumDecidedLines())
}

// TestApplyInOutRuleForcesBoundary decides the full outer boundary of a 2x2
// grid as the loop and checks ApplyInOutRule resolves the interior cross
// edges without introducing a contradiction: every cell lies on the same
// (inside) side, so all four interior edges must be forced Blank.
func TestApplyInOutRuleForcesBoundary(t *testing.T) {
	gl := looplib.New(2, 2, looplib.NopField{})
	boundary := []gridcore.LP{
		gridcore.OfVertex(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight),
		gridcore.OfVertex(gridcore.P{Y: 0, X: 1}).Add(gridcore.DRight),
		gridcore.OfVertex(gridcore.P{Y: 2, X: 0}).Add(gridcore.DRight),
		gridcore.OfVertex(gridcore.P{Y: 2, X: 1}).Add(gridcore.DRight),
		gridcore.OfVertex(gridcore.P{Y: 0, X: 0}).Add(gridcore.DDown),
		gridcore.OfVertex(gridcore.P{Y: 1, X: 0}).Add(gridcore.DDown),
		gridcore.OfVertex(gridcore.P{Y: 0, X: 2}).Add(gridcore.DDown),
		gridcore.OfVertex(gridcore.P{Y: 1, X: 2}).Add(gridcore.DDown),
	}
	for _, e := range boundary {
		gl.DecideEdge(e, gridcore.Line)
	}
	assert.False(t, gl.Inconsistent())

	gl.ApplyInOutRule()
	assert.False(t, gl.Inconsistent())
	assert.Equal(t, gridcore.Blank, gl.GetEdge(gridcore.OfVertex(gridcore.P{Y: 1, X: 0}).Add(gridcore.DRight)))
	assert.Equal(t, gridcore.Blank, gl.GetEdge(gridcore.OfVertex(gridcore.P{Y: 0, X: 1}).Add(gridcore.DDown)))
}

// TestCheckConnectabilitySplitIsInconsistent builds two separated Line
// segments on a grid too small to ever reconnect them around the far side
// and checks CheckConnectability catches the split.
func TestCheckConnectabilitySplitIsInconsistent(t *testing.T) {
	gl := looplib.New(4, 4, looplib.NopField{})
	near := gridcore.OfVertex(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight)
	far := gridcore.OfVertex(gridcore.P{Y: 3, X: 3}).Add(gridcore.DRight)

	gl.DecideEdge(near, gridcore.Line)
	gl.DecideEdge(far, gridcore.Line)
	for y := 1; y <= 2; y++ {
		for x := 0; x <= 3; x++ {
			gl.DecideEdge(gridcore.OfVertex(gridcore.P{Y: y, X: x}).Add(gridcore.DRight), gridcore.Blank)
		}
	}
	for y := 0; y <= 3; y++ {
		for x := 1; x <= 2; x++ {
			gl.DecideEdge(gridcore.OfVertex(gridcore.P{Y: y, X: x}).Add(gridcore.DDown), gridcore.Blank)
		}
	}

	gl.CheckConnectability()
	assert.True(t, gl.Inconsistent())
}

// TestCloneIsIndependent checks that mutating a clone never affects the
// original engine's state.
func TestCloneIsIndependent(t *testing.T) {
	gl := looplib.New(3, 3, looplib.NopField{})
	e := gridcore.OfVertex(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight)
	gl.DecideEdge(e, gridcore.Line)

	clone := gl.Clone(looplib.NopField{})
	other := gridcore.OfVertex(gridcore.P{Y: 0, X: 1}).Add(gridcore.DRight)
	clone.DecideEdge(other, gridcore.Blank)

	assert.Equal(t, gridcore.Undecided, gl.GetEdge(other))
	assert.Equal(t, gridcore.Blank, clone.GetEdge(other))
}
