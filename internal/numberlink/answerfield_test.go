package numberlink_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penciloid/internal/gridcore"
	"penciloid/internal/numberlink"
)

func TestAnswerFieldDecideEdgeJoinsChains(t *testing.T) {
	f := numberlink.New(1, 3, 1)
	e1 := gridcore.OfCell(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight)
	e2 := gridcore.OfCell(gridcore.P{Y: 0, X: 1}).Add(gridcore.DRight)

	f.DecideEdge(e1, gridcore.Line)
	require.False(t, f.Inconsistent())
	f.DecideEdge(e2, gridcore.Line)
	require.False(t, f.Inconsistent())
	assert.True(t, f.FullySolved())
}

func TestAnswerFieldDegreeThreeIsInconsistent(t *testing.T) {
	f := numberlink.New(3, 3, 1)
	center := gridcore.P{Y: 1, X: 1}
	for _, d := range gridcore.Dirs4 {
		f.DecideEdge(gridcore.OfCell(center).Add(d), gridcore.Line)
	}
	assert.True(t, f.Inconsistent(), "a cell with 4 incident Line edges exceeds the degree-2 path invariant")
}

func TestAnswerFieldClosingLoopWithoutClueIsInconsistent(t *testing.T) {
	// A 2x2 ring: Up, Right, Down, Left edges of a 2x2 block all Line closes
	// a 4-cycle with no clue endpoints anywhere -- invalid for a path set.
	f := numberlink.New(2, 2, 1)
	top := gridcore.OfCell(gridcore.P{Y: 0, X: 0}).Add(gridcore.DRight)
	right := gridcore.OfCell(gridcore.P{Y: 0, X: 1}).Add(gridcore.DDown)
	bottom := gridcore.OfCell(gridcore.P{Y: 1, X: 0}).Add(gridcore.DRight)
	left := gridcore.OfCell(gridcore.P{Y: 0, X: 0}).Add(gridcore.DDown)

	f.DecideEdge(top, gridcore.Line)
	f.DecideEdge(right, gridcore.Line)
	f.DecideEdge(bottom, gridcore.Line)
	require.False(t, f.Inconsistent())
	f.DecideEdge(left, gridcore.Line)
	assert.True(t, f.Inconsistent())
}

func TestAnswerFieldGrowTerminatesSolvedOrInconsistent(t *testing.T) {
	f := numberlink.New(3, 3, 1)
	rng := rand.New(rand.NewSource(1))
	ok := f.Grow(rng)
	// Grow always drains the seed set; the only two ways out are a
	// successfully completed placement or a latched inconsistency.
	if ok {
		assert.True(t, f.FullySolved())
	} else {
		assert.True(t, f.Inconsistent())
	}
}

func TestMirrorDyad(t *testing.T) {
	pts := numberlink.Mirror(numberlink.Dyad, 4, 5, gridcore.P{Y: 1, X: 1})
	assert.Contains(t, pts, gridcore.P{Y: 1, X: 1})
	assert.Contains(t, pts, gridcore.P{Y: 2, X: 3})
}

func edgeLineStatus(t *testing.T, f *numberlink.AnswerField, height, width int) [][]bool {
	t.Helper()
	out := make([][]bool, height*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := gridcore.P{Y: y, X: x}
			var row []bool
			for _, d := range gridcore.Dirs4 {
				row = append(row, f.GetEdge(gridcore.OfCell(p).Add(d)) == gridcore.Line)
			}
			out[p.Y*width+p.X] = row
		}
	}
	return out
}

// TestGrowDyadSymmetryIsMirrored checks that a field grown under Dyad
// symmetry ends up with cell (y,x)'s incident Line edges matching the
// point-reflected cell's, in the reflected direction order (Up/Right/
// Down/Left reflects to Down/Left/Up/Right under a point reflection).
func TestGrowDyadSymmetryIsMirrored(t *testing.T) {
	const height, width = 4, 4
	f := numberlink.New(height, width, 1)
	f.SetSymmetry(numberlink.Dyad)
	rng := rand.New(rand.NewSource(7))
	require.True(t, f.Grow(rng), "growth should not go inconsistent for a self-consistent symmetry class")
	assert.True(t, f.FullySolved())

	lines := edgeLineStatus(t, f, height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := gridcore.P{Y: y, X: x}
			dyad := gridcore.P{Y: height - 1 - y, X: width - 1 - x}
			got := lines[p.Y*width+p.X]
			want := lines[dyad.Y*width+dyad.X]
			// Dirs4 order is Up, Right, Down, Left; a point reflection swaps
			// Up<->Down and Right<->Left.
			assert.Equal(t, []bool{got[2], got[3], got[0], got[1]}, want,
				"cell %v and its dyad image %v should have mirrored edges", p, dyad)
		}
	}
}
