package numberlink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penciloid/internal/numberlink"
)

func TestSolverFieldSolvesTrivialTwoCellLink(t *testing.T) {
	clues := [][]int{{1, 1}}
	f := numberlink.NewSolverField(1, 2, clues)
	answers := f.Solve(4)
	require.Len(t, answers, 1)
	assert.False(t, answers[0].Inconsistent())
}

func TestSolverFieldParsesText(t *testing.T) {
	f, err := numberlink.ParseSolverClues("1 3\n1 . 1\n")
	require.NoError(t, err)
	answers := f.Solve(4)
	require.Len(t, answers, 1)
}

func TestSolverFieldRejectsMismatchedHeader(t *testing.T) {
	_, err := numberlink.ParseSolverClues("bogus\n")
	assert.Error(t, err)
}

// TestSolverFieldCornerCluesHaveExactlyTwoCanonicalPlacements is the 5x5
// corner-clue case: labels at the four corners pairing (0,0)-(4,4) and
// (0,4)-(4,0) admit exactly two canonical diagonal-weave routings once
// detour-equivalent placements are collapsed by the L-chain rule.
func TestSolverFieldCornerCluesHaveExactlyTwoCanonicalPlacements(t *testing.T) {
	const n = -1
	clues := [][]int{
		{0, n, n, n, 1},
		{n, n, n, n, n},
		{n, n, n, n, n},
		{n, n, n, n, n},
		{1, n, n, n, 0},
	}
	f := numberlink.NewSolverField(5, 5, clues)
	answers := f.Solve(4)
	assert.Len(t, answers, 2)
	for _, a := range answers {
		assert.False(t, a.Inconsistent())
	}
}
