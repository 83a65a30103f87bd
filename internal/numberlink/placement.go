package numberlink

import (
	"fmt"
	"math/rand"
	"strings"

	"penciloid/internal/gridcore"
)

// GeneratePlacement grows a random canonical path placement (see AnswerField)
// and converts the finished chains into a numbered clue grid in the same
// text format ParseSolverClues reads: an "H W" header followed by H rows of
// W tokens, a positive integer at each of a chain's two endpoint cells and
// "." elsewhere. It retries up to maxAttempts times when growth latches
// inconsistent or produces an isolated single-cell chain (no two distinct
// endpoints to label).
//
// sym arms the field to mirror every grown edge onto its symmetric image(s)
// (see AnswerField.SetSymmetry), so the finished placement is invariant
// under sym; NoSymmetry grows unconstrained, as before.
func GeneratePlacement(height, width, minChainLength int, sym Symmetry, rng *rand.Rand, maxAttempts int) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		f := New(height, width, minChainLength)
		f.SetSymmetry(sym)
		if !f.Grow(rng) {
			lastErr = fmt.Errorf("numberlink: placement went inconsistent")
			continue
		}
		text, ok := f.clueText()
		if !ok {
			lastErr = fmt.Errorf("numberlink: placement had an isolated single-cell chain")
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("numberlink: no valid placement in %d attempts: %w", maxAttempts, lastErr)
}

// clueText walks every finished chain from its lower endpoint, labels both
// ends with a shared sequential number, and renders the result. It reports
// false if any chain turned out to be a single isolated cell (degree 0 with
// no distinct far endpoint), which cannot be expressed as a two-cell clue
// pair.
func (f *AnswerField) clueText() (string, bool) {
	n := f.Height * f.Width
	degree := make([]int, n)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := gridcore.P{Y: y, X: x}
			i := f.index(p)
			for _, d := range gridcore.Dirs4 {
				if f.GetEdge(gridcore.OfCell(p).Add(d)) == gridcore.Line {
					degree[i]++
				}
			}
		}
	}

	visited := make([]bool, n)
	labels := make([]int, n)
	nextLabel := 1

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			start := gridcore.P{Y: y, X: x}
			si := f.index(start)
			if visited[si] || degree[si] > 1 {
				continue
			}

			other, ok := f.walkChain(start, visited)
			if !ok {
				return "", false
			}
			if other == si {
				return "", false
			}
			labels[si] = nextLabel
			labels[other] = nextLabel
			nextLabel++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", f.Height, f.Width)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if l := labels[f.index(gridcore.P{Y: y, X: x})]; l == 0 {
				b.WriteByte('.')
			} else {
				fmt.Fprintf(&b, "%d", l)
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), true
}

// walkChain follows Line edges from start (a degree-<=1 cell) to its far
// endpoint, marking every visited cell. It reports false if the walk ever
// fails to terminate at a degree-<=1 cell (an internal inconsistency this
// package's invariants should already have ruled out).
func (f *AnswerField) walkChain(start gridcore.P, visited []bool) (int, bool) {
	prev := gridcore.P{Y: -1, X: -1}
	cur := start
	for {
		ci := f.index(cur)
		visited[ci] = true

		var next gridcore.P
		found := false
		for _, d := range gridcore.Dirs4 {
			if f.GetEdge(gridcore.OfCell(cur).Add(d)) != gridcore.Line {
				continue
			}
			nb := cur.Add(d)
			if nb == prev {
				continue
			}
			next = nb
			found = true
			break
		}
		if !found {
			return ci, true
		}
		prev, cur = cur, next
	}
}
