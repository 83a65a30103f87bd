// Package tapa implements the neighborhood-clue shading puzzle: a clue cell
// (always White) states the run-lengths, in some cyclic rotation, of the
// maximal consecutive groups of Black cells among its 8 neighbors; cells are
// otherwise Black/White/Undecided, a 2x2 all-Black block is forbidden, and
// the Black cells must form one connected region.
package tapa

import "penciloid/internal/gridcore"

// Cell is one board cell's shading state.
type Cell int

const (
	Undecided Cell = iota
	Black
	White
)

// Clue is a sorted run-length multiset read off a clue cell's 8 neighbors.
// A nil Clue (use HasClue to distinguish) means the cell carries no clue; an
// empty non-nil slice is the special "0" clue (no Black neighbors at all).
type Clue struct {
	HasClue bool
	Pattern []int
}

// neighborOffsets is the cyclic ring of 8 neighbor offsets a clue inspects,
// matching the winding order the run-length pattern is read in.
var neighborOffsets = [8]gridcore.D{
	{Y: -1, X: -1}, {Y: 0, X: -1}, {Y: 1, X: -1}, {Y: 1, X: 0},
	{Y: 1, X: 1}, {Y: 0, X: 1}, {Y: -1, X: 1}, {Y: -1, X: 0},
}

// Dictionary answers, for a clue and a partial assignment of its 8
// neighbors, which neighbors can be forced Black or White. The source
// precomputes this over all 3^8 neighbor patterns x 23 clue types into one
// table; this computes the same query on demand via direct enumeration
// (brute-force over the Undecided neighbors' remaining 2^k completions,
// keeping the completions whose Black-run pattern matches the clue, then
// reporting a neighbor as forced only if every surviving completion agrees
// on it) and memoizes by (clue, pattern). Equivalent result, smaller code,
// paid only for patterns actually queried.
type Dictionary struct {
	cache map[dictKey]dictResult
}

type dictKey struct {
	clueKey string
	pattern [8]Cell
}

type dictResult struct {
	forced       [8]Cell // Undecided if not forced
	inconsistent bool
}

func NewDictionary() *Dictionary {
	return &Dictionary{cache: make(map[dictKey]dictResult)}
}

func clueKey(c Clue) string {
	if !c.HasClue {
		return "-"
	}
	b := make([]byte, 0, len(c.Pattern)+1)
	b = append(b, 'c')
	for _, v := range c.Pattern {
		b = append(b, byte('0'+v))
	}
	return string(b)
}

// Neighbors evaluates clue against the current state of its 8 neighbors
// (pattern, in ring order) and reports which are forced, or inconsistency
// if no completion of the Undecided neighbors matches the clue's pattern.
func (d *Dictionary) Neighbors(clue Clue, pattern [8]Cell) (forced [8]Cell, inconsistent bool) {
	if !clue.HasClue {
		return pattern, false
	}
	key := dictKey{clueKey(clue), pattern}
	if r, ok := d.cache[key]; ok {
		return r.forced, r.inconsistent
	}

	var undecidedIdx []int
	for i, c := range pattern {
		if c == Undecided {
			undecidedIdx = append(undecidedIdx, i)
		}
	}

	var agree [8]Cell
	var anyMatch bool
	total := 1 << uint(len(undecidedIdx))
	for mask := 0; mask < total; mask++ {
		trial := pattern
		for bit, idx := range undecidedIdx {
			if mask&(1<<uint(bit)) != 0 {
				trial[idx] = Black
			} else {
				trial[idx] = White
			}
		}
		if !matchesPattern(trial, clue.Pattern) {
			continue
		}
		if !anyMatch {
			agree = trial
			anyMatch = true
		} else {
			for i := range agree {
				if agree[i] != trial[i] {
					agree[i] = Undecided
				}
			}
		}
	}

	result := dictResult{inconsistent: !anyMatch}
	if anyMatch {
		for i, c := range pattern {
			if c != Undecided {
				agree[i] = c
			}
		}
		result.forced = agree
	}
	d.cache[key] = result
	return result.forced, result.inconsistent
}

// matchesPattern reports whether a fully-decided ring of 8 cells has Black
// runs (cyclically) whose sorted lengths equal want.
func matchesPattern(ring [8]Cell, want []int) bool {
	allWhite := true
	for _, c := range ring {
		if c == Black {
			allWhite = false
			break
		}
	}
	if len(want) == 0 {
		return allWhite
	}
	if allWhite {
		return false
	}

	// Find a White cell to serve as a non-wrapping scan start; if there is
	// none, every neighbor is Black, a single run of length 8.
	start := -1
	for i, c := range ring {
		if c == White {
			start = i
			break
		}
	}
	var runs []int
	if start == -1 {
		runs = []int{8}
	} else {
		run := 0
		for i := 0; i < 8; i++ {
			c := ring[(start+i)%8]
			if c == Black {
				run++
			} else if run > 0 {
				runs = append(runs, run)
				run = 0
			}
		}
		if run > 0 {
			runs = append(runs, run)
		}
	}
	if len(runs) != len(want) {
		return false
	}
	sorted := append([]int(nil), runs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	for i := range sorted {
		if sorted[i] != want[i] {
			return false
		}
	}
	return true
}
