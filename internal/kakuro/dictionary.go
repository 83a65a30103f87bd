package kakuro

import "penciloid/internal/gridcore"

// Dictionary answers, for a group of a given remaining length and remaining
// sum drawn from a given available-digit mask, which digits are "allowed"
// (appear in at least one valid completion) and which are "imperative"
// (appear in every valid completion, so some cell in the group must hold
// them). It is shared read-only across fields the way Slitherlink's window
// dictionary is.
//
// The source computes this as a precomputed four-dimensional table indexed
// by (length, sum, available-mask); this computes the same (length, sum,
// available) query on demand by enumerating digit-subsets directly and
// memoizing the result, trading the table's fixed startup cost for a
// smaller, simpler implementation that only pays for combinations actually
// queried.
type Dictionary struct {
	cache map[dictKey]dictEntry
}

type dictKey struct {
	length, sum int
	available   gridcore.Candidates
}

type dictEntry struct {
	imperative, allowed gridcore.Candidates
	possible            bool
}

func NewDictionary() *Dictionary {
	return &Dictionary{cache: make(map[dictKey]dictEntry)}
}

// At returns the imperative and allowed digit sets for a run of length
// cells drawn from available summing to sum, plus whether any completion
// exists at all.
func (d *Dictionary) At(length, sum int, available gridcore.Candidates) (imperative, allowed gridcore.Candidates, possible bool) {
	if length == 0 {
		if sum == 0 {
			return 0, 0, true
		}
		return 0, 0, false
	}
	key := dictKey{length, sum, available}
	if e, ok := d.cache[key]; ok {
		return e.imperative, e.allowed, e.possible
	}

	imperative = gridcore.AllCandidates(MaxVal)
	allowed = 0
	possible = false

	for _, digit := range available.ToSlice() {
		if digit > sum {
			continue
		}
		subImp, subAllowed, subOk := d.At(length-1, sum-digit, available.Clear(digit))
		if !subOk {
			continue
		}
		possible = true
		allowed = allowed.Union(subAllowed).Set(digit)
		imperative = imperative.Intersect(subImp.Set(digit))
	}
	if !possible {
		imperative = 0
	}
	d.cache[key] = dictEntry{imperative, allowed, possible}
	return imperative, allowed, possible
}
