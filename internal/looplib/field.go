package looplib

import "penciloid/internal/gridcore"

// Field is the trait-like callback contract GridLoop drives. Puzzle-specific
// fields (Slitherlink, Yajilin) implement it to plug clue-aware rules into
// the generic loop propagation, decoupling per-puzzle technique functions
// from the concrete loop lattice.
type Field interface {
	// CheckNeighborhood is called whenever a chain is extended or an edge
	// flips; implementers re-examine clues near lp.
	CheckNeighborhood(lp gridcore.LP)

	// Inspect is called once per dequeued work item; implementers apply
	// clue-local deduction rules at lp.
	Inspect(lp gridcore.LP)
}

// NopField is a Field that does nothing, useful for exercising the Loop
// Engine on its own (tests, generic-loop generation with no clues yet).
type NopField struct{}

func (NopField) CheckNeighborhood(gridcore.LP) {}
func (NopField) Inspect(gridcore.LP)           {}
