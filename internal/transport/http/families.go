package http

import (
	"fmt"

	"penciloid/internal/endview"
	"penciloid/internal/kakuro"
	"penciloid/internal/numberlink"
	"penciloid/internal/nurimisaki"
	"penciloid/internal/slitherlink"
	"penciloid/internal/tapa"
	"penciloid/internal/yajilin"
	"penciloid/pkg/constants"
)

// solveResult is the family-neutral shape every solve handler reduces to.
type solveResult struct {
	Dump         string
	Inconsistent bool
	FullySolved  bool
}

// solveFamily parses text in the given family's format, runs its field (or,
// for Numberlink, its backtracking solver) to quiescence, and reports the
// outcome. An error here is always a parse failure -- a malformed puzzle
// text, never a mid-solve inconsistency, which is reported through
// solveResult.Inconsistent instead.
func solveFamily(family, text string) (solveResult, error) {
	switch family {
	case "sl":
		f, err := slitherlink.ParseClues(text)
		if err != nil {
			return solveResult{}, err
		}
		return solveResult{Dump: f.Dump(), Inconsistent: f.Loop.Inconsistent(), FullySolved: f.Loop.FullySolved()}, nil

	case "yj":
		f, err := yajilin.ParseClues(text)
		if err != nil {
			return solveResult{}, err
		}
		return solveResult{Dump: f.Dump(), Inconsistent: f.Loop.Inconsistent(), FullySolved: f.Loop.FullySolved()}, nil

	case "ev":
		f, err := endview.ParseClues(text)
		if err != nil {
			return solveResult{}, err
		}
		return solveResult{Dump: f.Dump(), Inconsistent: f.Inconsistent(), FullySolved: f.Solved()}, nil

	case "kk":
		height, width, clues, err := kakuro.ParseClues(text)
		if err != nil {
			return solveResult{}, err
		}
		f := kakuro.NewField(height, width, clues, kakuro.NewDictionary())
		f.CheckAll()
		return solveResult{Dump: f.Dump(), Inconsistent: f.Inconsistent(), FullySolved: f.Solved()}, nil

	case "tp":
		height, width, clues, err := tapa.ParseClues(text)
		if err != nil {
			return solveResult{}, err
		}
		f := tapa.BuildField(height, width, clues, tapa.NewDictionary())
		f.Solve()
		return solveResult{Dump: f.Dump(), Inconsistent: f.Inconsistent(), FullySolved: f.FullySolved()}, nil

	case "nm":
		height, width, clues, err := nurimisaki.ParseClues(text)
		if err != nil {
			return solveResult{}, err
		}
		f := nurimisaki.BuildField(height, width, clues)
		f.Solve()
		return solveResult{Dump: f.Dump(), Inconsistent: f.Inconsistent(), FullySolved: f.FullySolved()}, nil

	case "nl":
		sf, err := numberlink.ParseSolverClues(text)
		if err != nil {
			return solveResult{}, err
		}
		answers := sf.Solve(constants.SolutionCountLimit)
		switch len(answers) {
		case 0:
			return solveResult{Dump: sf.Dump(), Inconsistent: true, FullySolved: false}, nil
		case 1:
			return solveResult{Dump: answers[0].Dump(), Inconsistent: false, FullySolved: true}, nil
		default:
			// Two or more distinct solutions: consistent but not uniquely
			// solved, so report the original, still-undecided field.
			return solveResult{Dump: sf.Dump(), Inconsistent: false, FullySolved: false}, nil
		}

	default:
		return solveResult{}, fmt.Errorf("unknown puzzle family %q", family)
	}
}

var solvableFamilies = map[string]bool{
	"sl": true, "yj": true, "nl": true, "kk": true, "tp": true, "nm": true, "ev": true,
}
