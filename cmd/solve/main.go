// Command solve reads a puzzle in its family's plain-text clue format from
// stdin and prints the field's final decided state to stdout. Subcommand
// form: the family is given as the sole argument, one of sl, yj, nl, kk,
// tp, nm, ev.
package main

import (
	"fmt"
	"io"
	"os"

	"penciloid/internal/endview"
	"penciloid/internal/kakuro"
	"penciloid/internal/numberlink"
	"penciloid/internal/nurimisaki"
	"penciloid/internal/slitherlink"
	"penciloid/internal/tapa"
	"penciloid/internal/yajilin"
	"penciloid/pkg/constants"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: solve <sl|yj|nl|kk|tp|nm|ev> < problem.txt")
		os.Exit(1)
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: reading stdin: %v\n", err)
		os.Exit(1)
	}

	dump, inconsistent, fullySolved, err := solve(os.Args[1], string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(dump)
	fmt.Printf("inconsistent=%v fully_solved=%v\n", inconsistent, fullySolved)
}

func solve(family, text string) (dump string, inconsistent, fullySolved bool, err error) {
	switch family {
	case "sl":
		f, err := slitherlink.ParseClues(text)
		if err != nil {
			return "", false, false, err
		}
		return f.Dump(), f.Loop.Inconsistent(), f.Loop.FullySolved(), nil

	case "yj":
		f, err := yajilin.ParseClues(text)
		if err != nil {
			return "", false, false, err
		}
		return f.Dump(), f.Loop.Inconsistent(), f.Loop.FullySolved(), nil

	case "ev":
		f, err := endview.ParseClues(text)
		if err != nil {
			return "", false, false, err
		}
		return f.Dump(), f.Inconsistent(), f.Solved(), nil

	case "kk":
		height, width, clues, err := kakuro.ParseClues(text)
		if err != nil {
			return "", false, false, err
		}
		f := kakuro.NewField(height, width, clues, kakuro.NewDictionary())
		f.CheckAll()
		return f.Dump(), f.Inconsistent(), f.Solved(), nil

	case "tp":
		height, width, clues, err := tapa.ParseClues(text)
		if err != nil {
			return "", false, false, err
		}
		f := tapa.BuildField(height, width, clues, tapa.NewDictionary())
		f.Solve()
		return f.Dump(), f.Inconsistent(), f.FullySolved(), nil

	case "nm":
		height, width, clues, err := nurimisaki.ParseClues(text)
		if err != nil {
			return "", false, false, err
		}
		f := nurimisaki.BuildField(height, width, clues)
		f.Solve()
		return f.Dump(), f.Inconsistent(), f.FullySolved(), nil

	case "nl":
		sf, err := numberlink.ParseSolverClues(text)
		if err != nil {
			return "", false, false, err
		}
		answers := sf.Solve(constants.SolutionCountLimit)
		switch len(answers) {
		case 0:
			return sf.Dump(), true, false, nil
		case 1:
			return answers[0].Dump(), false, true, nil
		default:
			return sf.Dump(), false, false, nil
		}

	default:
		return "", false, false, fmt.Errorf("unknown puzzle family %q", family)
	}
}
