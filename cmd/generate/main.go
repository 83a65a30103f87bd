// Command generate runs the Numberlink placement generator across a worker
// pool and prints each accepted puzzle's clue text, one per line boundary,
// to stdout. Other puzzle families have no generator in this build (see
// internal/transport/http's generate endpoint and DESIGN.md): their
// "generator" would be a simulated-annealing outer loop, not a field or
// solver this repo builds.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"

	"penciloid/internal/genpool"
	"penciloid/internal/numberlink"
	"penciloid/pkg/constants"
)

func main() {
	count := flag.Int("n", 10, "number of puzzles to generate")
	height := flag.Int("height", 6, "grid height")
	width := flag.Int("width", 6, "grid width")
	minChain := flag.Int("minimum-path-length", 2, "minimum chain length")
	symName := flag.String("symmetry", "none", "none|dyad|tetrad|horizontal|vertical")
	jobs := flag.Int("jobs", constants.DefaultJobs, "worker goroutines (0 = runtime.NumCPU())")
	seed := flag.Int64("seed", 1, "starting seed")
	flag.Parse()

	sym, ok := symmetryFlag(*symName)
	if !ok {
		fmt.Fprintf(os.Stderr, "generate: unknown symmetry %q\n", *symName)
		os.Exit(1)
	}

	problems := make([]string, *count)

	stats := genpool.Run(*count, genpool.Options{
		Workers: *jobs,
		Progress: func(s genpool.Stats) {
			log.Info().Int64("attempted", s.Attempted).Int64("succeeded", s.Succeeded).
				Int64("inconsistent", s.Inconsistent).Msg("generate progress")
		},
	}, func(idx int, stats *genpool.Stats) {
		rng := rand.New(rand.NewSource(*seed + int64(idx)))
		text, err := numberlink.GeneratePlacement(*height, *width, *minChain, sym, rng, 64)
		if err != nil {
			stats.RecordInconsistent()
			return
		}
		problems[idx] = text
		stats.RecordSuccess()
	})

	for _, p := range problems {
		if p != "" {
			fmt.Print(p)
			fmt.Println("---")
		}
	}

	log.Info().Int64("succeeded", stats.Succeeded).Int64("attempted", stats.Attempted).
		Msg("generate done")
}

func symmetryFlag(name string) (numberlink.Symmetry, bool) {
	switch name {
	case "", "none":
		return numberlink.NoSymmetry, true
	case "dyad":
		return numberlink.Dyad, true
	case "tetrad":
		return numberlink.Tetrad, true
	case "horizontal":
		return numberlink.Horizontal, true
	case "vertical":
		return numberlink.Vertical, true
	default:
		return numberlink.NoSymmetry, false
	}
}
