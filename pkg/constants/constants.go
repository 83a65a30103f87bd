// Package constants holds grid limits, solver budgets, and other values
// shared across puzzle families.
package constants

import "time"

// Loop-lattice / cell-grid limits.
const (
	MaxHeight = 64
	MaxWidth  = 64
)

// Solver limits.
const (
	// MaxTrialDepth bounds the Numberlink/Yajilin trial-and-error recursion.
	MaxTrialDepth = 3
	// SolutionCountLimit is the "K" in "find up to K distinct solutions";
	// callers only ever care whether the count is 0, 1, or >=2.
	SolutionCountLimit = 2
)

// Generator defaults.
const (
	DefaultAnnealIterations = 400
	DefaultJobs             = 0 // 0 means runtime.NumCPU()
)

// Session.
const (
	SessionTokenExpiry = 2 * time.Hour
)

// API version.
const APIVersion = "0.1.0"

// Default ports.
const DefaultPort = "8080"
