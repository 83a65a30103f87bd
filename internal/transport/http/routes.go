// Package http registers the puzzle-family HTTP surface on top of a gin
// engine: a solve endpoint for every family, a generate endpoint for the
// one family (Numberlink) whose placement generator is actually part of
// this library's scope, and a liveness check.
package http

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"penciloid/internal/numberlink"
	"penciloid/pkg/config"
	"penciloid/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires /health and the per-family /api/:family/solve and
// /api/:family/generate routes onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api/:family")
	{
		api.POST("/solve", solveHandler)
		api.POST("/generate", generateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// SolveRequest carries the puzzle text in the family's own plain-text
// format (see each package's ParseClues). Token is optional: a client
// solving a puzzle it generated itself (via generateHandler) should echo
// back the session token that came with it, binding the solve to that
// puzzle's family and to the session's solve budget (SessionTokenExpiry
// after issuance). A client solving a puzzle it supplied itself has no
// token to echo and none is required.
type SolveRequest struct {
	Problem string `json:"problem" binding:"required"`
	Token   string `json:"token"`
}

func solveHandler(c *gin.Context) {
	family := c.Param("family")
	if !solvableFamilies[family] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown puzzle family: " + family})
		return
	}

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Token != "" {
		session, err := verifyToken(cfg.SessionSecret, req.Token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			return
		}
		if session.Family != family {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token was not issued for this puzzle family"})
			return
		}
	}

	result, err := solveFamily(family, req.Problem)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if result.Inconsistent {
		c.JSON(http.StatusOK, gin.H{"inconsistent": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inconsistent": false,
		"fully_solved": result.FullySolved,
		"field":        result.Dump,
	})
}

// GenerateRequest parameterizes a random placement search.
type GenerateRequest struct {
	Height         int    `json:"height" binding:"required"`
	Width          int    `json:"width" binding:"required"`
	Symmetry       string `json:"symmetry"`
	Seed           int64  `json:"seed"`
	MinChainLength int    `json:"min_chain_length"`
}

var symmetryByName = map[string]numberlink.Symmetry{
	"":           numberlink.NoSymmetry,
	"none":       numberlink.NoSymmetry,
	"dyad":       numberlink.Dyad,
	"tetrad":     numberlink.Tetrad,
	"horizontal": numberlink.Horizontal,
	"vertical":   numberlink.Vertical,
}

const generateMaxAttempts = 64

// generateHandler runs the Numberlink placement generator -- the one
// generator this library actually implements. Other families' generate
// endpoints report 501: their "generator" would be a simulated-annealing
// outer loop, not a field or solver this repo builds.
func generateHandler(c *gin.Context) {
	family := c.Param("family")
	if family != "nl" {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "puzzle family " + family + " has no generator in this build; only nl (Numberlink) does",
		})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Height <= 0 || req.Width <= 0 || req.Height > constants.MaxHeight || req.Width > constants.MaxWidth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "height/width out of bounds"})
		return
	}
	sym, ok := symmetryByName[req.Symmetry]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown symmetry: " + req.Symmetry})
		return
	}
	minChain := req.MinChainLength
	if minChain <= 0 {
		minChain = 2
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	problem, err := numberlink.GeneratePlacement(req.Height, req.Width, minChain, sym, rng, generateMaxAttempts)
	if err != nil {
		log.Error().Str("family", family).Int64("seed", seed).Err(err).Msg("numberlink generate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
		return
	}

	now := time.Now()
	token, err := createToken(cfg.SessionSecret, SessionToken{
		Family:    family,
		Seed:      seed,
		Height:    req.Height,
		Width:     req.Width,
		IssuedAt:  now,
		ExpiresAt: now.Add(constants.SessionTokenExpiry),
	})
	if err != nil {
		log.Error().Str("family", family).Int64("seed", seed).Err(err).Msg("failed to create session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"problem": problem,
		"token":   token,
	})
}
