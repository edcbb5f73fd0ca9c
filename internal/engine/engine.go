// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine wires extraction, weighting, scoring, affordability,
// and ranking into the single recommendation entry point. The engine is
// stateless and deterministic: the same conversation, catalog, and
// configuration always produce the same ranking, byte for byte.
package engine

import (
	"errors"
	"fmt"

	"github.com/pdiddy/drivematch/internal/extract"
	"github.com/pdiddy/drivematch/internal/finance"
	"github.com/pdiddy/drivematch/internal/rank"
	"github.com/pdiddy/drivematch/internal/score"
	"github.com/pdiddy/drivematch/internal/weights"
	"github.com/pdiddy/drivematch/pkg/types"
)

// ErrNoCatalog is returned when recommendation is attempted without any
// vehicles to rank.
var ErrNoCatalog = errors.New("vehicle catalog is empty")

// Result is the full recommendation output: the profiles the engine
// extracted, the weight vector it derived, and the ranked shortlist.
type Result struct {
	Profile   types.UserProfile      `json:"profile" yaml:"profile"`
	Financial types.FinancialProfile `json:"financial" yaml:"financial"`
	Weights   types.WeightVector     `json:"weights" yaml:"weights"`
	Ranking   types.Ranking          `json:"ranking" yaml:"ranking"`
}

// Recommend runs the full pipeline over a conversation and catalog.
//
// When neither substantial preferences nor financial data are present
// the ranking comes back empty with MethodNone and the missing-info
// flags set; that is a valid outcome, not an error. Errors are reserved
// for unusable inputs: an empty catalog or an invalid configuration.
func Recommend(messages []types.ConversationMessage, catalog []types.Vehicle, cfg types.EngineConfig) (*Result, error) {
	if len(catalog) == 0 {
		return nil, ErrNoCatalog
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	up, fp := extract.Extract(messages)
	last := types.LastUserMessage(messages)

	missing := extract.MissingInformation(up, fp, last)

	hasPrefs := extract.HasSubstantialPreferences(up)
	hasFin := fp.HasData()
	method := rank.SelectMethod(hasPrefs, hasFin)

	res := &Result{Profile: up, Financial: fp}
	if method == types.MethodNone {
		res.Ranking = types.Ranking{Method: types.MethodNone, Missing: missing}
		return res, nil
	}

	w := weights.Calculate(up, cfg.Weights)
	res.Weights = w

	scorer := score.NewScorer(catalog, up, w, cfg.Scoring)
	scored := scorer.ScoreAll(catalog)

	if hasFin {
		for i := range scored {
			a := finance.Evaluate(scored[i].Vehicle, fp, cfg.Finance)
			scored[i].Affordability = &a
		}
	}

	count := extract.ResultCount(last, cfg.Selection)
	ranking := rank.Build(scored, method, count, cfg.Selection)
	ranking.Missing = missing
	res.Ranking = ranking
	return res, nil
}
