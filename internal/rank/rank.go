// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank turns scored vehicles into the final ordered shortlist:
// it picks the scoring method the available signal supports, blends
// preference and affordability scores accordingly, filters, sorts
// deterministically, and sizes the result.
package rank

import (
	"sort"

	"github.com/pdiddy/drivematch/pkg/types"
)

// SelectMethod decides how to rank from what the conversation supplied.
// Substantial preferences alone rank on preference fit; financial data
// alone ranks on affordability; both blend; neither yields no method,
// which the caller renders as an empty ranking plus missing-info flags.
func SelectMethod(hasPreferences, hasFinancial bool) types.ScoringMethod {
	switch {
	case hasPreferences && hasFinancial:
		return types.MethodCombined
	case hasPreferences:
		return types.MethodPreference
	case hasFinancial:
		return types.MethodAffordability
	default:
		return types.MethodNone
	}
}

// Blend weights for the two mixed methods. Affordability-led rankings
// still let preferences break ties among similarly affordable vehicles;
// combined rankings lean toward stated preferences.
const (
	affordabilityLeadShare = 0.7
	affordabilityPrefShare = 0.3
	combinedPreferenceLead = 0.6
	combinedAffordShare    = 0.4
)

// Build assembles the ranking: per-method decisive scores, the DTI hard
// cap for affordability-led rankings, a deterministic sort, and the
// requested result count.
func Build(scored []types.ScoredVehicle, method types.ScoringMethod, resultCount int, cfg types.SelectionConfig) types.Ranking {
	if method == types.MethodNone {
		return types.Ranking{Method: types.MethodNone}
	}

	kept := make([]types.ScoredVehicle, 0, len(scored))
	for _, sv := range scored {
		sv.CombinedScore = decisiveScore(sv, method)
		if method == types.MethodAffordability && overHardCap(sv, cfg) {
			continue
		}
		kept = append(kept, sv)
	}

	sortVehicles(kept)

	if resultCount > 0 && len(kept) > resultCount {
		kept = kept[:resultCount]
	}

	return types.Ranking{
		Vehicles:    kept,
		Method:      method,
		ResultCount: len(kept),
	}
}

// decisiveScore computes the score the ranking sorts on.
func decisiveScore(sv types.ScoredVehicle, method types.ScoringMethod) float64 {
	switch method {
	case types.MethodPreference:
		return sv.PreferenceScore
	case types.MethodAffordability:
		return affordabilityLeadShare*affordOf(sv) +
			affordabilityPrefShare*sv.PreferenceScore
	case types.MethodCombined:
		return combinedPreferenceLead*sv.PreferenceScore +
			combinedAffordShare*affordOf(sv)
	}
	return 0
}

func affordOf(sv types.ScoredVehicle) float64 {
	if sv.Affordability == nil {
		return 0.5
	}
	return sv.Affordability.AffordabilityScore
}

// overHardCap reports a known DTI beyond the hard cap. An unknown DTI
// is never capped; the cap exists to drop vehicles the disclosed income
// demonstrably cannot carry.
func overHardCap(sv types.ScoredVehicle, cfg types.SelectionConfig) bool {
	return sv.Affordability != nil &&
		sv.Affordability.DTIKnown &&
		sv.Affordability.DTIPercent > cfg.DTIHardCapPercent
}

// sortVehicles orders by decisive score descending, then price
// ascending, then ID ascending. The two tiebreakers make the order a
// total one, so equal inputs always produce byte-identical output.
func sortVehicles(vs []types.ScoredVehicle) {
	sort.SliceStable(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.CombinedScore != b.CombinedScore {
			return a.CombinedScore > b.CombinedScore
		}
		if a.Vehicle.Price != b.Vehicle.Price {
			return a.Vehicle.Price < b.Vehicle.Price
		}
		return a.Vehicle.ID < b.Vehicle.ID
	})
}
