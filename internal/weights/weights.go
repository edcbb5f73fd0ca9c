// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package weights converts declared priorities into the eight-dimension
// weight vector that drives catalog scoring.
package weights

import "github.com/pdiddy/drivematch/pkg/types"

// Calculate builds the weight vector for a profile:
//
//   - the top priority, when present, holds exactly the configured top
//     weight (default 0.45);
//   - other declared priorities split the declared share (default 0.30)
//     evenly;
//   - every remaining dimension receives the baseline (default 0.06),
//     except that a long commute raises the fuel-efficiency baseline so
//     efficiency matters more without touching its sub-score;
//   - no priorities at all means a uniform 1/8 vector.
//
// The vector is then renormalized to sum to exactly 1.0. With a top
// priority set, only the non-top remainder is rescaled (to 1 minus the
// top weight), which keeps the top weight exact regardless of how many
// other priorities were declared.
func Calculate(p types.UserProfile, cfg types.WeightConfig) types.WeightVector {
	var w types.WeightVector

	if len(p.Priorities) == 0 && p.TopPriority == types.DimensionNone {
		for _, d := range types.AllDimensions() {
			w.Set(d, 1.0/types.NumDimensions)
		}
		return w
	}

	others := 0
	for _, d := range p.Priorities {
		if d != p.TopPriority {
			others++
		}
	}

	for _, d := range types.AllDimensions() {
		switch {
		case d == p.TopPriority:
			w.Set(d, cfg.TopPriorityWeight)
		case p.HasPriority(d):
			w.Set(d, cfg.DeclaredShare/float64(others))
		default:
			w.Set(d, baseline(d, p, cfg))
		}
	}

	normalize(&w, p.TopPriority, cfg.TopPriorityWeight)
	return w
}

// baseline returns the pre-normalization weight for an undeclared
// dimension. A commute beyond the long-commute threshold biases the
// fuel-efficiency baseline upward.
func baseline(d types.Dimension, p types.UserProfile, cfg types.WeightConfig) float64 {
	if d == types.DimFuelEfficiency && p.CommuteMiles > cfg.LongCommuteMiles {
		return cfg.LongCommuteBaseline
	}
	return cfg.BaselineWeight
}

// normalize rescales the vector to sum to 1.0. When a top priority is
// set its weight is pinned and the rest share the remainder; otherwise
// the whole vector is divided by its sum.
func normalize(w *types.WeightVector, top types.Dimension, topWeight float64) {
	if top == types.DimensionNone {
		sum := w.Sum()
		if sum == 0 {
			return
		}
		for _, d := range types.AllDimensions() {
			w.Set(d, w.Get(d)/sum)
		}
		return
	}

	rest := w.Sum() - topWeight
	if rest <= 0 {
		return
	}
	scale := (1.0 - topWeight) / rest
	for _, d := range types.AllDimensions() {
		if d != top {
			w.Set(d, w.Get(d)*scale)
		}
	}
}
