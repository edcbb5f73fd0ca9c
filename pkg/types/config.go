// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// WeightConfig holds the priority-to-weight rule constants.
type WeightConfig struct {
	// TopPriorityWeight is the weight assigned to the user's top priority
	// (default 0.45). It is held exact; the remaining dimensions share
	// the remainder.
	TopPriorityWeight float64 `json:"top_priority_weight" yaml:"top_priority_weight"`

	// DeclaredShare is the weight split evenly among declared non-top
	// priorities (default 0.30).
	DeclaredShare float64 `json:"declared_share" yaml:"declared_share"`

	// BaselineWeight is the pre-normalization weight for dimensions the
	// user never mentioned (default 0.06).
	BaselineWeight float64 `json:"baseline_weight" yaml:"baseline_weight"`

	// LongCommuteMiles is the commute distance beyond which the
	// fuel-efficiency baseline is biased upward (default 30).
	LongCommuteMiles float64 `json:"long_commute_miles" yaml:"long_commute_miles"`

	// LongCommuteBaseline replaces the fuel-efficiency baseline for long
	// commutes when fuel efficiency is not already a declared priority
	// (default 0.12).
	LongCommuteBaseline float64 `json:"long_commute_baseline" yaml:"long_commute_baseline"`
}

// ScoringConfig holds the sub-score curve constants.
type ScoringConfig struct {
	// BudgetOverage is the fraction above budget at which the budget
	// sub-score reaches zero (default 0.20, i.e. +20%).
	BudgetOverage float64 `json:"budget_overage" yaml:"budget_overage"`

	// ElectrifiedBoost is added to the fuel-efficiency sub-score for
	// hybrid/electric vehicles (default 0.15), capped at 1.0.
	ElectrifiedBoost float64 `json:"electrified_boost" yaml:"electrified_boost"`

	// CargoBonusVolume is the cargo volume (cu ft) above which a declared
	// "space" need earns the seating bonus (default 30).
	CargoBonusVolume float64 `json:"cargo_bonus_volume" yaml:"cargo_bonus_volume"`

	// OffroadClearanceIn is the ground clearance (inches) treated as
	// offroad-ready for vehicles without the explicit flag (default 8.0).
	OffroadClearanceIn float64 `json:"offroad_clearance_in" yaml:"offroad_clearance_in"`
}

// FinanceConfig holds the affordability curve and interest-rate table.
type FinanceConfig struct {
	// InterestRates is the annual rate per credit band, monotonic
	// decreasing with credit quality.
	InterestRates map[CreditBand]float64 `json:"interest_rates" yaml:"interest_rates"`

	// DefaultTermMonths applies when no loan term was stated (default 60).
	DefaultTermMonths int `json:"default_term_months" yaml:"default_term_months"`

	// ComfortableDTIPercent is the DTI at or below which the
	// affordability score is 1.0 (default 15).
	ComfortableDTIPercent float64 `json:"comfortable_dti_percent" yaml:"comfortable_dti_percent"`

	// UnaffordableDTIPercent is the DTI at which the score reaches 0
	// (default 36).
	UnaffordableDTIPercent float64 `json:"unaffordable_dti_percent" yaml:"unaffordable_dti_percent"`

	// MinDownPaymentRatio is the down-payment fraction of price below
	// which the score is penalized and a warning emitted (default 0.10).
	MinDownPaymentRatio float64 `json:"min_down_payment_ratio" yaml:"min_down_payment_ratio"`

	// LowDownPaymentPenalty is subtracted from the score for a thin down
	// payment (default 0.15).
	LowDownPaymentPenalty float64 `json:"low_down_payment_penalty" yaml:"low_down_payment_penalty"`

	// LongTermMonths is the loan length beyond which the score is
	// penalized and a warning emitted (default 72).
	LongTermMonths int `json:"long_term_months" yaml:"long_term_months"`

	// LongTermPenalty is subtracted for over-long terms (default 0.10).
	LongTermPenalty float64 `json:"long_term_penalty" yaml:"long_term_penalty"`

	// DepreciationRate is the fraction of price lost over five years,
	// subtracted in the cost-of-ownership estimate (default 0.60).
	DepreciationRate float64 `json:"depreciation_rate" yaml:"depreciation_rate"`
}

// SelectionConfig holds the result filtering and sizing rules.
type SelectionConfig struct {
	// DTIHardCapPercent discards vehicles above this DTI before sorting
	// affordability-leaning rankings (default 18).
	DTIHardCapPercent float64 `json:"dti_hard_cap_percent" yaml:"dti_hard_cap_percent"`

	// BaseResultCount is the default shortlist size (default 8).
	BaseResultCount int `json:"base_result_count" yaml:"base_result_count"`

	// MoreResultCount applies on "show more" (default 15); AllResultCount
	// on "show all" (default 25).
	MoreResultCount int `json:"more_result_count" yaml:"more_result_count"`
	AllResultCount  int `json:"all_result_count" yaml:"all_result_count"`
}

// EngineConfig groups the externally supplied curves and tables. The
// source material describes these only qualitatively, so they live in
// configuration rather than code constants.
type EngineConfig struct {
	Weights   WeightConfig    `json:"weights" yaml:"weights"`
	Scoring   ScoringConfig   `json:"scoring" yaml:"scoring"`
	Finance   FinanceConfig   `json:"finance" yaml:"finance"`
	Selection SelectionConfig `json:"selection" yaml:"selection"`
}

// DefaultEngineConfig returns the configuration used when the caller
// supplies nothing. The interest-rate table follows published 2024
// averages per credit band.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Weights: WeightConfig{
			TopPriorityWeight:   0.45,
			DeclaredShare:       0.30,
			BaselineWeight:      0.06,
			LongCommuteMiles:    30,
			LongCommuteBaseline: 0.12,
		},
		Scoring: ScoringConfig{
			BudgetOverage:      0.20,
			ElectrifiedBoost:   0.15,
			CargoBonusVolume:   30,
			OffroadClearanceIn: 8.0,
		},
		Finance: FinanceConfig{
			InterestRates: map[CreditBand]float64{
				CreditExcellent: 0.0549,
				CreditGood:      0.0699,
				CreditFair:      0.0899,
				CreditPoor:      0.1199,
				CreditVeryPoor:  0.1599,
			},
			DefaultTermMonths:      60,
			ComfortableDTIPercent:  15,
			UnaffordableDTIPercent: 36,
			MinDownPaymentRatio:    0.10,
			LowDownPaymentPenalty:  0.15,
			LongTermMonths:         72,
			LongTermPenalty:        0.10,
			DepreciationRate:       0.60,
		},
		Selection: SelectionConfig{
			DTIHardCapPercent: 18,
			BaseResultCount:   8,
			MoreResultCount:   15,
			AllResultCount:    25,
		},
	}
}

// Validate rejects configurations that would break the scoring
// invariants: unbounded scores, division by zero, or a non-monotonic
// rate table.
func (c EngineConfig) Validate() error {
	w := c.Weights
	if w.TopPriorityWeight <= 0 || w.TopPriorityWeight >= 1 {
		return fmt.Errorf("top_priority_weight %v out of (0,1)", w.TopPriorityWeight)
	}
	if w.DeclaredShare < 0 || w.BaselineWeight <= 0 {
		return fmt.Errorf("declared_share must be non-negative and baseline_weight positive")
	}
	if c.Scoring.BudgetOverage <= 0 {
		return fmt.Errorf("budget_overage must be positive")
	}
	f := c.Finance
	if f.DefaultTermMonths <= 0 {
		return fmt.Errorf("default_term_months must be positive")
	}
	if f.UnaffordableDTIPercent <= f.ComfortableDTIPercent {
		return fmt.Errorf("unaffordable_dti_percent %v must exceed comfortable_dti_percent %v",
			f.UnaffordableDTIPercent, f.ComfortableDTIPercent)
	}
	prev := 0.0
	for _, band := range []CreditBand{CreditExcellent, CreditGood, CreditFair, CreditPoor, CreditVeryPoor} {
		rate, ok := f.InterestRates[band]
		if !ok {
			return fmt.Errorf("interest_rates missing band %q", band)
		}
		if rate < prev {
			return fmt.Errorf("interest rate for band %q breaks monotonicity", band)
		}
		prev = rate
	}
	if c.Selection.BaseResultCount <= 0 {
		return fmt.Errorf("base_result_count must be positive")
	}
	return nil
}
