// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Dimension identifies one of the eight fixed scoring dimensions. The set
// is a closed enumeration backing a fixed-size vector, so a missing or
// misspelled dimension is a compile-time or validation-time error rather
// than a silent scoring gap. The zero value means "no dimension".
type Dimension int

const (
	DimensionNone Dimension = iota
	DimBudget
	DimFuelEfficiency
	DimSeating
	DimDrivetrain
	DimVehicleType
	DimPerformance
	DimFeatures
	DimSafety
)

// NumDimensions is the size of every dimension-indexed vector.
const NumDimensions = 8

var dimensionNames = [NumDimensions]string{
	"budget", "fuel_efficiency", "seating", "drivetrain",
	"vehicle_type", "performance", "features", "safety",
}

// AllDimensions lists the eight dimensions in canonical order.
func AllDimensions() [NumDimensions]Dimension {
	return [NumDimensions]Dimension{
		DimBudget, DimFuelEfficiency, DimSeating, DimDrivetrain,
		DimVehicleType, DimPerformance, DimFeatures, DimSafety,
	}
}

// String returns the canonical tag, or "" for DimensionNone.
func (d Dimension) String() string {
	if d < DimBudget || d > DimSafety {
		return ""
	}
	return dimensionNames[d-1]
}

// index returns the vector slot for d. Callers must not pass DimensionNone.
func (d Dimension) index() int { return int(d) - 1 }

// ParseDimension resolves a canonical tag to its Dimension.
func ParseDimension(tag string) (Dimension, error) {
	for i, name := range dimensionNames {
		if name == tag {
			return Dimension(i + 1), nil
		}
	}
	return DimensionNone, fmt.Errorf("unknown scoring dimension %q", tag)
}

// MarshalJSON encodes the dimension as its canonical tag.
func (d Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a canonical tag ("" becomes DimensionNone).
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag == "" {
		*d = DimensionNone
		return nil
	}
	parsed, err := ParseDimension(tag)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the dimension as its canonical tag.
func (d Dimension) MarshalYAML() (interface{}, error) { return d.String(), nil }

// UnmarshalYAML decodes a canonical tag.
func (d *Dimension) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var tag string
	if err := unmarshal(&tag); err != nil {
		return err
	}
	if tag == "" {
		*d = DimensionNone
		return nil
	}
	parsed, err := ParseDimension(tag)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// WeightSumTolerance is the allowed deviation of a weight vector's sum
// from 1.0.
const WeightSumTolerance = 1e-9

// WeightVector maps each of the eight dimensions to a weight in [0,1].
// A valid vector sums to 1.0 within WeightSumTolerance, which guarantees
// weighted totals of bounded sub-scores stay in [0,1].
type WeightVector [NumDimensions]float64

// Get returns the weight for d.
func (w WeightVector) Get(d Dimension) float64 { return w[d.index()] }

// Set assigns the weight for d.
func (w *WeightVector) Set(d Dimension, v float64) { w[d.index()] = v }

// Sum returns the total of all weights.
func (w WeightVector) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// Validate checks that every weight is in [0,1] and the sum is 1.0 within
// tolerance.
func (w WeightVector) Validate() error {
	for i, v := range w {
		if v < 0 || v > 1 {
			return fmt.Errorf("weight for %s is %v, want [0,1]", dimensionNames[i], v)
		}
	}
	if s := w.Sum(); math.Abs(s-1.0) > WeightSumTolerance {
		return fmt.Errorf("weights sum to %v, want 1.0", s)
	}
	return nil
}

// MarshalJSON encodes the vector as an object keyed by dimension tag, in
// canonical dimension order so identical vectors serialize identically.
func (w WeightVector) MarshalJSON() ([]byte, error) {
	return marshalDimensionObject(w)
}

// UnmarshalJSON decodes an object keyed by dimension tag.
func (w *WeightVector) UnmarshalJSON(data []byte) error {
	return unmarshalDimensionObject(data, (*[NumDimensions]float64)(w))
}

// Subscores holds the per-dimension match quality for one vehicle, each
// value in [0,1].
type Subscores [NumDimensions]float64

// Get returns the sub-score for d.
func (s Subscores) Get(d Dimension) float64 { return s[d.index()] }

// Set assigns the sub-score for d.
func (s *Subscores) Set(d Dimension, v float64) { s[d.index()] = v }

// MarshalJSON encodes the sub-scores keyed by dimension tag in canonical
// order.
func (s Subscores) MarshalJSON() ([]byte, error) {
	return marshalDimensionObject(s)
}

// UnmarshalJSON decodes an object keyed by dimension tag.
func (s *Subscores) UnmarshalJSON(data []byte) error {
	return unmarshalDimensionObject(data, (*[NumDimensions]float64)(s))
}

func marshalDimensionObject(vals [NumDimensions]float64) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range vals {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", dimensionNames[i])
		num, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(num)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalDimensionObject(data []byte, out *[NumDimensions]float64) error {
	m := map[string]float64{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for tag, v := range m {
		d, err := ParseDimension(tag)
		if err != nil {
			return err
		}
		out[d.index()] = v
	}
	return nil
}

// AffordabilityResult is the financial evaluation of one vehicle against
// the user's financial profile.
type AffordabilityResult struct {
	// MonthlyPayment is the amortized loan payment in dollars.
	MonthlyPayment float64 `json:"monthly_payment" yaml:"monthly_payment"`

	// DTIPercent is the payment as a percentage of monthly income.
	// Undefined (and zero) when DTIKnown is false because income is
	// unknown; never a division by zero.
	DTIPercent float64 `json:"dti_percent,omitempty" yaml:"dti_percent,omitempty"`
	DTIKnown   bool    `json:"dti_known" yaml:"dti_known"`

	// AffordabilityScore is in [0,1]; higher is more affordable.
	AffordabilityScore float64 `json:"affordability_score" yaml:"affordability_score"`

	// TCO5Yr is the estimated five-year total cost of ownership.
	TCO5Yr float64 `json:"tco_5yr" yaml:"tco_5yr"`

	// Warnings is an ordered list of tags: "high_dti",
	// "low_down_payment", "long_loan_term", "subprime_credit". The tags
	// are independent and additive.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ScoredVehicle pairs a catalog vehicle with its scoring breakdown.
type ScoredVehicle struct {
	Vehicle Vehicle `json:"vehicle" yaml:"vehicle"`

	// Subscores are the eight per-dimension scores in [0,1].
	Subscores Subscores `json:"subscores" yaml:"subscores"`

	// PreferenceScore is the weighted total of the sub-scores, in [0,1].
	PreferenceScore float64 `json:"preference_score" yaml:"preference_score"`

	// Affordability is present only when financial data allowed an
	// evaluation.
	Affordability *AffordabilityResult `json:"affordability,omitempty" yaml:"affordability,omitempty"`

	// CombinedScore blends preference and affordability; only meaningful
	// for the affordability_based and combined scoring methods.
	CombinedScore float64 `json:"combined_score,omitempty" yaml:"combined_score,omitempty"`

	// Reasons are match-reason tags collected while scoring (e.g.
	// "within_budget", "awd_match", "top_safety").
	Reasons []string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// ScoringMethod classifies which signal drove a ranking.
type ScoringMethod string

const (
	// MethodNone means neither preferences nor financial data were
	// substantial enough to rank; the ranking is empty and the missing
	// flags tell the caller what to ask.
	MethodNone          ScoringMethod = ""
	MethodPreference    ScoringMethod = "preference_based"
	MethodAffordability ScoringMethod = "affordability_based"
	MethodCombined      ScoringMethod = "combined"
)

// MissingInfo flags the profile fields the conversation has not yet
// supplied. A conversational front end can use these to phrase follow-up
// questions; they have no effect on scoring.
type MissingInfo struct {
	NeedsBudget              bool `json:"needs_budget" yaml:"needs_budget"`
	NeedsPassengers          bool `json:"needs_passengers" yaml:"needs_passengers"`
	NeedsIncome              bool `json:"needs_income" yaml:"needs_income"`
	NeedsIncomeClarification bool `json:"needs_income_clarification" yaml:"needs_income_clarification"`
	NeedsCredit              bool `json:"needs_credit" yaml:"needs_credit"`
	NeedsDownPayment         bool `json:"needs_down_payment" yaml:"needs_down_payment"`
	NeedsPriorities          bool `json:"needs_priorities" yaml:"needs_priorities"`
	NeedsFeatures            bool `json:"needs_features" yaml:"needs_features"`
	NeedsCommute             bool `json:"needs_commute" yaml:"needs_commute"`
}

// Any reports whether at least one flag is set.
func (m MissingInfo) Any() bool {
	return m.NeedsBudget || m.NeedsPassengers || m.NeedsIncome ||
		m.NeedsIncomeClarification || m.NeedsCredit || m.NeedsDownPayment ||
		m.NeedsPriorities || m.NeedsFeatures || m.NeedsCommute
}

// Ranking is the engine's output: the ordered shortlist, the method that
// produced it, the result-count decision, and the missing-information
// flags for the conversation layer.
type Ranking struct {
	Vehicles    []ScoredVehicle `json:"vehicles" yaml:"vehicles"`
	Method      ScoringMethod   `json:"scoring_method" yaml:"scoring_method"`
	ResultCount int             `json:"result_count" yaml:"result_count"`
	Missing     MissingInfo     `json:"missing_info" yaml:"missing_info"`
}
