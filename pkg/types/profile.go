// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Terrain describes the driving environment the user mentioned.
type Terrain string

const (
	TerrainCity    Terrain = "city"
	TerrainHighway Terrain = "highway"
	TerrainOffroad Terrain = "offroad"
)

// UserProfile holds preference signals extracted from the conversation.
// Numeric fields use the zero value for "unspecified": absence of a budget
// means the user never stated one, not a budget of zero. Extraction is
// best-effort; unmatched fields are simply left at their zero value.
type UserProfile struct {
	// BudgetMax is the stated maximum purchase price in dollars (0 = unset).
	BudgetMax float64 `json:"budget_max,omitempty" yaml:"budget_max,omitempty"`

	// BudgetFlexible is set when the user explicitly said the budget is open.
	BudgetFlexible bool `json:"budget_flexible,omitempty" yaml:"budget_flexible,omitempty"`

	// Passengers is the number of people the vehicle must carry (0 = unset).
	Passengers int `json:"passengers,omitempty" yaml:"passengers,omitempty"`

	// CommuteMiles is the stated commute distance in miles (0 = unset).
	CommuteMiles float64 `json:"commute_miles,omitempty" yaml:"commute_miles,omitempty"`

	// Priorities are the scoring dimensions the user called out, in the
	// order first mentioned. Drawn from the closed dimension taxonomy.
	Priorities []Dimension `json:"priorities,omitempty" yaml:"priorities,omitempty"`

	// TopPriority is the single dimension to weight most heavily. Set by an
	// explicit "most important" phrase, otherwise the first detected
	// priority. DimensionNone when no priority was detected.
	TopPriority Dimension `json:"top_priority,omitempty" yaml:"top_priority,omitempty"`

	// FeaturesWanted are canonical feature tags (e.g. "awd", "sunroof").
	FeaturesWanted []string `json:"features_wanted,omitempty" yaml:"features_wanted,omitempty"`

	// Terrain is the driving environment, "" when never mentioned.
	Terrain Terrain `json:"terrain,omitempty" yaml:"terrain,omitempty"`

	// SpecificNeeds are canonical need tags: "family", "towing", "space",
	// "snow", "pets".
	SpecificNeeds []string `json:"specific_needs,omitempty" yaml:"specific_needs,omitempty"`
}

// HasPriority reports whether d appears in the declared priorities.
func (p UserProfile) HasPriority(d Dimension) bool {
	for _, pr := range p.Priorities {
		if pr == d {
			return true
		}
	}
	return false
}

// HasNeed reports whether the canonical need tag was declared.
func (p UserProfile) HasNeed(tag string) bool {
	for _, n := range p.SpecificNeeds {
		if n == tag {
			return true
		}
	}
	return false
}

// WantsFeature reports whether the canonical feature tag was requested.
func (p UserProfile) WantsFeature(tag string) bool {
	for _, f := range p.FeaturesWanted {
		if f == tag {
			return true
		}
	}
	return false
}

// CreditBand buckets credit quality for the interest-rate table.
type CreditBand string

const (
	CreditExcellent CreditBand = "excellent" // 750+
	CreditGood      CreditBand = "good"      // 700-749
	CreditFair      CreditBand = "fair"      // 650-699
	CreditPoor      CreditBand = "poor"      // 600-649
	CreditVeryPoor  CreditBand = "very_poor" // below 600
)

// BandForScore maps a numeric credit score (300-850) to its band.
func BandForScore(score int) CreditBand {
	switch {
	case score >= 750:
		return CreditExcellent
	case score >= 700:
		return CreditGood
	case score >= 650:
		return CreditFair
	case score >= 600:
		return CreditPoor
	default:
		return CreditVeryPoor
	}
}

// FinancialProfile holds the financial disclosure extracted from the
// conversation. As with UserProfile, zero values mean "unspecified".
type FinancialProfile struct {
	// MonthlyIncome in dollars (0 = unset).
	MonthlyIncome float64 `json:"monthly_income,omitempty" yaml:"monthly_income,omitempty"`

	// AnnualIncome in dollars (0 = unset). Only one of the two income
	// fields is normally set; the evaluator divides annual by 12.
	AnnualIncome float64 `json:"annual_income,omitempty" yaml:"annual_income,omitempty"`

	// IncomeAmbiguous is set when an income amount was mentioned but the
	// unit (monthly vs annual) could not be inferred. The amount is left
	// unset so the conversation layer can ask for clarification.
	IncomeAmbiguous bool `json:"income_ambiguous,omitempty" yaml:"income_ambiguous,omitempty"`

	// CreditScore is the numeric score when one was stated (0 = unset).
	CreditScore int `json:"credit_score,omitempty" yaml:"credit_score,omitempty"`

	// CreditBand is the credit bucket, derived from the numeric score or
	// stated qualitatively ("my credit is good"). "" = unset.
	CreditBand CreditBand `json:"credit_band,omitempty" yaml:"credit_band,omitempty"`

	// DownPayment in dollars (0 = unset).
	DownPayment float64 `json:"down_payment,omitempty" yaml:"down_payment,omitempty"`

	// LoanTermMonths is the requested financing term (0 = unset; the
	// evaluator defaults to 60).
	LoanTermMonths int `json:"loan_term_months,omitempty" yaml:"loan_term_months,omitempty"`

	// TradeInValue in dollars (0 = unset).
	TradeInValue float64 `json:"trade_in_value,omitempty" yaml:"trade_in_value,omitempty"`
}

// HasData reports whether at least one of income, credit, or down payment
// is known. Affordability evaluation only runs when this is true.
func (f FinancialProfile) HasData() bool {
	return f.MonthlyIncome > 0 || f.AnnualIncome > 0 ||
		f.CreditBand != "" || f.DownPayment > 0
}

// MonthlyIncomeOrDerived returns the monthly income, deriving it from the
// annual figure when only that was supplied. Returns 0 when unknown.
func (f FinancialProfile) MonthlyIncomeOrDerived() float64 {
	if f.MonthlyIncome > 0 {
		return f.MonthlyIncome
	}
	if f.AnnualIncome > 0 {
		return f.AnnualIncome / 12
	}
	return 0
}
