// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract parses conversation history into structured preference
// and financial profiles. Extraction is pattern-based and best-effort: a
// pattern that does not match leaves its field untouched, and a later
// mention of a field overwrites an earlier one, so user corrections
// ("actually, my budget is $40k") take effect naturally.
package extract

import (
	"strings"

	"github.com/pdiddy/drivematch/pkg/types"
)

// profiles is the mutable accumulation target threaded through the
// pattern table while a conversation is processed.
type profiles struct {
	user      types.UserProfile
	financial types.FinancialProfile
}

// Extract processes the user-authored messages oldest to newest and
// returns the extracted profiles. It never fails: malformed or
// unrecognized values simply leave fields unset.
func Extract(messages []types.ConversationMessage) (types.UserProfile, types.FinancialProfile) {
	p := &profiles{}
	for _, msg := range types.UserMessages(messages) {
		text := strings.ToLower(msg.Text)
		for _, fp := range fieldPatterns {
			if m := fp.re.FindStringSubmatch(text); m != nil {
				fp.apply(m, p)
			}
		}
		addPrioritiesInOrder(text, p)
	}

	// Priority mentions without an explicit "most important" phrase:
	// the first detected priority is the top one.
	if p.user.TopPriority == types.DimensionNone && len(p.user.Priorities) > 0 {
		p.user.TopPriority = p.user.Priorities[0]
	}

	return p.user, p.financial
}

// addPriority appends d to the declared priorities if not already present.
func (p *profiles) addPriority(d types.Dimension) {
	if !p.user.HasPriority(d) {
		p.user.Priorities = append(p.user.Priorities, d)
	}
}

// addFeature appends a canonical feature tag if not already present.
func (p *profiles) addFeature(tag string) {
	if !p.user.WantsFeature(tag) {
		p.user.FeaturesWanted = append(p.user.FeaturesWanted, tag)
	}
}

// addNeed appends a canonical need tag if not already present.
func (p *profiles) addNeed(tag string) {
	if !p.user.HasNeed(tag) {
		p.user.SpecificNeeds = append(p.user.SpecificNeeds, tag)
	}
}

// setTopPriority records an explicit top-priority statement, overriding
// any earlier one. Plain priority mentions never displace it: they only
// fill TopPriority when no explicit statement was ever made.
func (p *profiles) setTopPriority(d types.Dimension) {
	p.user.TopPriority = d
	p.addPriority(d)
}

// setIncome resolves the stated amount and unit. When the unit cannot be
// inferred the amount is dropped and the ambiguity flag raised so the
// conversation layer can ask which was meant.
func (p *profiles) setIncome(amount float64, unit string) {
	if amount <= 0 {
		return
	}
	switch {
	case strings.HasPrefix(unit, "year") || strings.HasPrefix(unit, "yr") ||
		strings.HasPrefix(unit, "annu"):
		p.financial.AnnualIncome = amount
		p.financial.MonthlyIncome = 0
		p.financial.IncomeAmbiguous = false
	case strings.HasPrefix(unit, "month") || strings.HasPrefix(unit, "mo"):
		p.financial.MonthlyIncome = amount
		p.financial.AnnualIncome = 0
		p.financial.IncomeAmbiguous = false
	case amount < ambiguousIncomeLow:
		// Small amounts only make sense as monthly figures.
		p.financial.MonthlyIncome = amount
		p.financial.AnnualIncome = 0
		p.financial.IncomeAmbiguous = false
	case amount >= ambiguousIncomeHigh:
		p.financial.AnnualIncome = amount
		p.financial.MonthlyIncome = 0
		p.financial.IncomeAmbiguous = false
	default:
		p.financial.MonthlyIncome = 0
		p.financial.AnnualIncome = 0
		p.financial.IncomeAmbiguous = true
	}
}

// Amounts between these bounds are plausible as either monthly or annual
// income, so a unit-less mention in that band is flagged ambiguous.
const (
	ambiguousIncomeLow  = 10000
	ambiguousIncomeHigh = 20000
)

// setCreditScore records a numeric credit score, rejecting values outside
// the 300-850 range as noise.
func (p *profiles) setCreditScore(score int) {
	if score < 300 || score > 850 {
		return
	}
	p.financial.CreditScore = score
	p.financial.CreditBand = types.BandForScore(score)
}

// setCreditBand records a qualitative credit statement, clearing any
// earlier numeric score since the newer statement wins.
func (p *profiles) setCreditBand(band types.CreditBand) {
	p.financial.CreditScore = 0
	p.financial.CreditBand = band
}
