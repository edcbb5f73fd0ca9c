// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/drivematch/pkg/types"
)

// HasSubstantialPreferences reports whether the profile carries enough
// signal to rank on preferences: at least two of the six signal groups
// (budget or explicit flexibility, passengers/family, priorities,
// features wanted, terrain/commute, specific needs) are populated.
func HasSubstantialPreferences(p types.UserProfile) bool {
	groups := 0
	if p.BudgetMax > 0 || p.BudgetFlexible {
		groups++
	}
	if p.Passengers > 0 || p.HasNeed("family") {
		groups++
	}
	if len(p.Priorities) > 0 {
		groups++
	}
	if len(p.FeaturesWanted) > 0 {
		groups++
	}
	if p.Terrain != "" || p.CommuteMiles > 0 {
		groups++
	}
	if len(p.SpecificNeeds) > 0 {
		groups++
	}
	return groups >= 2
}

// declinedToShare matches a user refusing to discuss finances; the
// analyzer then stops flagging income and credit so the conversation
// layer does not ask again.
var declinedToShare = regexp.MustCompile(`(?:rather not|prefer not to|don't want to)\s+(?:say|share|discuss)`)

// MissingInformation enumerates the profile fields the conversation has
// not supplied yet. The flags drive follow-up questions in a
// conversational front end; they never influence scoring.
func MissingInformation(up types.UserProfile, fp types.FinancialProfile, lastUserMessage string) types.MissingInfo {
	m := types.MissingInfo{
		NeedsBudget:              up.BudgetMax == 0 && !up.BudgetFlexible,
		NeedsPassengers:          up.Passengers == 0,
		NeedsIncome:              fp.MonthlyIncome == 0 && fp.AnnualIncome == 0 && !fp.IncomeAmbiguous,
		NeedsIncomeClarification: fp.IncomeAmbiguous,
		NeedsCredit:              fp.CreditBand == "",
		NeedsDownPayment:         fp.DownPayment == 0,
		NeedsPriorities:          len(up.Priorities) == 0,
		NeedsFeatures:            len(up.FeaturesWanted) == 0,
		NeedsCommute:             up.CommuteMiles == 0 && up.Terrain == "",
	}

	if declinedToShare.MatchString(lastUserMessage) {
		m.NeedsIncome = false
		m.NeedsCredit = false
		m.NeedsDownPayment = false
	}

	return m
}
