package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/drivematch/pkg/types"
)

func userSays(texts ...string) []types.ConversationMessage {
	msgs := make([]types.ConversationMessage, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, types.ConversationMessage{Role: types.RoleUser, Text: t})
	}
	return msgs
}

func TestExtractPreferences(t *testing.T) {
	up, _ := Extract(userSays(
		"I need a car for my family of 5, budget is $35k.",
		"Fuel efficiency is most important, I mostly do city driving.",
	))

	if up.BudgetMax != 35000 {
		t.Errorf("BudgetMax = %v, want 35000", up.BudgetMax)
	}
	if up.Passengers != 5 {
		t.Errorf("Passengers = %d, want 5", up.Passengers)
	}
	if !up.HasNeed("family") {
		t.Error("expected family need")
	}
	if up.TopPriority != types.DimFuelEfficiency {
		t.Errorf("TopPriority = %v, want fuel_efficiency", up.TopPriority)
	}
	if up.Terrain != types.TerrainCity {
		t.Errorf("Terrain = %q, want city", up.Terrain)
	}
}

func TestExtractFinancial(t *testing.T) {
	_, fp := Extract(userSays(
		"I make $5000 a month and my credit is good.",
		"I can put $8000 down and I'd want a 5 year loan.",
	))

	if fp.MonthlyIncome != 5000 {
		t.Errorf("MonthlyIncome = %v, want 5000", fp.MonthlyIncome)
	}
	if fp.CreditBand != types.CreditGood {
		t.Errorf("CreditBand = %q, want good", fp.CreditBand)
	}
	if fp.DownPayment != 8000 {
		t.Errorf("DownPayment = %v, want 8000", fp.DownPayment)
	}
	if fp.LoanTermMonths != 60 {
		t.Errorf("LoanTermMonths = %d, want 60", fp.LoanTermMonths)
	}
}

func TestExtractLaterMentionWins(t *testing.T) {
	up, _ := Extract(userSays(
		"My budget is $30k.",
		"Actually, my budget is $40k.",
	))
	if up.BudgetMax != 40000 {
		t.Errorf("BudgetMax = %v, want the corrected 40000", up.BudgetMax)
	}
}

func TestExtractCreditCorrectionWins(t *testing.T) {
	_, fp := Extract(userSays(
		"my credit is bad",
		"actually my credit is good",
	))
	if fp.CreditBand != types.CreditGood {
		t.Errorf("CreditBand = %q, want the corrected good", fp.CreditBand)
	}
}

func TestExtractNumericCreditScore(t *testing.T) {
	_, fp := Extract(userSays("My credit score is 720."))
	if fp.CreditScore != 720 {
		t.Errorf("CreditScore = %d, want 720", fp.CreditScore)
	}
	if fp.CreditBand != types.CreditGood {
		t.Errorf("CreditBand = %q, want good", fp.CreditBand)
	}

	// Out-of-range numbers are noise, not scores.
	_, fp = Extract(userSays("my credit score is 999"))
	if fp.CreditScore != 0 || fp.CreditBand != "" {
		t.Errorf("out-of-range score should be ignored, got %d/%q", fp.CreditScore, fp.CreditBand)
	}
}

func TestExtractIncomeUnitInference(t *testing.T) {
	tests := []struct {
		text        string
		wantMonthly float64
		wantAnnual  float64
		wantAmbig   bool
	}{
		{"I make $4500", 4500, 0, false},
		{"my income is $85,000", 0, 85000, false},
		{"I earn $90k a year", 0, 90000, false},
		{"my salary is $6000 per month", 6000, 0, false},
		{"I make $15,000", 0, 0, true},
	}
	for _, tt := range tests {
		_, fp := Extract(userSays(tt.text))
		if fp.MonthlyIncome != tt.wantMonthly || fp.AnnualIncome != tt.wantAnnual ||
			fp.IncomeAmbiguous != tt.wantAmbig {
			t.Errorf("%q: got monthly=%v annual=%v ambiguous=%v, want %v/%v/%v",
				tt.text, fp.MonthlyIncome, fp.AnnualIncome, fp.IncomeAmbiguous,
				tt.wantMonthly, tt.wantAnnual, tt.wantAmbig)
		}
	}
}

func TestExtractExplicitTopPrioritySticks(t *testing.T) {
	up, _ := Extract(userSays(
		"Safety is my top priority.",
		"Good gas mileage would be nice too.",
	))
	if up.TopPriority != types.DimSafety {
		t.Errorf("TopPriority = %v, want safety", up.TopPriority)
	}
	if !up.HasPriority(types.DimFuelEfficiency) {
		t.Error("fuel efficiency should still be a declared priority")
	}
}

func TestExtractFirstPriorityBecomesTop(t *testing.T) {
	up, _ := Extract(userSays("I want something safe with good gas mileage."))
	if up.TopPriority != types.DimSafety {
		t.Errorf("TopPriority = %v, want the first-mentioned safety", up.TopPriority)
	}
}

func TestExtractFeatures(t *testing.T) {
	up, _ := Extract(userSays(
		"I'd like AWD, a sunroof, and heated seats.",
	))
	want := []string{"awd", "sunroof", "heated_seats"}
	if !reflect.DeepEqual(up.FeaturesWanted, want) {
		t.Errorf("FeaturesWanted = %v, want %v", up.FeaturesWanted, want)
	}
}

func TestExtractDeterministic(t *testing.T) {
	msgs := userSays(
		"Family of 4, budget around $42k, we do a lot of winter trips with the dog.",
		"I care about safety and fuel efficiency, and I'd love a third row.",
	)
	up1, fp1 := Extract(msgs)
	up2, fp2 := Extract(msgs)
	if !reflect.DeepEqual(up1, up2) || !reflect.DeepEqual(fp1, fp2) {
		t.Error("identical conversations must extract identical profiles")
	}
}

func TestExtractEmptyConversation(t *testing.T) {
	up, fp := Extract(nil)
	if !reflect.DeepEqual(up, types.UserProfile{}) {
		t.Errorf("empty conversation should leave the profile empty, got %+v", up)
	}
	if fp.HasData() {
		t.Errorf("empty conversation should leave finances empty, got %+v", fp)
	}
}

func TestHasSubstantialPreferences(t *testing.T) {
	tests := []struct {
		name string
		p    types.UserProfile
		want bool
	}{
		{"empty", types.UserProfile{}, false},
		{"budget only", types.UserProfile{BudgetMax: 30000}, false},
		{"budget and passengers", types.UserProfile{BudgetMax: 30000, Passengers: 5}, true},
		{"priorities and terrain", types.UserProfile{
			Priorities: []types.Dimension{types.DimSafety},
			Terrain:    types.TerrainCity,
		}, true},
		{"features only", types.UserProfile{FeaturesWanted: []string{"awd"}}, false},
	}
	for _, tt := range tests {
		if got := HasSubstantialPreferences(tt.p); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMissingInformation(t *testing.T) {
	m := MissingInformation(types.UserProfile{}, types.FinancialProfile{}, "hi")
	if !m.NeedsBudget || !m.NeedsIncome || !m.NeedsPriorities {
		t.Errorf("empty profiles should flag everything, got %+v", m)
	}

	m = MissingInformation(
		types.UserProfile{BudgetMax: 30000, Passengers: 4},
		types.FinancialProfile{MonthlyIncome: 5000},
		"anything else?",
	)
	if m.NeedsBudget || m.NeedsPassengers || m.NeedsIncome {
		t.Errorf("supplied fields should not be flagged, got %+v", m)
	}

	m = MissingInformation(types.UserProfile{}, types.FinancialProfile{IncomeAmbiguous: true}, "")
	if !m.NeedsIncomeClarification || m.NeedsIncome {
		t.Errorf("ambiguous income should ask for clarification only, got %+v", m)
	}
}

func TestMissingInformationRespectsDecline(t *testing.T) {
	m := MissingInformation(types.UserProfile{}, types.FinancialProfile{},
		"I'd rather not share my finances")
	if m.NeedsIncome || m.NeedsCredit || m.NeedsDownPayment {
		t.Errorf("declined finances should not be re-asked, got %+v", m)
	}
	if !m.NeedsBudget {
		t.Error("non-financial flags should survive a finance decline")
	}
}

func TestResultCount(t *testing.T) {
	cfg := types.DefaultEngineConfig().Selection

	tests := []struct {
		text string
		want int
	}{
		{"what do you recommend?", 8},
		{"show me more", 15},
		{"can I see more options", 15},
		{"show me 5 more", 13},
		{"show all of them", 25},
		{"show me all", 25},
	}
	for _, tt := range tests {
		if got := ResultCount(tt.text, cfg); got != tt.want {
			t.Errorf("ResultCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
