package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/drivematch/pkg/types"
)

func testCatalog() []types.Vehicle {
	return []types.Vehicle{
		{
			ID: "thrifty-sedan", Name: "Thrifty", Year: 2024, Price: 24000,
			MPGCombined: 40, FuelType: types.FuelGasoline, BodyStyle: "sedan",
			Seats: 5, Drivetrain: types.DrivetrainFWD, Horsepower: 150,
			CrashTestScore: 0.8, DriverAssist: []string{"backup_camera"},
		},
		{
			ID: "eco-hybrid", Name: "Eco", Year: 2024, Price: 29000,
			MPGCombined: 52, FuelType: types.FuelHybrid, BodyStyle: "sedan",
			Seats: 5, Drivetrain: types.DrivetrainFWD, Horsepower: 180,
			CrashTestScore: 0.9, DriverAssist: []string{"adaptive_cruise", "lane_assist"},
		},
		{
			ID: "family-hauler", Name: "Hauler", Year: 2024, Price: 38000,
			MPGCombined: 24, FuelType: types.FuelGasoline, BodyStyle: "suv",
			Seats: 7, CargoVolume: 40, Drivetrain: types.DrivetrainAWD,
			Horsepower: 280, TowingCapacity: 5000, CrashTestScore: 0.95,
			DriverAssist: []string{"adaptive_cruise", "lane_assist", "blind_spot_monitor"},
		},
		{
			ID: "lux-cruiser", Name: "Cruiser", Year: 2024, Price: 62000,
			MPGCombined: 20, FuelType: types.FuelGasoline, BodyStyle: "suv",
			Seats: 7, Drivetrain: types.DrivetrainAWD, Horsepower: 400,
			CrashTestScore: 0.9, DriverAssist: []string{"adaptive_cruise"},
		},
	}
}

func userSays(texts ...string) []types.ConversationMessage {
	msgs := make([]types.ConversationMessage, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, types.ConversationMessage{Role: types.RoleUser, Text: t})
	}
	return msgs
}

func TestRecommendPreferenceOnly(t *testing.T) {
	msgs := userSays(
		"I need a car for my family of 5, budget is $35k.",
		"Fuel efficiency is most important, mostly city driving.",
	)

	res, err := Recommend(msgs, testCatalog(), types.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, types.MethodPreference, res.Ranking.Method)
	assert.Equal(t, 0.45, res.Weights.Get(types.DimFuelEfficiency),
		"the top priority holds exactly the configured weight")
	require.NotEmpty(t, res.Ranking.Vehicles)
	assert.Equal(t, "eco-hybrid", res.Ranking.Vehicles[0].Vehicle.ID,
		"highest MPG within budget should lead a fuel-first ranking")
	for _, sv := range res.Ranking.Vehicles {
		assert.Nil(t, sv.Affordability, "no financial data, no affordability")
	}
}

func TestRecommendAffordabilityOnly(t *testing.T) {
	msgs := userSays(
		"I make $4000 a month and my credit is good.",
		"I can put $5000 down.",
	)

	res, err := Recommend(msgs, testCatalog(), types.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, types.MethodAffordability, res.Ranking.Method)
	require.NotEmpty(t, res.Ranking.Vehicles)
	for _, sv := range res.Ranking.Vehicles {
		require.NotNil(t, sv.Affordability)
		assert.True(t, sv.Affordability.DTIKnown)
		assert.LessOrEqual(t, sv.Affordability.DTIPercent, 18.0,
			"the DTI hard cap filters affordability-led rankings")
		assert.NotEqual(t, "lux-cruiser", sv.Vehicle.ID,
			"a $62k vehicle on a $4k income is over the cap")
	}
}

func TestRecommendCombined(t *testing.T) {
	msgs := userSays(
		"Family of 5, budget around $35k, safety matters most.",
		"I make $6000 a month with a 740 credit score and $10,000 down.",
	)

	res, err := Recommend(msgs, testCatalog(), types.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, types.MethodCombined, res.Ranking.Method)
	assert.Equal(t, 0.45, res.Weights.Get(types.DimSafety))
	require.NotEmpty(t, res.Ranking.Vehicles)
	for _, sv := range res.Ranking.Vehicles {
		require.NotNil(t, sv.Affordability)
	}
	// Combined has no DTI hard cap: the expensive SUV may rank, just low.
	assert.Equal(t, types.CreditGood, res.Financial.CreditBand)
}

func TestRecommendInsufficientSignal(t *testing.T) {
	res, err := Recommend(userSays("Hi, what should I buy?"), testCatalog(), types.DefaultEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, types.MethodNone, res.Ranking.Method)
	assert.Empty(t, res.Ranking.Vehicles)
	assert.True(t, res.Ranking.Missing.Any())
	assert.True(t, res.Ranking.Missing.NeedsBudget)
	assert.True(t, res.Ranking.Missing.NeedsPriorities)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	_, err := Recommend(userSays("budget $30k, family of 4"), nil, types.DefaultEngineConfig())
	assert.ErrorIs(t, err, ErrNoCatalog)
}

func TestRecommendInvalidConfig(t *testing.T) {
	cfg := types.DefaultEngineConfig()
	cfg.Weights.TopPriorityWeight = 2.0

	_, err := Recommend(userSays("budget $30k, family of 4"), testCatalog(), cfg)
	assert.Error(t, err)
}

func TestRecommendDeterministic(t *testing.T) {
	msgs := userSays(
		"Family of 5, budget $35k, we do winter trips and I care about safety.",
		"I make $5500 a month, credit around 710, $7000 down.",
	)
	catalog := testCatalog()
	cfg := types.DefaultEngineConfig()

	first, err := Recommend(msgs, catalog, cfg)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Recommend(msgs, catalog, cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again, "identical inputs must produce identical output")
	}
}

func TestRecommendShowMoreWidensResults(t *testing.T) {
	base := userSays("Family of 5, budget $40k, safety matters most.")
	more := append(base, types.ConversationMessage{Role: types.RoleUser, Text: "show me more"})

	cfg := types.DefaultEngineConfig()
	cfg.Selection.BaseResultCount = 2
	cfg.Selection.MoreResultCount = 4

	narrow, err := Recommend(base, testCatalog(), cfg)
	require.NoError(t, err)
	wide, err := Recommend(more, testCatalog(), cfg)
	require.NoError(t, err)

	assert.Len(t, narrow.Ranking.Vehicles, 2)
	assert.Greater(t, len(wide.Ranking.Vehicles), len(narrow.Ranking.Vehicles))
}

func TestRecommendCorrectionOverridesEarlierBudget(t *testing.T) {
	msgs := userSays(
		"Budget is $25k, family of 5.",
		"Actually my budget is $65k.",
	)

	res, err := Recommend(msgs, testCatalog(), types.DefaultEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, 65000.0, res.Profile.BudgetMax)
}
