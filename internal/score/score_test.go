package score

import (
	"math"
	"testing"

	"github.com/pdiddy/drivematch/pkg/types"
)

var scoringCfg = types.DefaultEngineConfig().Scoring

func uniformWeights() types.WeightVector {
	var w types.WeightVector
	for _, d := range types.AllDimensions() {
		w.Set(d, 0.125)
	}
	return w
}

func testCatalog() []types.Vehicle {
	return []types.Vehicle{
		{
			ID: "thrifty-sedan", Name: "Thrifty", Price: 24000,
			MPGCombined: 40, FuelType: types.FuelGasoline, BodyStyle: "sedan",
			Seats: 5, Drivetrain: types.DrivetrainFWD, Horsepower: 150,
			CrashTestScore: 0.8, DriverAssist: []string{"backup_camera"},
		},
		{
			ID: "family-hauler", Name: "Hauler", Price: 38000,
			MPGCombined: 24, FuelType: types.FuelGasoline, BodyStyle: "suv",
			Seats: 7, CargoVolume: 40, Drivetrain: types.DrivetrainAWD,
			Horsepower: 280, TowingCapacity: 5000, CrashTestScore: 0.95,
			DriverAssist: []string{
				"adaptive_cruise", "lane_assist", "blind_spot_monitor",
				"backup_camera", "apple_carplay",
			},
		},
		{
			ID: "eco-hybrid", Name: "Eco", Price: 29000,
			MPGCombined: 52, FuelType: types.FuelHybrid, BodyStyle: "sedan",
			Seats: 5, Drivetrain: types.DrivetrainFWD, Horsepower: 180,
			CrashTestScore: 0.9, DriverAssist: []string{"adaptive_cruise", "lane_assist"},
		},
	}
}

func scoreOne(t *testing.T, p types.UserProfile, id string) types.ScoredVehicle {
	t.Helper()
	catalog := testCatalog()
	s := NewScorer(catalog, p, uniformWeights(), scoringCfg)
	v, ok := find(catalog, id)
	if !ok {
		t.Fatalf("no test vehicle %q", id)
	}
	return s.Score(v)
}

func find(catalog []types.Vehicle, id string) (types.Vehicle, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return types.Vehicle{}, false
}

func TestBudgetSubscore(t *testing.T) {
	p := types.UserProfile{BudgetMax: 30000}
	catalog := testCatalog()
	s := NewScorer(catalog, p, uniformWeights(), scoringCfg)

	tests := []struct {
		price float64
		want  float64
	}{
		{24000, 1.0}, // under budget
		{30000, 1.0}, // at budget
		{33000, 0.5}, // halfway into the 20% overage
		{36000, 0.0}, // at the overage ceiling
		{50000, 0.0}, // beyond, clamped
	}
	for _, tt := range tests {
		sv := s.Score(types.Vehicle{ID: "x", Price: tt.price, Seats: 5})
		if got := sv.Subscores.Get(types.DimBudget); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("price %v: budget score = %v, want %v", tt.price, got, tt.want)
		}
	}

	// No stated budget is neutral.
	s = NewScorer(catalog, types.UserProfile{}, uniformWeights(), scoringCfg)
	sv := s.Score(catalog[0])
	if got := sv.Subscores.Get(types.DimBudget); got != 0.5 {
		t.Errorf("unset budget score = %v, want 0.5", got)
	}
}

func TestFuelSubscoreNormalizedAndBoosted(t *testing.T) {
	p := types.UserProfile{Priorities: []types.Dimension{types.DimFuelEfficiency}}

	best := scoreOne(t, p, "eco-hybrid")
	worst := scoreOne(t, p, "family-hauler")

	if got := best.Subscores.Get(types.DimFuelEfficiency); got != 1.0 {
		t.Errorf("best MPG plus hybrid boost = %v, want clamped 1.0", got)
	}
	if got := worst.Subscores.Get(types.DimFuelEfficiency); got != 0.0 {
		t.Errorf("worst MPG = %v, want 0.0", got)
	}
	if !contains(best.Reasons, "eco_friendly") {
		t.Errorf("hybrid should earn eco_friendly, got %v", best.Reasons)
	}
}

func TestSeatingSubscore(t *testing.T) {
	p := types.UserProfile{Passengers: 7}

	full := scoreOne(t, p, "family-hauler")
	if got := full.Subscores.Get(types.DimSeating); got != 1.0 {
		t.Errorf("7 seats for 7 passengers = %v, want 1.0", got)
	}

	short := scoreOne(t, p, "thrifty-sedan")
	want := 5.0 / 7.0
	if got := short.Subscores.Get(types.DimSeating); math.Abs(got-want) > 1e-9 {
		t.Errorf("5 seats for 7 passengers = %v, want %v", got, want)
	}

	// The shortfall penalty grows strictly with the passenger count.
	p.Passengers = 8
	shorter := scoreOne(t, p, "thrifty-sedan")
	if shorter.Subscores.Get(types.DimSeating) >= short.Subscores.Get(types.DimSeating) {
		t.Error("seating score must strictly decrease as the shortfall grows")
	}
}

func TestDrivetrainSubscore(t *testing.T) {
	snow := types.UserProfile{SpecificNeeds: []string{"snow"}}

	awd := scoreOne(t, snow, "family-hauler")
	if got := awd.Subscores.Get(types.DimDrivetrain); got != 1.0 {
		t.Errorf("AWD with snow need = %v, want 1.0", got)
	}
	fwd := scoreOne(t, snow, "thrifty-sedan")
	if got := fwd.Subscores.Get(types.DimDrivetrain); got != 0.3 {
		t.Errorf("FWD with snow need = %v, want 0.3", got)
	}

	city := types.UserProfile{Terrain: types.TerrainCity}
	sv := scoreOne(t, city, "thrifty-sedan")
	if got := sv.Subscores.Get(types.DimDrivetrain); got != 0.7 {
		t.Errorf("FWD in the city = %v, want 0.7", got)
	}

	sv = scoreOne(t, types.UserProfile{}, "thrifty-sedan")
	if got := sv.Subscores.Get(types.DimDrivetrain); got != 0.5 {
		t.Errorf("no terrain signal = %v, want neutral 0.5", got)
	}
}

func TestPerformanceNeutralWithoutSignal(t *testing.T) {
	sv := scoreOne(t, types.UserProfile{}, "family-hauler")
	if got := sv.Subscores.Get(types.DimPerformance); got != 0.5 {
		t.Errorf("performance without priority or towing = %v, want 0.5", got)
	}

	p := types.UserProfile{Priorities: []types.Dimension{types.DimPerformance}}
	strong := scoreOne(t, p, "family-hauler")
	weak := scoreOne(t, p, "thrifty-sedan")
	if strong.Subscores.Get(types.DimPerformance) <= weak.Subscores.Get(types.DimPerformance) {
		t.Error("higher horsepower must outscore lower when performance matters")
	}

	tow := types.UserProfile{SpecificNeeds: []string{"towing"}}
	sv = scoreOne(t, tow, "family-hauler")
	if !contains(sv.Reasons, "strong_towing") {
		t.Errorf("towing leader should earn strong_towing, got %v", sv.Reasons)
	}
}

func TestFeaturesSubscore(t *testing.T) {
	p := types.UserProfile{FeaturesWanted: []string{"awd", "adaptive_cruise"}}

	both := scoreOne(t, p, "family-hauler")
	if got := both.Subscores.Get(types.DimFeatures); got != 1.0 {
		t.Errorf("both features present = %v, want 1.0", got)
	}

	one := scoreOne(t, p, "eco-hybrid")
	if got := one.Subscores.Get(types.DimFeatures); got != 0.5 {
		t.Errorf("one of two features = %v, want 0.5", got)
	}

	// Derived tags: a hybrid powertrain satisfies a "hybrid" request even
	// though it is not in the driver-assist list.
	hy := types.UserProfile{FeaturesWanted: []string{"hybrid"}}
	sv := scoreOne(t, hy, "eco-hybrid")
	if got := sv.Subscores.Get(types.DimFeatures); got != 1.0 {
		t.Errorf("hybrid request on a hybrid = %v, want 1.0", got)
	}

	sv = scoreOne(t, types.UserProfile{}, "eco-hybrid")
	if got := sv.Subscores.Get(types.DimFeatures); got != 0.5 {
		t.Errorf("nothing wanted = %v, want neutral 0.5", got)
	}
}

func TestSafetySubscore(t *testing.T) {
	safe := scoreOne(t, types.UserProfile{}, "family-hauler")
	plain := scoreOne(t, types.UserProfile{}, "thrifty-sedan")
	if safe.Subscores.Get(types.DimSafety) <= plain.Subscores.Get(types.DimSafety) {
		t.Error("better crash rating and more assists must score higher")
	}
	if !contains(safe.Reasons, "top_safety") {
		t.Errorf("0.95 crash rating should earn top_safety, got %v", safe.Reasons)
	}
	if !contains(safe.Reasons, "advanced_safety_features") {
		t.Errorf("five assists should earn advanced_safety_features, got %v", safe.Reasons)
	}
}

func TestVehicleTypeFamily(t *testing.T) {
	fam := types.UserProfile{SpecificNeeds: []string{"family"}}
	suv := scoreOne(t, fam, "family-hauler")
	if got := suv.Subscores.Get(types.DimVehicleType); got != 1.0 {
		t.Errorf("SUV for a family = %v, want 1.0", got)
	}
	sedan := scoreOne(t, fam, "thrifty-sedan")
	if got := sedan.Subscores.Get(types.DimVehicleType); got != 0.7 {
		t.Errorf("sedan for a family = %v, want 0.7", got)
	}
}

func TestTotalIsWeightedAndBounded(t *testing.T) {
	p := types.UserProfile{
		BudgetMax:      30000,
		Passengers:     5,
		Priorities:     []types.Dimension{types.DimFuelEfficiency},
		TopPriority:    types.DimFuelEfficiency,
		FeaturesWanted: []string{"adaptive_cruise"},
	}
	catalog := testCatalog()
	s := NewScorer(catalog, p, uniformWeights(), scoringCfg)

	for _, sv := range s.ScoreAll(catalog) {
		if sv.PreferenceScore < 0 || sv.PreferenceScore > 1 {
			t.Errorf("%s: preference score %v out of [0,1]", sv.Vehicle.ID, sv.PreferenceScore)
		}
		manual := 0.0
		for _, d := range types.AllDimensions() {
			manual += 0.125 * sv.Subscores.Get(d)
		}
		if math.Abs(manual-sv.PreferenceScore) > 1e-9 {
			t.Errorf("%s: total %v does not match weighted sum %v",
				sv.Vehicle.ID, sv.PreferenceScore, manual)
		}
	}
}

func TestDegenerateCatalogIsNeutral(t *testing.T) {
	solo := []types.Vehicle{{ID: "only", Price: 30000, MPGCombined: 30, Seats: 5, Horsepower: 200}}
	p := types.UserProfile{Priorities: []types.Dimension{types.DimPerformance}}
	s := NewScorer(solo, p, uniformWeights(), scoringCfg)

	sv := s.Score(solo[0])
	if got := sv.Subscores.Get(types.DimPerformance); got != 0.5 {
		t.Errorf("single-vehicle range should be neutral, got %v", got)
	}
	if got := sv.Subscores.Get(types.DimFuelEfficiency); got != 0.5 {
		t.Errorf("single-vehicle MPG range should be neutral, got %v", got)
	}
}

func contains(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
