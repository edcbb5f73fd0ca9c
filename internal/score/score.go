// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score rates every catalog vehicle against a user profile along
// the eight fixed dimensions. Each sub-score lives in [0,1] and the
// weighted total therefore does too. Scoring is a pure function of
// (catalog, profile, weights, config): identical inputs reproduce
// identical scores.
package score

import (
	"github.com/pdiddy/drivematch/pkg/types"
)

// CatalogStats holds the observed ranges a scoring pass normalizes
// against. They are computed once per pass from the catalog snapshot.
type CatalogStats struct {
	MinMPG, MaxMPG       float64
	MinHP, MaxHP         float64
	MinTowing, MaxTowing float64
}

// ComputeStats scans the catalog for the observed metric ranges.
func ComputeStats(catalog []types.Vehicle) CatalogStats {
	var s CatalogStats
	first := true
	for _, v := range catalog {
		mpg := v.CombinedMPG()
		if first {
			s.MinMPG, s.MaxMPG = mpg, mpg
			s.MinHP, s.MaxHP = v.Horsepower, v.Horsepower
			s.MinTowing, s.MaxTowing = v.TowingCapacity, v.TowingCapacity
			first = false
			continue
		}
		s.MinMPG = min(s.MinMPG, mpg)
		s.MaxMPG = max(s.MaxMPG, mpg)
		s.MinHP = min(s.MinHP, v.Horsepower)
		s.MaxHP = max(s.MaxHP, v.Horsepower)
		s.MinTowing = min(s.MinTowing, v.TowingCapacity)
		s.MaxTowing = max(s.MaxTowing, v.TowingCapacity)
	}
	return s
}

// normalize maps v into [0,1] relative to the observed [lo,hi] range.
// A degenerate range (all vehicles identical, or an empty catalog) yields
// the neutral 0.5 rather than dividing by zero.
func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	n := (v - lo) / (hi - lo)
	return clamp01(n)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Scorer rates vehicles against one profile and weight vector.
type Scorer struct {
	profile types.UserProfile
	weights types.WeightVector
	cfg     types.ScoringConfig
	stats   CatalogStats
}

// NewScorer prepares a scoring pass over the given catalog snapshot.
func NewScorer(catalog []types.Vehicle, profile types.UserProfile, weights types.WeightVector, cfg types.ScoringConfig) *Scorer {
	return &Scorer{
		profile: profile,
		weights: weights,
		cfg:     cfg,
		stats:   ComputeStats(catalog),
	}
}

// ScoreAll scores every vehicle in catalog order.
func (s *Scorer) ScoreAll(catalog []types.Vehicle) []types.ScoredVehicle {
	out := make([]types.ScoredVehicle, 0, len(catalog))
	for _, v := range catalog {
		out = append(out, s.Score(v))
	}
	return out
}

// Score computes the eight sub-scores, reason tags, and weighted total
// for one vehicle.
func (s *Scorer) Score(v types.Vehicle) types.ScoredVehicle {
	var sub types.Subscores
	var reasons []string

	add := func(d types.Dimension, score float64, tags []string) {
		sub.Set(d, clamp01(score))
		reasons = append(reasons, tags...)
	}

	add(s.scoreBudget(v))
	add(s.scoreFuelEfficiency(v))
	add(s.scoreSeating(v))
	add(s.scoreDrivetrain(v))
	add(s.scoreVehicleType(v))
	add(s.scorePerformance(v))
	add(s.scoreFeatures(v))
	add(s.scoreSafety(v))

	total := 0.0
	for _, d := range types.AllDimensions() {
		total += s.weights.Get(d) * sub.Get(d)
	}

	return types.ScoredVehicle{
		Vehicle:         v,
		Subscores:       sub,
		PreferenceScore: clamp01(total),
		Reasons:         reasons,
	}
}

// scoreBudget: 1.0 at or under budget, linear decay to 0 once the price
// exceeds budget by the configured overage fraction, neutral 0.5 when no
// budget was stated.
func (s *Scorer) scoreBudget(v types.Vehicle) (types.Dimension, float64, []string) {
	budget := s.profile.BudgetMax
	if budget <= 0 {
		return types.DimBudget, 0.5, nil
	}
	if v.Price <= budget {
		tags := []string{"within_budget"}
		if v.Price <= budget*0.8 {
			tags = append(tags, "under_budget")
		}
		return types.DimBudget, 1.0, tags
	}
	ceiling := budget * s.cfg.BudgetOverage
	score := 1.0 - (v.Price-budget)/ceiling
	return types.DimBudget, score, nil
}

// scoreFuelEfficiency: monotonic in combined MPG relative to the observed
// catalog range, with a boost for electrified powertrains. A long commute
// amplifies this dimension's weight upstream, never the sub-score here.
func (s *Scorer) scoreFuelEfficiency(v types.Vehicle) (types.Dimension, float64, []string) {
	var tags []string
	score := normalize(v.CombinedMPG(), s.stats.MinMPG, s.stats.MaxMPG)
	if v.FuelType.IsElectrified() {
		score += s.cfg.ElectrifiedBoost
		tags = append(tags, "eco_friendly")
	}
	if score >= 0.8 {
		tags = append(tags, "excellent_mpg")
	}
	return types.DimFuelEfficiency, score, tags
}

// scoreSeating: 1.0 when the vehicle seats everyone, decaying with the
// shortfall (seats/passengers, strictly decreasing as the passenger count
// grows). A large cargo hold earns a bonus when a space need is declared.
func (s *Scorer) scoreSeating(v types.Vehicle) (types.Dimension, float64, []string) {
	need := s.profile.Passengers
	if need <= 0 {
		return types.DimSeating, 0.5, nil
	}

	var tags []string
	var score float64
	if v.Seats >= need {
		score = 1.0
		tags = append(tags, "enough_seats")
		if v.Seats >= need+2 {
			tags = append(tags, "extra_space")
		}
	} else {
		score = float64(v.Seats) / float64(need)
	}

	if s.profile.HasNeed("space") && v.CargoVolume >= s.cfg.CargoBonusVolume {
		score += 0.1
		tags = append(tags, "big_cargo")
	}
	return types.DimSeating, score, tags
}

// scoreDrivetrain: all-wheel drive is favored for offroad or snow
// context (or an explicit AWD request); city/highway terrain mildly
// favors two-wheel drive; no terrain signal is neutral.
func (s *Scorer) scoreDrivetrain(v types.Vehicle) (types.Dimension, float64, []string) {
	wantsAWD := s.profile.Terrain == types.TerrainOffroad ||
		s.profile.HasNeed("snow") || s.profile.WantsFeature("awd")

	if wantsAWD {
		if v.Drivetrain.IsAllWheel() {
			return types.DimDrivetrain, 1.0, []string{"awd_match"}
		}
		return types.DimDrivetrain, 0.3, nil
	}
	if s.profile.Terrain == types.TerrainCity || s.profile.Terrain == types.TerrainHighway {
		if v.Drivetrain.IsAllWheel() {
			return types.DimDrivetrain, 0.5, nil
		}
		return types.DimDrivetrain, 0.7, nil
	}
	return types.DimDrivetrain, 0.5, nil
}

// scoreVehicleType: body style, ground clearance, and offroad capability
// against terrain and declared needs.
func (s *Scorer) scoreVehicleType(v types.Vehicle) (types.Dimension, float64, []string) {
	if s.profile.HasNeed("family") {
		switch {
		case v.BodyStyle == "suv" || v.BodyStyle == "minivan" || v.Seats >= 7:
			return types.DimVehicleType, 1.0, []string{"family_friendly"}
		case v.BodyStyle == "sedan":
			return types.DimVehicleType, 0.7, nil
		default:
			return types.DimVehicleType, 0.5, nil
		}
	}

	switch s.profile.Terrain {
	case types.TerrainOffroad:
		switch {
		case v.OffroadCapable || v.BodyStyle == "truck":
			return types.DimVehicleType, 1.0, []string{"offroad_capable"}
		case v.GroundClearance >= s.cfg.OffroadClearanceIn:
			return types.DimVehicleType, 0.8, []string{"good_clearance"}
		default:
			return types.DimVehicleType, 0.4, nil
		}
	case types.TerrainCity:
		if v.BodyStyle == "sedan" || v.BodyStyle == "hatchback" {
			return types.DimVehicleType, 0.9, []string{"city_friendly"}
		}
		return types.DimVehicleType, 0.6, nil
	case types.TerrainHighway:
		if v.BodyStyle == "sedan" || v.BodyStyle == "suv" {
			return types.DimVehicleType, 0.8, nil
		}
		return types.DimVehicleType, 0.6, nil
	}
	return types.DimVehicleType, 0.5, nil
}

// scorePerformance: horsepower and towing capacity normalized to the
// observed catalog range, but only material when the user stated a
// performance priority or a towing need; otherwise neutral.
func (s *Scorer) scorePerformance(v types.Vehicle) (types.Dimension, float64, []string) {
	caresHP := s.profile.HasPriority(types.DimPerformance)
	caresTow := s.profile.HasNeed("towing")
	if !caresHP && !caresTow {
		return types.DimPerformance, 0.5, nil
	}

	hp := normalize(v.Horsepower, s.stats.MinHP, s.stats.MaxHP)
	if !caresTow {
		var tags []string
		if hp >= 0.8 {
			tags = append(tags, "high_performance")
		}
		return types.DimPerformance, hp, tags
	}

	tow := normalize(v.TowingCapacity, s.stats.MinTowing, s.stats.MaxTowing)
	score := 0.5*hp + 0.5*tow
	var tags []string
	if tow >= 0.8 {
		tags = append(tags, "strong_towing")
	}
	return types.DimPerformance, score, tags
}

// scoreFeatures: fraction of wanted features present on the vehicle.
// Nothing wanted is neutral 0.5, never a zero-over-zero.
func (s *Scorer) scoreFeatures(v types.Vehicle) (types.Dimension, float64, []string) {
	wanted := s.profile.FeaturesWanted
	if len(wanted) == 0 {
		return types.DimFeatures, 0.5, nil
	}

	matches := 0
	for _, tag := range wanted {
		if vehicleHasFeature(v, tag) {
			matches++
		}
	}
	ratio := float64(matches) / float64(len(wanted))
	var tags []string
	if ratio >= 0.8 {
		tags = append(tags, "feature_rich")
	}
	return types.DimFeatures, ratio, tags
}

// vehicleHasFeature checks a canonical wanted-feature tag against the
// driver-assist list and attributes derivable from the record itself.
func vehicleHasFeature(v types.Vehicle, tag string) bool {
	switch tag {
	case "awd":
		return v.Drivetrain.IsAllWheel()
	case "hybrid":
		return v.FuelType == types.FuelHybrid || v.FuelType == types.FuelPlugInHybrid
	case "third_row":
		return v.Seats >= 7
	}
	for _, f := range v.DriverAssist {
		if f == tag {
			return true
		}
	}
	return false
}

// scoreSafety: crash-test rating combined with driver-assist coverage.
func (s *Scorer) scoreSafety(v types.Vehicle) (types.Dimension, float64, []string) {
	crash := clamp01(v.CrashTestScore)
	coverage := float64(len(v.DriverAssist)) / safetyAssistFull
	if coverage > 1 {
		coverage = 1
	}
	score := 0.7*crash + 0.3*coverage

	var tags []string
	if crash >= 0.9 {
		tags = append(tags, "top_safety")
	}
	if len(v.DriverAssist) >= 5 {
		tags = append(tags, "advanced_safety_features")
	}
	return types.DimSafety, score, tags
}

// safetyAssistFull is the driver-assist count treated as full coverage.
const safetyAssistFull = 6
