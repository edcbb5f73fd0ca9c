// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FuelType identifies the powertrain energy source.
type FuelType string

const (
	FuelGasoline     FuelType = "gasoline"
	FuelDiesel       FuelType = "diesel"
	FuelHybrid       FuelType = "hybrid"
	FuelPlugInHybrid FuelType = "plug_in_hybrid"
	FuelElectric     FuelType = "electric"
)

// IsElectrified reports whether the fuel type earns the efficiency boost.
func (f FuelType) IsElectrified() bool {
	return f == FuelHybrid || f == FuelPlugInHybrid || f == FuelElectric
}

// Drivetrain identifies which wheels are driven.
type Drivetrain string

const (
	DrivetrainFWD Drivetrain = "FWD"
	DrivetrainRWD Drivetrain = "RWD"
	DrivetrainAWD Drivetrain = "AWD"
	Drivetrain4WD Drivetrain = "4WD"
)

// IsAllWheel reports whether all four wheels are driven.
func (d Drivetrain) IsAllWheel() bool {
	return d == DrivetrainAWD || d == Drivetrain4WD
}

// Vehicle is one catalog record. The catalog is externally owned and
// treated as an immutable snapshot for the duration of a scoring pass;
// the engine never mutates it.
type Vehicle struct {
	// ID uniquely identifies the vehicle (e.g. "camry-2024").
	ID string `json:"id" yaml:"id"`

	// Name is the display name (e.g. "Camry"); Year the model year.
	Name string `json:"name" yaml:"name"`
	Year int    `json:"year,omitempty" yaml:"year,omitempty"`

	// Price is the base MSRP in dollars.
	Price float64 `json:"price" yaml:"price"`

	// Fuel economy in miles per gallon. MPGCombined may be zero, in which
	// case scoring falls back to the city/highway average.
	MPGCity     float64 `json:"mpg_city,omitempty" yaml:"mpg_city,omitempty"`
	MPGHighway  float64 `json:"mpg_hwy,omitempty" yaml:"mpg_hwy,omitempty"`
	MPGCombined float64 `json:"mpg_combined,omitempty" yaml:"mpg_combined,omitempty"`

	// FuelType is the powertrain energy source.
	FuelType FuelType `json:"fuel_type" yaml:"fuel_type"`

	// BodyStyle is the vehicle category: sedan, hatchback, suv, minivan,
	// truck, coupe.
	BodyStyle string `json:"body_style" yaml:"body_style"`

	// Seats is the seating capacity; CargoVolume the cargo space in cubic
	// feet.
	Seats       int     `json:"seats" yaml:"seats"`
	CargoVolume float64 `json:"cargo_volume,omitempty" yaml:"cargo_volume,omitempty"`

	// Drivetrain is which wheels are driven.
	Drivetrain Drivetrain `json:"drivetrain" yaml:"drivetrain"`

	// Horsepower and TowingCapacity (pounds) feed the performance score.
	Horsepower     float64 `json:"horsepower,omitempty" yaml:"horsepower,omitempty"`
	TowingCapacity float64 `json:"towing_capacity,omitempty" yaml:"towing_capacity,omitempty"`

	// CrashTestScore is a normalized 0-1 crash rating.
	CrashTestScore float64 `json:"crash_test_score,omitempty" yaml:"crash_test_score,omitempty"`

	// DriverAssist lists driver-assistance feature tags (e.g.
	// "adaptive_cruise", "blind_spot_monitor", "apple_carplay").
	DriverAssist []string `json:"driver_assist,omitempty" yaml:"driver_assist,omitempty"`

	// GroundClearance in inches and the explicit offroad capability flag.
	GroundClearance float64 `json:"ground_clearance,omitempty" yaml:"ground_clearance,omitempty"`
	OffroadCapable  bool    `json:"offroad_capable,omitempty" yaml:"offroad_capable,omitempty"`

	// Annual operating costs in dollars, used for the cost of ownership.
	AnnualFuelCost    float64 `json:"annual_fuel_cost,omitempty" yaml:"annual_fuel_cost,omitempty"`
	AnnualInsurance   float64 `json:"annual_insurance,omitempty" yaml:"annual_insurance,omitempty"`
	AnnualMaintenance float64 `json:"annual_maintenance,omitempty" yaml:"annual_maintenance,omitempty"`
}

// CombinedMPG returns the combined fuel economy, averaging city and highway
// figures when no combined rating is present. Returns 0 when no fuel
// economy data exists at all (e.g. incomplete records).
func (v Vehicle) CombinedMPG() float64 {
	if v.MPGCombined > 0 {
		return v.MPGCombined
	}
	if v.MPGCity > 0 || v.MPGHighway > 0 {
		return (v.MPGCity + v.MPGHighway) / 2
	}
	return 0
}
