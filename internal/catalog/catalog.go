// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the vehicle catalog snapshot from disk. The
// catalog is externally owned reference data; this package only reads,
// validates, and filters it, never writes it.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/drivematch/pkg/types"
)

// File is the on-disk catalog document.
type File struct {
	Vehicles []types.Vehicle `json:"vehicles" yaml:"vehicles"`
}

// Load reads a catalog file, JSON or YAML by extension, validates it
// against the catalog schema, and returns the vehicle list. Duplicate
// IDs are rejected because the ranking tiebreaker depends on IDs being
// unique.
func Load(path string) ([]types.Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing catalog YAML: %w", err)
		}
	case ".json":
		if err := validateJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	if len(f.Vehicles) == 0 {
		return nil, fmt.Errorf("catalog %s contains no vehicles", path)
	}
	if err := checkIDs(f.Vehicles); err != nil {
		return nil, err
	}
	return f.Vehicles, nil
}

// validateJSON checks the raw document against the catalog schema so a
// malformed record fails loudly with a field-level message instead of
// silently unmarshaling to zero values.
func validateJSON(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func checkIDs(vehicles []types.Vehicle) error {
	seen := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		if v.ID == "" {
			return fmt.Errorf("vehicle %q has no id", v.Name)
		}
		if seen[v.ID] {
			return fmt.Errorf("duplicate vehicle id %q", v.ID)
		}
		seen[v.ID] = true
	}
	return nil
}

// ByID returns the vehicle with the given ID, or false when absent.
func ByID(vehicles []types.Vehicle, id string) (types.Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return types.Vehicle{}, false
}

// Filter narrows a catalog by simple attribute criteria. Zero-valued
// fields do not constrain.
type Filter struct {
	BodyStyle string
	MaxPrice  float64
	MinMPG    float64
	MinSeats  int
}

// Apply returns the vehicles matching every set criterion, in catalog
// order.
func (f Filter) Apply(vehicles []types.Vehicle) []types.Vehicle {
	out := make([]types.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if f.BodyStyle != "" && !strings.EqualFold(v.BodyStyle, f.BodyStyle) {
			continue
		}
		if f.MaxPrice > 0 && v.Price > f.MaxPrice {
			continue
		}
		if f.MinMPG > 0 && v.CombinedMPG() < f.MinMPG {
			continue
		}
		if f.MinSeats > 0 && v.Seats < f.MinSeats {
			continue
		}
		out = append(out, v)
	}
	return out
}

// DefaultGasPrice is the per-gallon price assumed when none is supplied.
const DefaultGasPrice = 3.50

// TrueCost estimates commute-driven ownership cost for one vehicle:
// annual fuel from a round-trip commute over 250 working days, plus the
// five-year total against the purchase price.
type TrueCost struct {
	AnnualMiles      float64 `json:"annual_miles" yaml:"annual_miles"`
	AnnualFuelCost   float64 `json:"annual_fuel_cost" yaml:"annual_fuel_cost"`
	FiveYearFuelCost float64 `json:"five_year_fuel_cost" yaml:"five_year_fuel_cost"`
	FiveYearTotal    float64 `json:"five_year_total" yaml:"five_year_total"`
}

// EstimateTrueCost computes the commute-based cost for a vehicle. A
// vehicle with no fuel economy data (or an electric with no MPG rating)
// reports zero fuel cost rather than failing.
func EstimateTrueCost(v types.Vehicle, commuteMiles, gasPrice float64) TrueCost {
	if gasPrice <= 0 {
		gasPrice = DefaultGasPrice
	}

	tc := TrueCost{AnnualMiles: commuteMiles * 2 * 250}
	if mpg := v.CombinedMPG(); mpg > 0 {
		tc.AnnualFuelCost = tc.AnnualMiles / mpg * gasPrice
	}
	tc.FiveYearFuelCost = tc.AnnualFuelCost * 5
	tc.FiveYearTotal = v.Price + tc.FiveYearFuelCost
	return tc
}
