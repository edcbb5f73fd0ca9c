package catalog

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/drivematch/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validJSON = `{
  "vehicles": [
    {
      "id": "camry-2024", "name": "Camry", "year": 2024, "price": 28000,
      "mpg_combined": 32, "fuel_type": "gasoline", "body_style": "sedan",
      "seats": 5, "drivetrain": "FWD"
    },
    {
      "id": "pilot-2024", "name": "Pilot", "year": 2024, "price": 41000,
      "mpg_city": 19, "mpg_hwy": 27, "fuel_type": "gasoline",
      "body_style": "suv", "seats": 8, "drivetrain": "AWD"
    }
  ]
}`

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", validJSON)

	vehicles, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(vehicles) != 2 {
		t.Fatalf("got %d vehicles, want 2", len(vehicles))
	}
	if vehicles[0].ID != "camry-2024" || vehicles[1].Seats != 8 {
		t.Errorf("unexpected decode: %+v", vehicles)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
vehicles:
  - id: camry-2024
    name: Camry
    price: 28000
    fuel_type: gasoline
    body_style: sedan
    seats: 5
    drivetrain: FWD
`)

	vehicles, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Price != 28000 {
		t.Errorf("unexpected decode: %+v", vehicles)
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	// fuel_type outside the enum.
	path := writeFile(t, "catalog.json", `{
  "vehicles": [
    {"id": "x", "name": "X", "price": 1000, "fuel_type": "steam",
     "body_style": "sedan", "seats": 4, "drivetrain": "FWD"}
  ]
}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "invalid catalog") {
		t.Errorf("error should name the validation failure, got %v", err)
	}
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
  "vehicles": [
    {"id": "x", "name": "X", "fuel_type": "gasoline",
     "body_style": "sedan", "seats": 4, "drivetrain": "FWD"}
  ]
}`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing price")
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
  "vehicles": [
    {"id": "dup", "name": "A", "price": 1000, "fuel_type": "gasoline",
     "body_style": "sedan", "seats": 4, "drivetrain": "FWD"},
    {"id": "dup", "name": "B", "price": 2000, "fuel_type": "gasoline",
     "body_style": "sedan", "seats": 4, "drivetrain": "FWD"}
  ]
}`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate-id error, got %v", err)
	}
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"vehicles": []}`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "no vehicles") {
		t.Fatalf("expected empty-catalog error, got %v", err)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "catalog.toml", "vehicles = []")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFilterApply(t *testing.T) {
	vehicles := []types.Vehicle{
		{ID: "sedan-a", BodyStyle: "sedan", Price: 25000, MPGCombined: 35, Seats: 5},
		{ID: "suv-a", BodyStyle: "suv", Price: 42000, MPGCombined: 24, Seats: 7},
		{ID: "suv-b", BodyStyle: "suv", Price: 33000, MPGCombined: 28, Seats: 7},
	}

	got := Filter{BodyStyle: "suv", MaxPrice: 35000}.Apply(vehicles)
	if len(got) != 1 || got[0].ID != "suv-b" {
		t.Errorf("filtered = %+v, want only suv-b", got)
	}

	got = Filter{MinSeats: 6, MinMPG: 25}.Apply(vehicles)
	if len(got) != 1 || got[0].ID != "suv-b" {
		t.Errorf("filtered = %+v, want only suv-b", got)
	}

	// The zero filter keeps everything, in catalog order.
	got = Filter{}.Apply(vehicles)
	if len(got) != 3 {
		t.Errorf("zero filter dropped vehicles: %+v", got)
	}
}

func TestByID(t *testing.T) {
	vehicles := []types.Vehicle{{ID: "a"}, {ID: "b"}}
	if v, ok := ByID(vehicles, "b"); !ok || v.ID != "b" {
		t.Errorf("ByID(b) = %+v, %v", v, ok)
	}
	if _, ok := ByID(vehicles, "missing"); ok {
		t.Error("ByID should miss on unknown id")
	}
}

func TestEstimateTrueCost(t *testing.T) {
	v := types.Vehicle{ID: "sedan", Price: 28000, MPGCombined: 25}

	tc := EstimateTrueCost(v, 20, 3.50)
	if tc.AnnualMiles != 10000 {
		t.Errorf("AnnualMiles = %v, want 10000 (20mi round trip, 250 days)", tc.AnnualMiles)
	}
	if math.Abs(tc.AnnualFuelCost-1400) > 1e-9 {
		t.Errorf("AnnualFuelCost = %v, want 1400", tc.AnnualFuelCost)
	}
	if math.Abs(tc.FiveYearTotal-35000) > 1e-9 {
		t.Errorf("FiveYearTotal = %v, want 35000", tc.FiveYearTotal)
	}

	// No fuel economy data yields zero fuel cost, not a division by zero.
	tc = EstimateTrueCost(types.Vehicle{ID: "ev", Price: 40000}, 20, 0)
	if tc.AnnualFuelCost != 0 || tc.FiveYearTotal != 40000 {
		t.Errorf("no-MPG cost = %+v, want zero fuel", tc)
	}
}
