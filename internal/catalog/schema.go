// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// catalogSchema validates the JSON catalog document shape. YAML catalogs
// skip schema validation and rely on strict struct decoding plus the ID
// checks in Load.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["vehicles"],
  "properties": {
    "vehicles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "price", "fuel_type", "body_style", "seats", "drivetrain"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "year": {"type": "integer"},
          "price": {"type": "number", "minimum": 0},
          "mpg_city": {"type": "number", "minimum": 0},
          "mpg_hwy": {"type": "number", "minimum": 0},
          "mpg_combined": {"type": "number", "minimum": 0},
          "fuel_type": {
            "type": "string",
            "enum": ["gasoline", "diesel", "hybrid", "plug_in_hybrid", "electric"]
          },
          "body_style": {
            "type": "string",
            "enum": ["sedan", "hatchback", "suv", "minivan", "truck", "coupe"]
          },
          "seats": {"type": "integer", "minimum": 1},
          "cargo_volume": {"type": "number", "minimum": 0},
          "drivetrain": {"type": "string", "enum": ["FWD", "RWD", "AWD", "4WD"]},
          "horsepower": {"type": "number", "minimum": 0},
          "towing_capacity": {"type": "number", "minimum": 0},
          "crash_test_score": {"type": "number", "minimum": 0, "maximum": 1},
          "driver_assist": {"type": "array", "items": {"type": "string"}},
          "ground_clearance": {"type": "number", "minimum": 0},
          "offroad_capable": {"type": "boolean"},
          "annual_fuel_cost": {"type": "number", "minimum": 0},
          "annual_insurance": {"type": "number", "minimum": 0},
          "annual_maintenance": {"type": "number", "minimum": 0}
        }
      }
    }
  }
}`
