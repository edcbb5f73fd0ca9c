// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/drivematch/internal/catalog"
	"github.com/pdiddy/drivematch/internal/score"
	"github.com/pdiddy/drivematch/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the vehicle catalog (list, show, cost, stats, validate)",
	Long: `Catalog reads the vehicle data file the engine scores against. Use
subcommands to list vehicles with filters, show one record, estimate
commute-driven ownership cost, or validate a catalog file.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog vehicles, optionally filtered",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	vehicles, err := loadCatalogFlag(cmd)
	if err != nil {
		return err
	}

	bodyStyle, _ := cmd.Flags().GetString("body-style")
	maxPrice, _ := cmd.Flags().GetFloat64("max-price")
	minMPG, _ := cmd.Flags().GetFloat64("min-mpg")
	minSeats, _ := cmd.Flags().GetInt("min-seats")

	filtered := catalog.Filter{
		BodyStyle: bodyStyle,
		MaxPrice:  maxPrice,
		MinMPG:    minMPG,
		MinSeats:  minSeats,
	}.Apply(vehicles)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(filtered)
	}

	if len(filtered) == 0 {
		fmt.Println("No vehicles match.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-24s  %-10s  %-9s  %-5s  %-4s  %s\n",
		"ID", "Name", "Price", "Style", "Seats", "MPG", "Drive")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, v := range filtered {
		fmt.Fprintf(os.Stdout, "%-20s  %-24s  $%-9.0f  %-9s  %-5d  %-4.0f  %s\n",
			v.ID, v.Name, v.Price, v.BodyStyle, v.Seats, v.CombinedMPG(), v.Drivetrain)
	}
	fmt.Fprintf(os.Stdout, "\n%d vehicles\n", len(filtered))
	return nil
}

// --- show subcommand ---

var catalogShowCmd = &cobra.Command{
	Use:   "show [vehicle-id]",
	Short: "Show one catalog record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	vehicles, err := loadCatalogFlag(cmd)
	if err != nil {
		return err
	}

	v, ok := catalog.ByID(vehicles, args[0])
	if !ok {
		return fmt.Errorf("vehicle %q not found in catalog", args[0])
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling vehicle: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// --- cost subcommand ---

var catalogCostCmd = &cobra.Command{
	Use:   "cost [vehicle-id]",
	Short: "Estimate commute-driven ownership cost for one vehicle",
	Long: `Cost computes annual and five-year fuel spend from a round-trip
commute over 250 working days, plus the five-year total against the
purchase price.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogCost,
}

func runCatalogCost(cmd *cobra.Command, args []string) error {
	vehicles, err := loadCatalogFlag(cmd)
	if err != nil {
		return err
	}

	v, ok := catalog.ByID(vehicles, args[0])
	if !ok {
		return fmt.Errorf("vehicle %q not found in catalog", args[0])
	}

	commute, _ := cmd.Flags().GetFloat64("commute")
	gasPrice, _ := cmd.Flags().GetFloat64("gas-price")
	tc := catalog.EstimateTrueCost(v, commute, gasPrice)

	fmt.Fprintf(os.Stdout, "%s (%d)\n", v.Name, v.Year)
	fmt.Fprintf(os.Stdout, "  MSRP:                $%.0f\n", v.Price)
	fmt.Fprintf(os.Stdout, "  Annual miles:        %.0f\n", tc.AnnualMiles)
	fmt.Fprintf(os.Stdout, "  Annual fuel cost:    $%.2f\n", tc.AnnualFuelCost)
	fmt.Fprintf(os.Stdout, "  Five-year fuel cost: $%.2f\n", tc.FiveYearFuelCost)
	fmt.Fprintf(os.Stdout, "  Five-year total:     $%.2f\n", tc.FiveYearTotal)
	return nil
}

// --- stats subcommand ---

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the observed metric ranges scoring normalizes against",
	RunE:  runCatalogStats,
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	vehicles, err := loadCatalogFlag(cmd)
	if err != nil {
		return err
	}
	stats := score.ComputeStats(vehicles)
	minPrice, maxPrice := vehicles[0].Price, vehicles[0].Price
	for _, v := range vehicles[1:] {
		minPrice = min(minPrice, v.Price)
		maxPrice = max(maxPrice, v.Price)
	}

	fmt.Fprintf(os.Stdout, "Vehicles:     %d\n", len(vehicles))
	fmt.Fprintf(os.Stdout, "Price:        $%.0f - $%.0f\n", minPrice, maxPrice)
	fmt.Fprintf(os.Stdout, "Combined MPG: %.1f - %.1f\n", stats.MinMPG, stats.MaxMPG)
	fmt.Fprintf(os.Stdout, "Horsepower:   %.0f - %.0f\n", stats.MinHP, stats.MaxHP)
	fmt.Fprintf(os.Stdout, "Towing (lb):  %.0f - %.0f\n", stats.MinTowing, stats.MaxTowing)
	return nil
}

// --- validate subcommand ---

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog file against the schema",
	RunE:  runCatalogValidate,
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("catalog")
	vehicles, err := catalog.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d vehicles, valid\n", path, len(vehicles))
	return nil
}

// --- shared helpers ---

func loadCatalogFlag(cmd *cobra.Command) ([]types.Vehicle, error) {
	path, _ := cmd.Flags().GetString("catalog")
	return catalog.Load(path)
}

func init() {
	catalogCmd.PersistentFlags().String("catalog", "catalog.json", "vehicle catalog file (JSON or YAML)")

	catalogListCmd.Flags().String("body-style", "", "filter by body style (sedan, suv, truck, ...)")
	catalogListCmd.Flags().Float64("max-price", 0, "filter by maximum price")
	catalogListCmd.Flags().Float64("min-mpg", 0, "filter by minimum combined MPG")
	catalogListCmd.Flags().Int("min-seats", 0, "filter by minimum seating")
	catalogListCmd.Flags().Bool("json", false, "output as JSON")

	catalogCostCmd.Flags().Float64("commute", 0, "one-way commute miles")
	catalogCostCmd.Flags().Float64("gas-price", 0, "gas price per gallon (default 3.50)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogCostCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	catalogCmd.AddCommand(catalogValidateCmd)

	rootCmd.AddCommand(catalogCmd)
}
