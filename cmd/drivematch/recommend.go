// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/drivematch/internal/catalog"
	"github.com/pdiddy/drivematch/internal/engine"
	"github.com/pdiddy/drivematch/internal/store"
	"github.com/pdiddy/drivematch/pkg/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog vehicles against a conversation transcript",
	Long: `Recommend runs the full pipeline: extract preference and financial
profiles from the conversation, derive priority weights, score every
catalog vehicle, evaluate affordability, and print the ranked shortlist.

The same transcript, catalog, and configuration always produce the same
ranking. With neither substantial preferences nor financial data the
shortlist is empty and the missing-information flags say what to ask.`,
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := engineConfig()
	if err != nil {
		return err
	}

	conversationPath, _ := cmd.Flags().GetString("conversation")
	inline, _ := cmd.Flags().GetStringArray("message")
	messages, err := loadConversation(conversationPath, inline)
	if err != nil {
		return err
	}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	vehicles, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	result, err := engine.Recommend(messages, vehicles, cfg)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		historyDir, _ := cmd.Flags().GetString("history-dir")
		st, err := store.NewStore(historyDir)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.Save(context.Background(), result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved run %s\n", id)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRecommendOutput(result, jsonOutput)
}

func formatRecommendOutput(result *engine.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	r := result.Ranking
	if r.Method == types.MethodNone {
		fmt.Println("Not enough information to recommend yet.")
		printMissing(r.Missing)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Method: %s  (%d results)\n\n", r.Method, r.ResultCount)
	fmt.Fprintf(os.Stdout, "%-4s  %-28s  %-10s  %-7s  %s\n",
		"Rank", "Vehicle", "Price", "Score", "Reasons")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for i, sv := range r.Vehicles {
		score := sv.CombinedScore
		name := fmt.Sprintf("%s (%d)", sv.Vehicle.Name, sv.Vehicle.Year)
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		reasons := strings.Join(sv.Reasons, ", ")
		if len(reasons) > 40 {
			reasons = reasons[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-28s  $%-9.0f  %-7.3f  %s\n",
			i+1, name, sv.Vehicle.Price, score, reasons)

		if sv.Affordability != nil {
			a := sv.Affordability
			line := fmt.Sprintf("      payment $%.0f/mo", a.MonthlyPayment)
			if a.DTIKnown {
				line += fmt.Sprintf(", DTI %.1f%%", a.DTIPercent)
			}
			if len(a.Warnings) > 0 {
				line += ", warnings: " + strings.Join(a.Warnings, ", ")
			}
			fmt.Fprintln(os.Stdout, line)
		}
	}

	if r.Missing.Any() {
		fmt.Println()
		printMissing(r.Missing)
	}
	return nil
}

func printMissing(m types.MissingInfo) {
	var asks []string
	if m.NeedsBudget {
		asks = append(asks, "budget")
	}
	if m.NeedsPassengers {
		asks = append(asks, "passenger count")
	}
	if m.NeedsIncomeClarification {
		asks = append(asks, "income period (monthly or annual?)")
	} else if m.NeedsIncome {
		asks = append(asks, "income")
	}
	if m.NeedsCredit {
		asks = append(asks, "credit")
	}
	if m.NeedsDownPayment {
		asks = append(asks, "down payment")
	}
	if m.NeedsPriorities {
		asks = append(asks, "priorities")
	}
	if m.NeedsFeatures {
		asks = append(asks, "wanted features")
	}
	if m.NeedsCommute {
		asks = append(asks, "commute or terrain")
	}
	if len(asks) > 0 {
		fmt.Println("Still missing:", strings.Join(asks, ", "))
	}
}

func init() {
	recommendCmd.Flags().String("conversation", "", "conversation transcript file (JSON, YAML, or plain text)")
	recommendCmd.Flags().StringArray("message", nil, "inline user message (repeatable, replaces --conversation)")
	recommendCmd.Flags().String("catalog", "catalog.json", "vehicle catalog file (JSON or YAML)")
	recommendCmd.Flags().Bool("json", false, "output the full result as JSON")
	recommendCmd.Flags().Bool("save", false, "persist the run to the history database")
	recommendCmd.Flags().String("history-dir", "history", "directory for the history database")

	rootCmd.AddCommand(recommendCmd)
}
