// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/drivematch/internal/extract"
	"github.com/pdiddy/drivematch/internal/weights"
	"github.com/pdiddy/drivematch/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Show the profiles parsed from a conversation transcript",
	Long: `Extract parses the conversation into the preference and financial
profiles the engine would score with, plus the derived weight vector and
the missing-information flags. Useful for checking what the pattern
matcher picked up before running a full recommendation.`,
	RunE: runExtract,
}

// extractOutput is the printable extraction view.
type extractOutput struct {
	Profile   types.UserProfile      `json:"profile" yaml:"profile"`
	Financial types.FinancialProfile `json:"financial" yaml:"financial"`
	Weights   types.WeightVector     `json:"weights" yaml:"weights"`
	Missing   types.MissingInfo      `json:"missing_info" yaml:"missing_info"`
}

func runExtract(cmd *cobra.Command, args []string) error {
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

	up, fp := extract.Extract(messages)
	out := extractOutput{
		Profile:   up,
		Financial: fp,
		Weights:   weights.Calculate(up, cfg.Weights),
		Missing:   extract.MissingInformation(up, fp, types.LastUserMessage(messages)),
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshaling profiles: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func init() {
	extractCmd.Flags().String("conversation", "", "conversation transcript file (JSON, YAML, or plain text)")
	extractCmd.Flags().StringArray("message", nil, "inline user message (repeatable, replaces --conversation)")
	extractCmd.Flags().Bool("json", false, "output as JSON instead of YAML")

	rootCmd.AddCommand(extractCmd)
}
