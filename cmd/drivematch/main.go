// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the drivematch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/drivematch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the drivematch CLI.
var rootCmd = &cobra.Command{
	Use:   "drivematch",
	Short: "Deterministic vehicle recommendation engine",
	Long: `drivematch turns a shopping conversation and a vehicle catalog into a
ranked, explainable shortlist. A conversation transcript is parsed into
preference and financial profiles, every catalog vehicle is scored along
eight fixed dimensions, affordability is evaluated from the financial
disclosure, and the results are ranked deterministically.

Each stage is reachable as a subcommand: recommend runs the full
pipeline, extract shows the parsed profiles, catalog inspects the
vehicle data, and history reviews stored runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./drivematch.yaml or ~/.config/drivematch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("drivematch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "drivematch"))
		}
	}

	viper.SetEnvPrefix("DRIVEMATCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig returns the defaults overlaid with any "engine" section
// from the config file, then validated. The section is round-tripped
// through YAML so the overlay honors the same tags as a standalone
// config document.
func engineConfig() (types.EngineConfig, error) {
	cfg := types.DefaultEngineConfig()

	if raw := viper.Get("engine"); raw != nil {
		data, err := yaml.Marshal(raw)
		if err != nil {
			return cfg, fmt.Errorf("reading engine config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing engine config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
