package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sheacoding/jumprocket/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or reset configuration",
	Long: `Manage the config file.

Examples:
  jumprocket config show
  jumprocket config reset`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Write the default configuration to the config file",
	Args:  cobra.NoArgs,
	Run:   runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadSystem(logger)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# %s\n", flagConfigPath)
	fmt.Print(string(out))
}

func runConfigReset(_ *cobra.Command, _ []string) {
	if err := config.Save(config.Default(), flagConfigPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote defaults to %s\n", flagConfigPath)
}
