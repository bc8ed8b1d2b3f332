// jumprocket is a jump-powered rocket fitness game for the terminal.
//
// Jumps fuel the rocket. Enough fuel launches it; the flight height and
// score come from how hard you worked. Sessions are saved so streaks and
// records build up over time.
//
// Usage:
//
//	jumprocket play             - Play a session
//	jumprocket stats            - Show daily and historical stats
//	jumprocket serve            - Start SSH server for remote play
//	jumprocket config           - Show or reset configuration
//
// Global flags:
//
//	--db <path>      - Session database path (default: ~/.jumprocket/sessions.db)
//	--config <path>  - Config file path (default: ~/.jumprocket/config.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sheacoding/jumprocket/internal/config"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumprocket",
	Short: "Jump Rocket - jump to fuel a rocket in your terminal",
	Long: `Jump Rocket is a terminal fitness game. Every jump adds fuel;
a full tank (or a hard-earned partial one) launches the rocket, and the
flight height and score reflect the workout behind it.

Available commands:
  play     - Play a session
  stats    - Daily and historical workout stats
  serve    - Start SSH server for remote play
  config   - Show or reset configuration

Examples:
  jumprocket play
  jumprocket play --difficulty hard
  jumprocket stats
  jumprocket serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumprocket/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", config.DefaultPath, "Path to config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSystem loads the config file, falling back to defaults on any
// problem. The warning goes to stderr so the TUI stays clean.
func loadSystem(logger *log.Logger) config.System {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		logger.Warn("using default config", "path", flagConfigPath, "error", err)
	}
	return cfg
}

// newLogger builds the CLI logger.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "jumprocket",
	})
}
