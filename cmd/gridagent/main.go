// gridagent is a terminal maze arcade game: steer the agent, eat pellets,
// and capture every roaming anomaly to advance a level.
//
// Usage:
//
//	gridagent play [game]       - Play (gridagent or gridagent_demo)
//	gridagent list              - List available games
//	gridagent simulate          - Run a headless session and print a summary
//	gridagent config            - Print the effective configuration
//	gridagent menu              - Pick a game interactively
//
// Global flags:
//
//	--fps <rate>          - Host frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--config <path>       - Custom gridagent.yaml
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log file for interactive play (default: none)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-agent/internal/games/gridagent"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridagent",
	Short: "Grid Agent - a maze arcade game for your terminal",
	Long: `Grid Agent is a maze arcade game played in the terminal.
Steer the agent through the maze, eat pellets, and capture every roaming
anomaly to advance to the next, faster level.

Available commands:
  play      - Play the game (or the self-playing demo)
  list      - Show all available games
  simulate  - Run a headless session and print a summary
  config    - Print the effective configuration
  menu      - Pick a game interactively

Examples:
  gridagent play
  gridagent play gridagent_demo
  gridagent simulate --duration 5m --autopilot
  gridagent config > ~/.gridagent/configs/gridagent.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gridagent.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gridagent.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive play (default: no logging)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
