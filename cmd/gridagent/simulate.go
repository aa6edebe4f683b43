package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-agent/internal/config"
	"github.com/vovakirdan/grid-agent/internal/games/gridagent"
	"github.com/vovakirdan/grid-agent/internal/logging"
)

var (
	flagDuration  time.Duration
	flagFrame     time.Duration
	flagAutopilot bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session",
	Long: `Drives a session with fixed frame deltas and no terminal UI,
logging session events to stderr and printing a summary.

Examples:
  gridagent simulate --autopilot
  gridagent simulate --duration 10m --frame 33ms --seed 7 --autopilot
  gridagent simulate --log-level warn --autopilot`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 2*time.Minute, "Virtual time to simulate")
	simulateCmd.Flags().DurationVar(&flagFrame, "frame", 16*time.Millisecond, "Fixed frame delta")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer the agent toward the nearest anomaly")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := config.LoadGridAgent(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulating", "duration", flagDuration, "frame", flagFrame, "seed", seed, "autopilot", flagAutopilot)

	sum, err := gridagent.Simulate(cfg, gridagent.SimOptions{
		Duration:  flagDuration,
		Frame:     flagFrame,
		Seed:      seed,
		Autopilot: flagAutopilot,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}
