package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-agent/internal/core"
	"github.com/vovakirdan/grid-agent/internal/games/gridagent"
	"github.com/vovakirdan/grid-agent/internal/logging"
	"github.com/vovakirdan/grid-agent/internal/platform/tui"
	"github.com/vovakirdan/grid-agent/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game from a menu",
	Long: `Start with an interactive picker. After a game ends you return to
the menu, which shows the previous result.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := logging.OpenFile(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	gridagent.SetLogger(logger)

	width, height := 80, 32
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
	}

	// Menu loop
	var last *core.GameState
	for {
		res, err := tui.RunMenu(cfg, last)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		if res.Quit {
			return nil
		}
		cfg = res.Config

		game, err := registry.Create(res.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		final, err := tui.Run(game, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		last = &final
	}
}
