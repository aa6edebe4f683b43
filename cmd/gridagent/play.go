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

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to gridagent; gridagent_demo plays itself.

Controls:
  Arrows/WASD  - Steer
  Space/Enter  - Start
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Examples:
  gridagent play
  gridagent play gridagent_demo
  gridagent play --seed 42 --log-file /tmp/gridagent.log --log-level debug
  gridagent play --config ./my-gridagent.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := gridagent.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'gridagent list' to see available games)", gameID)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := logging.OpenFile(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	gridagent.SetLogger(logger)

	width, height := 80, 32 // Defaults
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

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	final, err := tui.Run(game, cfg, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Final score: %d (level %d)\n", final.Score, final.Level)
	return nil
}
