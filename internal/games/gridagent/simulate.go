package gridagent

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-agent/internal/config"
	"github.com/vovakirdan/grid-agent/internal/games/gridagent/engine"
)

// SimOptions configures a headless run.
type SimOptions struct {
	Duration  time.Duration // virtual time to simulate
	Frame     time.Duration // fixed frame delta
	Seed      int64
	Autopilot bool // steer with the autopilot; otherwise start and stand still
}

// Summary reports the outcome of a headless run.
type Summary struct {
	Frames             int
	PlayerTicks        int
	Level              int
	LevelsCleared      int
	Score              int
	AnomaliesCollected int
	PelletsEaten       int
	Elapsed            time.Duration
}

// String returns a multi-line human-readable summary.
func (s Summary) String() string {
	return fmt.Sprintf(`Simulated:           %v (%d frames)
Player ticks:        %d
Level reached:       %d (%d cleared)
Score:               %d
Anomalies collected: %d
Pellets eaten:       %d`,
		s.Elapsed, s.Frames, s.PlayerTicks, s.Level, s.LevelsCleared,
		s.Score, s.AnomaliesCollected, s.PelletsEaten)
}

// Simulate drives a session with fixed frame deltas and no terminal.
// Session events are logged to logger.
func Simulate(cfg config.GridAgentConfig, opts SimOptions, logger *log.Logger) (Summary, error) {
	if opts.Frame <= 0 {
		return Summary{}, fmt.Errorf("gridagent: frame must be positive, got %v", opts.Frame)
	}
	if opts.Duration < 0 {
		return Summary{}, fmt.Errorf("gridagent: duration must not be negative, got %v", opts.Duration)
	}

	session, err := engine.NewSession(cfg, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return Summary{}, fmt.Errorf("gridagent: %w", err)
	}

	var (
		pilot engine.Autopilot
		sum   Summary
	)
	for sum.Elapsed < opts.Duration {
		intent := engine.IntentStart
		if opts.Autopilot {
			intent = pilot.Intent(session.Snapshot())
		}

		fx := session.Tick(opts.Frame, intent)
		sum.Frames++
		sum.Elapsed += opts.Frame

		for _, ev := range fx.Events {
			if ev.Kind == engine.EventLevelCleared {
				sum.LevelsCleared++
			}
			if ev.Kind != engine.EventPelletCollected {
				logger.Info(ev.Kind.String(), "game_level", ev.Level, "score", ev.Score, "t", sum.Elapsed)
			}
		}
	}

	sum.PlayerTicks = session.PlayerTicks()
	sum.Level = session.Level()
	sum.Score = session.Score()
	sum.AnomaliesCollected = session.AnomaliesCollected()
	sum.PelletsEaten = session.PelletsEaten()
	return sum, nil
}
