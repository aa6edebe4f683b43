package gridagent

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-agent/internal/config"
)

func TestSimulateAutopilot(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf)

	sum, err := Simulate(config.DefaultGridAgentConfig(), SimOptions{
		Duration:  3 * time.Minute,
		Frame:     16 * time.Millisecond,
		Seed:      1,
		Autopilot: true,
	}, logger)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if sum.LevelsCleared == 0 || sum.Level != sum.LevelsCleared+1 {
		t.Errorf("Expected at least one cleared level, got %+v", sum)
	}
	if sum.AnomaliesCollected < 6 || sum.PelletsEaten == 0 {
		t.Errorf("Expected captures and pellets, got %+v", sum)
	}
	if want := sum.PelletsEaten*10 + sum.AnomaliesCollected*100; sum.Score != want {
		t.Errorf("Score %d does not match pickups (%d)", sum.Score, want)
	}
	if !strings.Contains(buf.String(), "level cleared") {
		t.Error("Expected level events in the log")
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "level cleared") && !strings.Contains(line, "game_level=") {
			t.Errorf("Expected the level number on %q", line)
		}
	}
	if !strings.Contains(sum.String(), "Level reached") {
		t.Error("Summary text should name the level")
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	opts := SimOptions{Duration: 30 * time.Second, Frame: 20 * time.Millisecond, Seed: 99, Autopilot: true}
	discard := log.New(&strings.Builder{})

	a, err := Simulate(config.DefaultGridAgentConfig(), opts, discard)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(config.DefaultGridAgentConfig(), opts, discard)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Same seed should give the same summary:\n%+v\n%+v", a, b)
	}
}

func TestSimulateIdlePlayer(t *testing.T) {
	sum, err := Simulate(config.DefaultGridAgentConfig(), SimOptions{
		Duration: 10 * time.Second,
		Frame:    16 * time.Millisecond,
		Seed:     3,
	}, log.New(&strings.Builder{}))
	if err != nil {
		t.Fatal(err)
	}
	if sum.PelletsEaten != 0 {
		t.Errorf("A player standing on spawn collects nothing, got %d pellets", sum.PelletsEaten)
	}
	if sum.Frames != 625 {
		t.Errorf("Expected 625 frames, got %d", sum.Frames)
	}
}

func TestSimulateRejectsBadOptions(t *testing.T) {
	discard := log.New(&strings.Builder{})
	if _, err := Simulate(config.DefaultGridAgentConfig(), SimOptions{Duration: time.Second}, discard); err == nil {
		t.Error("Expected error for zero frame")
	}
	if _, err := Simulate(config.DefaultGridAgentConfig(), SimOptions{Duration: -time.Second, Frame: time.Millisecond}, discard); err == nil {
		t.Error("Expected error for negative duration")
	}
}
