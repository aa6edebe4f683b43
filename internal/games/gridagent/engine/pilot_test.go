package engine

import (
	"math/rand"
	"testing"
	"time"
)

func TestAutopilotStartsIdleSessions(t *testing.T) {
	var ap Autopilot

	if got := ap.Intent(Snapshot{State: NotStarted}); got != IntentStart {
		t.Errorf("Expected start intent, got %v", got)
	}
	if got := ap.Intent(Snapshot{State: Ended}); got != IntentStart {
		t.Errorf("Expected start intent when ended, got %v", got)
	}
	if got := ap.Intent(Snapshot{State: Transitioning}); got != IntentNone {
		t.Errorf("Expected no intent while transitioning, got %v", got)
	}
}

func TestAutopilotFollowsShortestPath(t *testing.T) {
	var ap Autopilot
	snap := Snapshot{
		State:     Running,
		Grid:      Generate(),
		Player:    Player{Pos: PlayerSpawn},
		Anomalies: []Anomaly{{Pos: P(15, 19)}},
	}

	if got := ap.Intent(snap); got != IntentRight {
		t.Errorf("Expected right toward (15,19), got %v", got)
	}
}

func TestAutopilotUsesTunnel(t *testing.T) {
	var ap Autopilot
	snap := Snapshot{
		State:     Running,
		Grid:      Generate(),
		Player:    Player{Pos: P(1, 13)},
		Anomalies: []Anomaly{{Pos: P(Cols-2, 13)}},
	}

	if got := ap.Intent(snap); got != IntentLeft {
		t.Errorf("Expected left through the tunnel, got %v", got)
	}
}

func TestAutopilotClearsLevel(t *testing.T) {
	s := newTestSession(t, rand.New(rand.NewSource(1)))
	var ap Autopilot

	for range 20000 {
		s.Tick(16*time.Millisecond, ap.Intent(s.Snapshot()))
		if s.Level() > 1 {
			break
		}
	}
	if s.Level() < 2 {
		t.Errorf("Autopilot should clear level 1, still at level %d with %d anomalies", s.Level(), len(s.anomalies))
	}
	if s.AnomaliesCollected() < 6 {
		t.Errorf("Expected at least 6 captures, got %d", s.AnomaliesCollected())
	}
}
