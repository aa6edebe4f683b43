package engine

import "time"

// Snapshot is a read-only copy of the session for renderers and
// determinism checks. Grid is shared because grids are immutable.
type Snapshot struct {
	Frame              uint64
	State              Lifecycle
	Level              int
	Score              int
	AnomaliesCollected int
	PelletsEaten       int
	PelletsTotal       int
	PelletsRemaining   int
	PlayerTicks        int
	Elapsed            time.Duration
	PlayerInterval     time.Duration
	AnomalyInterval    time.Duration
	Grid               *Grid
	Player             Player
	Anomalies          []Anomaly
	Pellets            []Pellet // uncollected only
	Overlay            Overlay
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frame:              s.frames,
		State:              s.state,
		Level:              s.level,
		Score:              s.score,
		AnomaliesCollected: s.collected,
		PelletsEaten:       s.pelletsEaten,
		PelletsTotal:       s.pellets.Total(),
		PelletsRemaining:   s.pellets.Remaining(),
		PlayerTicks:        s.playerTicks,
		Elapsed:            s.elapsed,
		PlayerInterval:     s.clock.PlayerInterval,
		AnomalyInterval:    s.clock.AnomalyInterval,
		Grid:               s.grid,
		Player:             s.player,
		Anomalies:          append([]Anomaly(nil), s.anomalies...),
		Pellets:            s.pellets.Live(),
		Overlay:            s.overlay,
	}
}

// AnomalyAt returns the anomaly occupying p, if any.
func (snap Snapshot) AnomalyAt(p Point) (Anomaly, bool) {
	for _, a := range snap.Anomalies {
		if a.Pos == p {
			return a, true
		}
	}
	return Anomaly{}, false
}

// HUD returns the numeric display values captured in the snapshot.
func (snap Snapshot) HUD() HUD {
	return HUD{Score: snap.Score, Level: snap.Level, AnomaliesCollected: snap.AnomaliesCollected}
}
