package engine

import "time"

// Clock turns variable frame deltas into fixed-interval movement ticks.
// The player and the anomalies run on separate accumulators; when an
// accumulator reaches its interval it fires once and restarts from zero.
type Clock struct {
	PlayerInterval  time.Duration
	AnomalyInterval time.Duration

	playerAcc  time.Duration
	anomalyAcc time.Duration
}

// NewClock creates a clock with empty accumulators.
func NewClock(player, anomaly time.Duration) Clock {
	return Clock{PlayerInterval: player, AnomalyInterval: anomaly}
}

// Advance adds dt to both accumulators and reports which movement phases
// are due this frame. At most one tick per phase fires per frame.
func (c *Clock) Advance(dt time.Duration) (playerDue, anomalyDue bool) {
	if dt < 0 {
		dt = 0
	}
	c.playerAcc += dt
	if c.playerAcc >= c.PlayerInterval {
		playerDue = true
		c.playerAcc = 0
	}
	c.anomalyAcc += dt
	if c.anomalyAcc >= c.AnomalyInterval {
		anomalyDue = true
		c.anomalyAcc = 0
	}
	return playerDue, anomalyDue
}

// Reset clears both accumulators and installs new intervals.
func (c *Clock) Reset(player, anomaly time.Duration) {
	*c = NewClock(player, anomaly)
}
