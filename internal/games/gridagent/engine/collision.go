package engine

// Collisions is the outcome of one collision pass.
type Collisions struct {
	Pellets  int       // pellets picked up
	Captured []Anomaly // anomalies removed, in roster order
	Points   int       // score awarded
}

// Any reports whether anything was picked up.
func (c Collisions) Any() bool {
	return c.Pellets > 0 || len(c.Captured) > 0
}

// Scoring holds the points awarded per pickup.
type Scoring struct {
	Pellet  int
	Anomaly int
}

// ResolveCollisions collects the pellet under the player and captures every
// anomaly sharing the player's cell. The surviving anomalies are returned
// in their original order; the input slice is reused.
func ResolveCollisions(player Point, pellets *PelletField, anomalies []Anomaly, score Scoring) ([]Anomaly, Collisions) {
	var res Collisions

	if pellets.CollectAt(player) {
		res.Pellets++
		res.Points += score.Pellet
	}

	kept := anomalies[:0]
	for _, a := range anomalies {
		if a.Pos == player {
			res.Captured = append(res.Captured, a)
			res.Points += score.Anomaly
			continue
		}
		kept = append(kept, a)
	}
	return kept, res
}
