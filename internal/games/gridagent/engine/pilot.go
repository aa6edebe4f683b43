package engine

// Autopilot steers the player toward the nearest anomaly.
// It is used by the attract mode and headless simulations.
type Autopilot struct {
	dist [Rows * Cols]int
	from [Rows * Cols]Dir // first heading on the shortest path to each cell
	q    []Point
}

// Intent returns the intent that moves the player one cell along a shortest
// path (tunnels included) to the closest anomaly. Outside Running it asks
// to start; with nothing reachable it returns IntentNone.
func (ap *Autopilot) Intent(snap Snapshot) Intent {
	switch snap.State {
	case NotStarted, Ended:
		return IntentStart
	case Transitioning:
		return IntentNone
	}
	if len(snap.Anomalies) == 0 {
		return IntentNone
	}

	targets := make(map[Point]bool, len(snap.Anomalies))
	for _, a := range snap.Anomalies {
		targets[a.Pos] = true
	}
	if d, ok := ap.search(snap.Grid, snap.Player.Pos, targets); ok {
		return IntentFor(d)
	}
	return IntentNone
}

// search runs a breadth-first search from start and returns the first
// heading of the shortest path to any target.
func (ap *Autopilot) search(g *Grid, start Point, targets map[Point]bool) (Dir, bool) {
	for i := range ap.dist {
		ap.dist[i] = -1
	}
	ap.q = ap.q[:0]

	idx := func(p Point) int { return p.Y*Cols + p.X }

	ap.dist[idx(start)] = 0
	ap.from[idx(start)] = DirNone
	ap.q = append(ap.q, start)

	for head := 0; head < len(ap.q); head++ {
		cur := ap.q[head]
		if targets[cur] && cur != start {
			return ap.from[idx(cur)], true
		}
		for _, d := range cardinalDirs {
			next, moved := TryMove(g, cur, d)
			if !moved || ap.dist[idx(next)] >= 0 {
				continue
			}
			ap.dist[idx(next)] = ap.dist[idx(cur)] + 1
			if cur == start {
				ap.from[idx(next)] = d
			} else {
				ap.from[idx(next)] = ap.from[idx(cur)]
			}
			ap.q = append(ap.q, next)
		}
	}
	return DirNone, false
}
