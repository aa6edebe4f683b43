package engine

import "github.com/vovakirdan/grid-agent/internal/core"

// Anomaly is a roaming collectible entity.
type Anomaly struct {
	ID          int
	Pos         Point
	Dir         Dir
	MoveCounter int // moves attempted since spawn
	Color       core.Color
}

// anomalySpawns are the candidate spawn cells, cycled by spawn index:
// the four corners, then the horizontal midpoints, then the vertical midpoints.
// The horizontal midpoints sit in the outer wall; anomalies placed there
// leave through the adjacent corridor on their first move.
var anomalySpawns = [...]Point{
	{X: 1, Y: 1},
	{X: Cols - 2, Y: 1},
	{X: 1, Y: Rows - 2},
	{X: Cols - 2, Y: Rows - 2},
	{X: Cols / 2, Y: 1},
	{X: Cols / 2, Y: Rows - 2},
	{X: 1, Y: Rows / 2},
	{X: Cols - 2, Y: Rows / 2},
}

// Palette is the fixed anomaly color cycle.
var Palette = [...]core.Color{
	core.ColorBrightMagenta,
	core.ColorOrange,
	core.ColorBrightCyan,
	core.ColorBrightYellow,
	core.ColorBrightRed,
	core.ColorBrightGreen,
}

// AnomalyCount returns the roster size for a level: base + level/2.
func AnomalyCount(level, base int) int {
	return base + level/2
}

// SpawnAnomalies creates the roster for a level. Spawn cells and colors
// are assigned by cycling their fixed lists in spawn order.
func SpawnAnomalies(level, base int) []Anomaly {
	n := AnomalyCount(level, base)
	out := make([]Anomaly, n)
	for i := range out {
		out[i] = Anomaly{
			ID:    i,
			Pos:   anomalySpawns[i%len(anomalySpawns)],
			Dir:   DirNone,
			Color: Palette[i%len(Palette)],
		}
	}
	return out
}
