package engine

// CanMoveTo reports whether a mover may enter (x, y).
// Any x outside the grid is legal (horizontal tunnel), any y outside
// the grid is not. Inside the grid only path cells are legal.
func CanMoveTo(g *Grid, x, y int) bool {
	if x < 0 || x >= Cols {
		return true
	}
	if y < 0 || y >= Rows {
		return false
	}
	return g.At(x, y) == CellPath
}

// Step applies d to p and wraps x into [0, Cols). y is never wrapped.
// Callers check CanMoveTo on the unwrapped target first.
func Step(p Point, d Dir) Point {
	next := p.Toward(d)
	switch {
	case next.X < 0:
		next.X = Cols - 1
	case next.X >= Cols:
		next.X = 0
	}
	return next
}

// CanMove reports whether one step from p in direction d is legal.
// DirNone is always legal and leaves the mover in place.
func CanMove(g *Grid, p Point, d Dir) bool {
	next := p.Toward(d)
	return CanMoveTo(g, next.X, next.Y)
}

// ValidDirections returns the cardinal directions legal from p,
// in Up, Down, Left, Right order.
func ValidDirections(g *Grid, p Point) []Dir {
	dirs := make([]Dir, 0, len(cardinalDirs))
	for _, d := range cardinalDirs {
		if CanMove(g, p, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// TryMove steps from p in direction d if legal.
// Returns the new position and whether the mover actually changed cells.
func TryMove(g *Grid, p Point, d Dir) (Point, bool) {
	if d == DirNone || !CanMove(g, p, d) {
		return p, false
	}
	return Step(p, d), true
}
