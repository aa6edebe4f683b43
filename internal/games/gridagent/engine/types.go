// Package engine implements the Grid Agent simulation: maze, pellets,
// anomaly spawning and pursuit, movement legality with tunnel wrap,
// collision resolution, and the session state machine.
// This package is UI-agnostic and deterministic for a given random source.
package engine

import "fmt"

// Dir is a movement direction. DirNone means standing still.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// cardinalDirs lists the four moving directions in the order validity is
// evaluated; random picks index into lists built in this order.
var cardinalDirs = [...]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the unit (dx, dy) offset of the direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Point is a cell coordinate on the grid.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the point offset by (dx, dy) without any wrapping.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Toward returns the neighbouring point in direction d without any wrapping.
func (p Point) Toward(d Dir) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}
