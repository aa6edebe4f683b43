package engine

// Maze dimensions. Constant for the lifetime of a session.
const (
	Cols = 27
	Rows = 27
)

// PlayerSpawn is where the player starts every level.
var PlayerSpawn = Point{X: 13, Y: 19}

// CellKind is the content of a grid cell.
type CellKind uint8

const (
	CellPath CellKind = iota
	CellWall
)

// mazeTemplate is the fixed layout: '1' is a wall, '0' a path.
// Rows 7, 13 and 19 open onto both edges and form the horizontal tunnels.
var mazeTemplate = [Rows]string{
	"111111111111111111111111111",
	"100000000001010000000000001",
	"101111011101010111011111101",
	"101000010000000000010000101",
	"101011010111111110101101101",
	"100010010100000010101001001",
	"111110110101111010101011011",
	"000000000101000010100000000",
	"111110110101011010101110111",
	"100010010100010010101000001",
	"101010010111010111101011101",
	"101010000000010000000010101",
	"101011111101010111111010101",
	"000000000000000000000000000",
	"101011111101010111111010101",
	"101010000000010000000010101",
	"101010010111010111101011101",
	"100010010100010010101000001",
	"111110110101011010101110111",
	"000000000101000010100000000",
	"111110110101111010101011011",
	"100010010100000010101001001",
	"101011010111111110101101101",
	"101000010000000000010000101",
	"101111011101010111011111101",
	"100000000001010000000000001",
	"111111111111111111111111111",
}

// Grid is the immutable wall/path layout of one level.
// Cells are stored in row-major order: index = y*Cols + x.
type Grid struct {
	cells [Rows * Cols]CellKind
}

// Generate builds the level grid from the compiled-in template.
// Every call returns a structurally identical grid.
func Generate() *Grid {
	g := &Grid{}
	for y, row := range mazeTemplate {
		for x := 0; x < Cols; x++ {
			if row[x] == '1' {
				g.cells[y*Cols+x] = CellWall
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return Cols }

// Height returns the number of rows.
func (g *Grid) Height() int { return Rows }

// InBounds returns true if (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// At returns the cell kind at (x, y). Out-of-bounds cells read as walls.
func (g *Grid) At(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*Cols+x]
}

// IsPath returns true if (x, y) is an in-bounds path cell.
func (g *Grid) IsPath(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*Cols+x] == CellPath
}

// PathCount returns the number of walkable cells.
func (g *Grid) PathCount() int {
	count := 0
	for _, c := range g.cells {
		if c == CellPath {
			count++
		}
	}
	return count
}
