package engine

// Pellet is a stationary collectible on a path cell.
type Pellet struct {
	Pos       Point
	Collected bool
}

// PelletField holds the pellets of one level.
// Pellets are indexed by cell so pickup is a constant-time lookup.
type PelletField struct {
	pellets   []Pellet
	index     map[Point]int
	remaining int
}

// SpawnPellets places one uncollected pellet on every path cell of g
// except exclude (the player's spawn).
func SpawnPellets(g *Grid, exclude Point) *PelletField {
	n := g.PathCount()
	f := &PelletField{
		pellets: make([]Pellet, 0, n),
		index:   make(map[Point]int, n),
	}
	for y := range g.Height() {
		for x := range g.Width() {
			p := Point{X: x, Y: y}
			if !g.IsPath(x, y) || p == exclude {
				continue
			}
			f.index[p] = len(f.pellets)
			f.pellets = append(f.pellets, Pellet{Pos: p})
		}
	}
	f.remaining = len(f.pellets)
	return f
}

// Total returns the number of pellets spawned for the level.
func (f *PelletField) Total() int { return len(f.pellets) }

// Remaining returns the number of uncollected pellets.
func (f *PelletField) Remaining() int { return f.remaining }

// CollectAt marks the pellet at p collected.
// Returns false if there is no uncollected pellet there.
func (f *PelletField) CollectAt(p Point) bool {
	i, ok := f.index[p]
	if !ok || f.pellets[i].Collected {
		return false
	}
	f.pellets[i].Collected = true
	f.remaining--
	return true
}

// Live returns a copy of the uncollected pellets in row-major order.
func (f *PelletField) Live() []Pellet {
	out := make([]Pellet, 0, f.remaining)
	for _, p := range f.pellets {
		if !p.Collected {
			out = append(out, p)
		}
	}
	return out
}
