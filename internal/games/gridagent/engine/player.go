package engine

// Player is the agent steered by intents.
type Player struct {
	Pos  Point
	Dir  Dir // current heading
	Next Dir // queued turn, applied as soon as it becomes legal
}

// newPlayer returns a player standing still at the spawn cell.
func newPlayer() Player {
	return Player{Pos: PlayerSpawn}
}

// Move performs one player movement tick. A queued turn replaces the
// current heading once legal; a blocked step keeps the heading so the
// player retries on the next tick.
func (p *Player) Move(g *Grid) bool {
	if CanMove(g, p.Pos, p.Next) {
		p.Dir = p.Next
	}
	var moved bool
	p.Pos, moved = TryMove(g, p.Pos, p.Dir)
	return moved
}
