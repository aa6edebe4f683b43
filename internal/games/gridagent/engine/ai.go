package engine

import "slices"

// Rand is the random source consumed by anomaly pursuit.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Pursuit is the per-move direction policy of anomalies: with probability
// ChaseChance steer toward the player, otherwise wander and re-roll the
// heading every RerollEvery moves or when blocked.
type Pursuit struct {
	ChaseChance float64
	RerollEvery int
}

// Move advances one anomaly by one movement tick toward or around target.
// It reports whether the anomaly changed cells.
func (ai Pursuit) Move(g *Grid, a *Anomaly, target Point, rng Rand) bool {
	a.MoveCounter++

	valid := ValidDirections(g, a.Pos)
	if len(valid) == 0 {
		return false
	}

	if rng.Float64() < ai.ChaseChance {
		if preferred := chaseDirections(a.Pos, target, valid); len(preferred) > 0 {
			a.Dir = preferred[rng.Intn(len(preferred))]
		}
	} else if a.MoveCounter%ai.RerollEvery == 0 || !CanMove(g, a.Pos, a.Dir) {
		a.Dir = valid[rng.Intn(len(valid))]
	}

	var moved bool
	a.Pos, moved = TryMove(g, a.Pos, a.Dir)
	return moved
}

// chaseDirections lists the valid directions that reduce the signed
// distance to target, checked independently per axis in Right, Left,
// Down, Up order.
func chaseDirections(from, target Point, valid []Dir) []Dir {
	dx := target.X - from.X
	dy := target.Y - from.Y

	var out []Dir
	if dx > 0 && slices.Contains(valid, DirRight) {
		out = append(out, DirRight)
	}
	if dx < 0 && slices.Contains(valid, DirLeft) {
		out = append(out, DirLeft)
	}
	if dy > 0 && slices.Contains(valid, DirDown) {
		out = append(out, DirDown)
	}
	if dy < 0 && slices.Contains(valid, DirUp) {
		out = append(out, DirUp)
	}
	return out
}
