package engine

import (
	"math/rand"
	"testing"
)

// scriptedRand replays fixed draws. Exhausted scripts return a wander
// roll and index 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

var defaultPursuit = Pursuit{ChaseChance: 0.3, RerollEvery: 5}

func TestPursuitChase(t *testing.T) {
	g := Generate()
	a := Anomaly{Pos: P(1, 1)}
	rng := &scriptedRand{floats: []float64{0.1}}

	if !defaultPursuit.Move(g, &a, P(5, 1), rng) {
		t.Fatal("Chasing anomaly should move")
	}
	if a.Dir != DirRight || a.Pos != P(2, 1) {
		t.Errorf("Expected chase to the right, got %v heading %v", a.Pos, a.Dir)
	}
	if a.MoveCounter != 1 {
		t.Errorf("Expected move counter 1, got %d", a.MoveCounter)
	}
}

func TestPursuitChaseWithoutPreferredKeepsHeading(t *testing.T) {
	g := Generate()
	// Player straight above behind a wall: no valid direction closes the gap.
	a := Anomaly{Pos: P(1, 1), Dir: DirRight}
	rng := &scriptedRand{floats: []float64{0.1}, ints: []int{1}}

	defaultPursuit.Move(g, &a, P(1, 0), rng)
	if a.Dir != DirRight || a.Pos != P(2, 1) {
		t.Errorf("Expected heading kept, got %v heading %v", a.Pos, a.Dir)
	}
	if len(rng.ints) != 1 {
		t.Error("No index should be drawn when nothing is preferred")
	}
}

func TestPursuitChaseAxesAreIndependent(t *testing.T) {
	g := Generate()
	// From (1,1) the player down-right makes both Right and Down preferred.
	a := Anomaly{Pos: P(1, 1)}
	rng := &scriptedRand{floats: []float64{0.1}, ints: []int{1}}

	defaultPursuit.Move(g, &a, P(5, 5), rng)
	if a.Dir != DirDown {
		t.Errorf("Second preferred direction should be Down, got %v", a.Dir)
	}
}

func TestPursuitWanderKeepsHeading(t *testing.T) {
	g := Generate()
	a := Anomaly{Pos: P(1, 1), Dir: DirRight, MoveCounter: 1}
	rng := &scriptedRand{floats: []float64{0.9}, ints: []int{1}}

	defaultPursuit.Move(g, &a, P(20, 20), rng)
	if a.Dir != DirRight || a.Pos != P(2, 1) {
		t.Errorf("Expected to keep heading Right, got %v heading %v", a.Pos, a.Dir)
	}
	if len(rng.ints) != 1 {
		t.Error("Wandering without a re-roll should not draw an index")
	}
}

func TestPursuitRerollForcing(t *testing.T) {
	g := Generate()

	tests := []struct {
		name    string
		dir     Dir
		counter int
		pick    int
		want    Dir
	}{
		{"period trips", DirRight, 4, 0, DirDown},
		{"blocked heading", DirUp, 0, 1, DirRight},
		{"blocked at period", DirUp, 9, 0, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Anomaly{Pos: P(1, 1), Dir: tt.dir, MoveCounter: tt.counter}
			rng := &scriptedRand{floats: []float64{0.9}, ints: []int{tt.pick}}

			if !defaultPursuit.Move(g, &a, P(20, 20), rng) {
				t.Fatal("Re-rolled anomaly should move")
			}
			if a.Dir != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, a.Dir)
			}
			if !CanMove(g, P(1, 1), a.Dir) {
				t.Errorf("Re-rolled heading %v must be valid", a.Dir)
			}
		})
	}
}

func TestPursuitStillAnomalyWaitsForPeriod(t *testing.T) {
	g := Generate()
	a := Anomaly{Pos: P(1, 1)}
	rng := &scriptedRand{floats: []float64{0.9}}

	if defaultPursuit.Move(g, &a, P(20, 20), rng) {
		t.Error("A still anomaly on a path cell should wait for its re-roll")
	}
	if a.Dir != DirNone {
		t.Errorf("Expected heading None, got %v", a.Dir)
	}
}

func TestPursuitLeavesWallSpawn(t *testing.T) {
	g := Generate()
	a := Anomaly{Pos: P(13, 1)}
	rng := &scriptedRand{floats: []float64{0.9}, ints: []int{1}}

	defaultPursuit.Move(g, &a, P(20, 20), rng)
	if a.Pos != P(14, 1) || a.Dir != DirRight {
		t.Errorf("Expected to step out of the wall to (14,1), got %v heading %v", a.Pos, a.Dir)
	}
}

func TestPursuitNeverPicksBlockedHeading(t *testing.T) {
	g := Generate()
	rng := rand.New(rand.NewSource(7))

	for range 200 {
		a := Anomaly{Pos: P(1, 1), Dir: DirUp, MoveCounter: 4}
		defaultPursuit.Move(g, &a, P(20, 20), rng)
		if a.Dir == DirUp || a.Pos == P(1, 1) {
			t.Fatalf("Blocked anomaly should re-roll and move, got %v heading %v", a.Pos, a.Dir)
		}
	}
}

func TestPursuitNoValidDirections(t *testing.T) {
	g := Generate()
	a := Anomaly{Pos: P(11, 0), Dir: DirDown}
	rng := &scriptedRand{floats: []float64{0.1}}

	if defaultPursuit.Move(g, &a, P(1, 1), rng) {
		t.Error("Sealed anomaly should not move")
	}
	if a.MoveCounter != 1 {
		t.Errorf("Counter should still advance, got %d", a.MoveCounter)
	}
	if len(rng.floats) != 1 {
		t.Error("No roll should be drawn without valid directions")
	}
}

func TestPursuitWrapsThroughTunnel(t *testing.T) {
	g := Generate()
	a := Anomaly{Pos: P(0, 13), Dir: DirLeft, MoveCounter: 1}
	rng := &scriptedRand{floats: []float64{0.9}}

	defaultPursuit.Move(g, &a, P(20, 20), rng)
	if a.Pos != P(Cols-1, 13) {
		t.Errorf("Anomaly should wrap to the right edge, got %v", a.Pos)
	}
}
