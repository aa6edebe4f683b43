package engine

import (
	"errors"
	"time"

	"github.com/vovakirdan/grid-agent/internal/config"
)

// Lifecycle is the session state.
type Lifecycle uint8

const (
	NotStarted Lifecycle = iota
	Running
	Transitioning
	Ended
)

// String returns the string representation of a lifecycle state.
func (l Lifecycle) String() string {
	switch l {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Transitioning:
		return "transitioning"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Session owns all state of one play session and advances it one frame
// at a time. It is not safe for concurrent use; the host drives it from
// a single loop.
type Session struct {
	cfg     config.GridAgentConfig
	rng     Rand
	pursuit Pursuit
	scoring Scoring

	sched Scheduler
	clock Clock
	state Lifecycle
	hold  bool // skip movement on the frame that starts or resumes play

	level        int
	score        int
	collected    int // anomalies captured this session
	pelletsEaten int // pellets collected this session
	playerTicks  int
	frames       uint64
	elapsed      time.Duration // time spent Running

	grid      *Grid
	pellets   *PelletField
	anomalies []Anomaly
	player    Player
	overlay   Overlay

	fx *Effects // effects of the tick in progress
}

// NewSession validates cfg and returns a session at level 1 waiting to start.
func NewSession(cfg config.GridAgentConfig, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("engine: nil random source")
	}
	s := &Session{
		cfg: cfg,
		rng: rng,
		pursuit: Pursuit{
			ChaseChance: cfg.Anomalies.ChaseChance,
			RerollEvery: cfg.Anomalies.RerollEvery,
		},
		scoring: Scoring{
			Pellet:  cfg.Scoring.Pellet,
			Anomaly: cfg.Scoring.Anomaly,
		},
	}
	s.reset()
	return s, nil
}

// Tick advances the session by one frame of dt and applies one intent.
// Within a frame: due continuations run, then the intent, then (while
// Running) the player tick, the anomaly tick, collisions and the win check.
func (s *Session) Tick(dt time.Duration, in Intent) Effects {
	return s.track(func() {
		s.frames++
		s.sched.Advance(dt)
		s.handleIntent(in)

		if s.state != Running {
			return
		}
		if s.hold {
			s.hold = false
			return
		}
		s.step(dt)
	})
}

// End finishes the session. Play never ends on its own, so the host calls
// this when the player leaves. Start resets an ended session.
func (s *Session) End() Effects {
	return s.track(func() {
		if s.state == Ended {
			return
		}
		s.sched.CancelAll()
		s.state = Ended
		s.overlay = endedOverlay
		s.emit(EventSessionEnded)
	})
}

// Reset returns the session to level 1 waiting to start.
func (s *Session) Reset() Effects {
	return s.track(func() {
		s.reset()
		s.emit(EventSessionReset)
	})
}

// track runs fn while collecting the effects it produces.
func (s *Session) track(fn func()) Effects {
	fx := Effects{}
	s.fx = &fx
	hud, overlay := s.HUD(), s.overlay

	fn()

	s.fx = nil
	fx.HUD = s.HUD()
	fx.HUDChanged = fx.HUD != hud
	fx.Overlay = s.overlay
	fx.OverlayChanged = s.overlay != overlay
	return fx
}

func (s *Session) handleIntent(in Intent) {
	if in == IntentRestart {
		s.reset()
		s.emit(EventSessionReset)
		return
	}

	switch s.state {
	case NotStarted:
		if in == IntentNone {
			return
		}
		s.start()
		if d, ok := in.Dir(); ok {
			s.player.Next = d
		}
	case Running:
		if d, ok := in.Dir(); ok {
			s.player.Next = d
		}
	case Ended:
		if in == IntentStart {
			s.reset()
			s.emit(EventSessionReset)
		}
	}
}

// step runs the movement phases, collisions and the win check.
func (s *Session) step(dt time.Duration) {
	s.elapsed += dt

	playerDue, anomalyDue := s.clock.Advance(dt)
	if playerDue {
		s.player.Move(s.grid)
		s.playerTicks++
		s.fx.PlayerStepped = true
	}
	if anomalyDue {
		for i := range s.anomalies {
			s.pursuit.Move(s.grid, &s.anomalies[i], s.player.Pos, s.rng)
		}
		s.fx.AnomalyStepped = true
	}

	s.resolveCollisions()

	if len(s.anomalies) == 0 {
		s.advanceLevel()
	}
}

func (s *Session) resolveCollisions() {
	var res Collisions
	s.anomalies, res = ResolveCollisions(s.player.Pos, s.pellets, s.anomalies, s.scoring)
	if !res.Any() {
		return
	}

	s.score += res.Points
	s.pelletsEaten += res.Pellets
	s.collected += len(res.Captured)

	if res.Pellets > 0 {
		s.fx.Events = append(s.fx.Events, Event{
			Kind:  EventPelletCollected,
			Level: s.level,
			Score: s.score,
			Pos:   s.player.Pos,
		})
	}
	for _, a := range res.Captured {
		s.fx.Events = append(s.fx.Events, Event{
			Kind:    EventAnomalyCaptured,
			Level:   s.level,
			Score:   s.score,
			Pos:     a.Pos,
			Anomaly: a.ID,
		})
	}
	if len(res.Captured) > 0 {
		s.fx.Pulse = true
	}
}

func (s *Session) start() {
	s.state = Running
	s.overlay = Overlay{}
	s.hold = true
	s.emit(EventSessionStarted)
}

func (s *Session) reset() {
	s.sched.CancelAll()
	s.level = 1
	s.score = 0
	s.collected = 0
	s.pelletsEaten = 0
	s.playerTicks = 0
	s.elapsed = 0
	s.hold = false
	s.loadLevel()
	s.state = NotStarted
	s.overlay = startOverlay
}

// loadLevel replaces the grid, pellets, roster and player for s.level.
func (s *Session) loadLevel() {
	s.grid = Generate()
	s.pellets = SpawnPellets(s.grid, PlayerSpawn)
	s.anomalies = SpawnAnomalies(s.level, s.cfg.Anomalies.BaseCount)
	s.player = newPlayer()
	s.clock.Reset(s.cfg.Timing.Player.At(s.level), s.cfg.Timing.Anomaly.At(s.level))
}

func (s *Session) advanceLevel() {
	s.emit(EventLevelCleared)
	s.level++
	s.loadLevel()
	s.state = Transitioning
	s.overlay = levelOverlay(s.level)
	s.sched.After(s.cfg.TransitionPause(), s.resume)
}

// resume ends the level transition pause.
func (s *Session) resume() {
	if s.state != Transitioning {
		return
	}
	s.state = Running
	s.overlay = Overlay{}
	s.hold = true
	s.emit(EventLevelStarted)
}

func (s *Session) emit(kind EventKind) {
	if s.fx == nil {
		return
	}
	s.fx.Events = append(s.fx.Events, Event{Kind: kind, Level: s.level, Score: s.score})
}

// State returns the lifecycle state.
func (s *Session) State() Lifecycle { return s.state }

// Level returns the current 1-based level.
func (s *Session) Level() int { return s.level }

// Score returns the session score.
func (s *Session) Score() int { return s.score }

// AnomaliesCollected returns the anomalies captured this session.
func (s *Session) AnomaliesCollected() int { return s.collected }

// PelletsEaten returns the pellets collected this session.
func (s *Session) PelletsEaten() int { return s.pelletsEaten }

// PlayerTicks returns the number of player movement ticks run this session.
func (s *Session) PlayerTicks() int { return s.playerTicks }

// Grid returns the current level grid. Grids are never mutated.
func (s *Session) Grid() *Grid { return s.grid }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Overlay returns the overlay currently requested.
func (s *Session) Overlay() Overlay { return s.overlay }

// Intervals returns the current player and anomaly movement intervals.
func (s *Session) Intervals() (player, anomaly time.Duration) {
	return s.clock.PlayerInterval, s.clock.AnomalyInterval
}

// HUD returns the values of the numeric displays.
func (s *Session) HUD() HUD {
	return HUD{Score: s.score, Level: s.level, AnomaliesCollected: s.collected}
}
