// Package gridagent adapts the Grid Agent engine to the arcade platform.
// It maps input frames to intents, feeds measured frame deltas to the
// session, keeps the HUD and overlay displays, and renders onto a core.Screen.
package gridagent

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-agent/internal/config"
	"github.com/vovakirdan/grid-agent/internal/core"
	"github.com/vovakirdan/grid-agent/internal/games/gridagent/engine"
	"github.com/vovakirdan/grid-agent/internal/registry"
)

// Game identifiers.
const (
	GameID     = "gridagent"
	DemoGameID = "gridagent_demo"
)

// Package-level settings shared by every instance, set by the CLI before play.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger that receives session events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is the registry adapter around an engine session.
type Game struct {
	demo    bool
	cfg     config.GridAgentConfig
	session *engine.Session
	pilot   engine.Autopilot
	display Display

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
}

// New creates a player-controlled game.
func New() *Game {
	return &Game{}
}

// NewDemo creates an attract-mode game steered by the autopilot.
func NewDemo() *Game {
	return &Game{demo: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(DemoGameID, func() registry.Game {
		return NewDemo()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.demo {
		return DemoGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.demo {
		return "Grid Agent (Demo)"
	}
	return "Grid Agent"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gcfg, err := config.LoadGridAgent(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		gcfg = config.DefaultGridAgentConfig()
	}
	g.cfg = gcfg

	session, err := engine.NewSession(gcfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		// Loaded configs are validated, so only the defaults can reach here.
		logger.Error("cannot create session", "err", err)
		session, _ = engine.NewSession(config.DefaultGridAgentConfig(), rand.New(rand.NewSource(cfg.Seed)))
	}
	g.session = session
	g.pilot = engine.Autopilot{}
	g.display = NewDisplay(session.HUD(), session.Overlay())
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	logger.Debug("session created", "game", g.ID(), "seed", cfg.Seed)
}

// Resize adapts the layout to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinWidth || h < MinHeight
}

// Step feeds one host frame to the session.
// While paused or while the window is too small no time reaches the engine;
// only Restart gets through.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State() == engine.Running {
		g.paused = !g.paused
		logger.Debug("pause toggled", "paused", g.paused)
	}

	intent := IntentFromInput(in)
	switch {
	case intent == engine.IntentRestart:
		g.paused = false
	case g.paused || g.tooSmall:
		return core.StepResult{State: g.State()}
	case g.demo:
		intent = g.pilot.Intent(g.session.Snapshot())
	}

	fx := g.session.Tick(dt, intent)
	g.display.Advance(dt)
	g.apply(fx)
	return core.StepResult{State: g.State()}
}

// Finish ends the session, e.g. when the player quits.
func (g *Game) Finish() core.GameState {
	g.apply(g.session.End())
	g.paused = false
	return g.State()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	hud := g.display.HUD()
	return core.GameState{
		Score:    hud.Score,
		Level:    hud.Level,
		GameOver: g.session.State() == engine.Ended,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

// apply pushes effects to the displays and logs the events.
func (g *Game) apply(fx engine.Effects) {
	g.display.Apply(fx, g.cfg.Pulse())
	for _, ev := range fx.Events {
		logEvent(ev)
	}
}

func logEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventPelletCollected:
		logger.Debug(ev.Kind.String(), "pos", ev.Pos, "score", ev.Score)
	case engine.EventAnomalyCaptured:
		logger.Info(ev.Kind.String(), "anomaly", ev.Anomaly, "pos", ev.Pos, "score", ev.Score)
	default:
		logger.Info(ev.Kind.String(), "game_level", ev.Level, "score", ev.Score)
	}
}
