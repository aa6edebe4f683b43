package engine

import "fmt"

// EventKind classifies what happened during a tick.
type EventKind uint8

const (
	EventSessionStarted EventKind = iota
	EventPelletCollected
	EventAnomalyCaptured
	EventLevelCleared
	EventLevelStarted
	EventSessionReset
	EventSessionEnded
)

var eventNames = [...]string{
	EventSessionStarted:  "session started",
	EventPelletCollected: "pellet collected",
	EventAnomalyCaptured: "anomaly captured",
	EventLevelCleared:    "level cleared",
	EventLevelStarted:    "level started",
	EventSessionReset:    "session reset",
	EventSessionEnded:    "session ended",
}

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", k)
}

// Event records one state change observed during a tick.
type Event struct {
	Kind    EventKind
	Level   int
	Score   int
	Pos     Point // pickup cell for pellet and anomaly events
	Anomaly int   // anomaly ID for capture events
}

// HUD holds the three numeric displays.
type HUD struct {
	Score              int
	Level              int
	AnomaliesCollected int
}

// Overlay is the title/message box shown over the maze.
type Overlay struct {
	Visible bool
	Title   string
	Message string
}

// Effects is everything a host needs to update its displays after a tick.
type Effects struct {
	HUD            HUD
	HUDChanged     bool
	Overlay        Overlay
	OverlayChanged bool
	Pulse          bool // highlight the anomaly counter
	PlayerStepped  bool // a player movement tick ran
	AnomalyStepped bool // an anomaly movement tick ran
	Events         []Event
}

// Has reports whether an event of the given kind was emitted.
func (e Effects) Has(kind EventKind) bool {
	for _, ev := range e.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Overlays shown by the session.
var (
	startOverlay = Overlay{Visible: true, Title: "GRID AGENT", Message: "Press SPACE or any Arrow Key to Start"}
	endedOverlay = Overlay{Visible: true, Title: "GAME OVER", Message: "Press SPACE to Play Again"}
)

func levelOverlay(level int) Overlay {
	return Overlay{Visible: true, Title: fmt.Sprintf("LEVEL %d", level), Message: "Get Ready!"}
}
