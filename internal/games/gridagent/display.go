package gridagent

import (
	"time"

	"github.com/vovakirdan/grid-agent/internal/games/gridagent/engine"
)

// Display is the UI sink: three numeric displays and one overlay.
// It only mirrors what the session pushes and never feeds back into it.
type Display struct {
	hud     engine.HUD
	overlay engine.Overlay
	pulse   time.Duration // remaining highlight time of the anomaly counter
}

// NewDisplay creates a display showing the given values.
func NewDisplay(hud engine.HUD, overlay engine.Overlay) Display {
	return Display{hud: hud, overlay: overlay}
}

// Apply updates the displays from one tick's effects.
func (d *Display) Apply(fx engine.Effects, pulse time.Duration) {
	if fx.HUDChanged {
		d.hud = fx.HUD
	}
	if fx.OverlayChanged {
		d.overlay = fx.Overlay
	}
	if fx.Pulse {
		d.pulse = pulse
	}
	if fx.Has(engine.EventSessionReset) {
		d.hud = fx.HUD
		d.overlay = fx.Overlay
		d.pulse = 0
	}
}

// Advance runs down the highlight timer.
func (d *Display) Advance(dt time.Duration) {
	d.pulse = max(0, d.pulse-dt)
}

// HUD returns the displayed values.
func (d Display) HUD() engine.HUD { return d.hud }

// Overlay returns the displayed overlay.
func (d Display) Overlay() engine.Overlay { return d.overlay }

// Pulsing reports whether the anomaly counter is highlighted.
func (d Display) Pulsing() bool { return d.pulse > 0 }
