package gridagent

import (
	"github.com/vovakirdan/grid-agent/internal/core"
	"github.com/vovakirdan/grid-agent/internal/games/gridagent/engine"
)

// actionIntents lists the actions that map to engine intents, in priority order.
var actionIntents = []struct {
	action core.Action
	intent engine.Intent
}{
	{core.ActionRestart, engine.IntentRestart},
	{core.ActionConfirm, engine.IntentStart},
	{core.ActionUp, engine.IntentUp},
	{core.ActionDown, engine.IntentDown},
	{core.ActionLeft, engine.IntentLeft},
	{core.ActionRight, engine.IntentRight},
}

// IntentFromInput picks the single intent an input frame carries.
// Actions without an intent (pause, quit) map to IntentNone.
func IntentFromInput(in core.InputFrame) engine.Intent {
	if in.Empty() {
		return engine.IntentNone
	}
	for _, m := range actionIntents {
		if in.Has(m.action) {
			return m.intent
		}
	}
	return engine.IntentNone
}
