package engine

// Intent is the single input value the session reads each tick.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentStart
	IntentRestart
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentUp:      "up",
	IntentDown:    "down",
	IntentLeft:    "left",
	IntentRight:   "right",
	IntentStart:   "start",
	IntentRestart: "restart",
}

// String returns the string representation of an intent.
func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// intentDirs maps directional intents to headings.
var intentDirs = map[Intent]Dir{
	IntentUp:    DirUp,
	IntentDown:  DirDown,
	IntentLeft:  DirLeft,
	IntentRight: DirRight,
}

// Dir returns the heading a directional intent requests.
// ok is false for non-directional intents.
func (i Intent) Dir() (d Dir, ok bool) {
	d, ok = intentDirs[i]
	return d, ok
}

// IntentFor returns the directional intent for a heading.
func IntentFor(d Dir) Intent {
	for i, v := range intentDirs {
		if v == d {
			return i
		}
	}
	return IntentNone
}
