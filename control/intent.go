// Package control carries discrete camera intents from input sources to the
// frame driver. Intents are queued at any time and applied only between
// frames.
package control

// Intent is one discrete camera command.
type Intent uint8

const (
	None Intent = iota
	PitchUp
	PitchDown
	YawLeft
	YawRight
	MoveForward
	MoveBack
	IncreaseFov
	DecreaseFov
	ResetCamera
)

var intentNames = [...]string{
	None:        "none",
	PitchUp:     "pitch-up",
	PitchDown:   "pitch-down",
	YawLeft:     "yaw-left",
	YawRight:    "yaw-right",
	MoveForward: "move-forward",
	MoveBack:    "move-back",
	IncreaseFov: "fov-up",
	DecreaseFov: "fov-down",
	ResetCamera: "reset",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "intent(?)"
}

// ForRune maps the shared key bindings for printable keys. Arrow and Home
// keys are mapped by each input backend.
func ForRune(r rune) Intent {
	switch r {
	case 'w', 'W':
		return MoveForward
	case 's', 'S':
		return MoveBack
	case 'a', 'A':
		return YawLeft
	case 'd', 'D':
		return YawRight
	case 'r', 'R':
		return PitchUp
	case 'f', 'F':
		return PitchDown
	case '+', '=':
		return IncreaseFov
	case '-', '_':
		return DecreaseFov
	case '0':
		return ResetCamera
	}
	return None
}
