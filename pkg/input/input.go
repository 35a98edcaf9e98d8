// pkg/input/input.go

// Package input maps raw key press/release events onto per-tick
// simulation intents. The key enumeration is owned here, closed, and
// independent of any windowing toolkit; frontends translate their native
// key codes into it.
package input

// Key identifies a game control key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyQuit
)

// String returns the key's control name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyFire:
		return "fire"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a discrete key state change delivered by a frontend.
type Event struct {
	Key     Key
	Pressed bool // true on press, false on release
}

// Intent is a per-tick simulation command derived from the held keys.
type Intent int

const (
	TurnLeft Intent = iota
	TurnRight
	Thrust
	Reverse
	Fire
	Quit
)

// State is the set of currently-held keys for one session. It is created
// empty at session start and mutated only by key events: press inserts,
// release removes. Loss of window focus does not clear it, so a key held
// across a focus change stays held until its release event arrives.
type State struct {
	held map[Key]struct{}
}

// NewState creates an empty held-key set.
func NewState() *State {
	return &State{held: make(map[Key]struct{})}
}

// Handle applies one key event to the held set.
func (s *State) Handle(ev Event) {
	if ev.Pressed {
		s.held[ev.Key] = struct{}{}
	} else {
		delete(s.held, ev.Key)
	}
}

// Held reports whether a key is currently down.
func (s *State) Held(k Key) bool {
	_, ok := s.held[k]
	return ok
}

// Intents maps the held keys onto this tick's intents. All simultaneously
// held keys contribute, so thrust and turn can apply within the same
// tick. The order of intents across different held keys is unspecified;
// the held set is unordered and callers must not rely on it.
func (s *State) Intents() []Intent {
	intents := make([]Intent, 0, len(s.held))
	for key := range s.held {
		switch key {
		case KeyLeft:
			intents = append(intents, TurnLeft)
		case KeyRight:
			intents = append(intents, TurnRight)
		case KeyUp:
			intents = append(intents, Thrust)
		case KeyDown:
			intents = append(intents, Reverse)
		case KeyFire:
			intents = append(intents, Fire)
		case KeyQuit:
			intents = append(intents, Quit)
		}
	}
	return intents
}
