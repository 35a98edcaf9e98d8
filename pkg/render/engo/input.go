// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/splitrock/go-driftfield/pkg/input"
)

// keyBindings maps Engo button names to the core key enumeration.
var keyBindings = []struct {
	button string
	code   engo.Key
	key    input.Key
}{
	{"turnLeft", engo.KeyArrowLeft, input.KeyLeft},
	{"turnRight", engo.KeyArrowRight, input.KeyRight},
	{"thrust", engo.KeyArrowUp, input.KeyUp},
	{"reverse", engo.KeyArrowDown, input.KeyDown},
	{"fire", engo.KeySpace, input.KeyFire},
	{"quit", engo.KeyQ, input.KeyQuit},
}

// registerButtons wires the keyboard buttons Engo tracks each frame.
func registerButtons() {
	for _, b := range keyBindings {
		engo.Input.RegisterButton(b.button, b.code)
	}
}

// keySystem forwards button edges to the simulation as press/release
// events. Holding a key delivers one press and one release, so the core
// held-key set mirrors the physical keyboard state.
type keySystem struct {
	frontend *Frontend
}

func newKeySystem(frontend *Frontend) *keySystem {
	return &keySystem{frontend: frontend}
}

// Remove satisfies the ecs.System interface.
func (ks *keySystem) Remove(basic ecs.BasicEntity) {}

// Update checks every bound button for state edges.
func (ks *keySystem) Update(dt float32) {
	for _, b := range keyBindings {
		btn := engo.Input.Button(b.button)
		if btn.JustPressed() {
			ks.frontend.pushEvent(input.Event{Key: b.key, Pressed: true})
		}
		if btn.JustReleased() {
			ks.frontend.pushEvent(input.Event{Key: b.key, Pressed: false})
		}
	}
}
