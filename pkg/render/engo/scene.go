// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

// GameScene is the single Engo scene for a session.
type GameScene struct {
	frontend *Frontend
	world    *ecs.World
}

// newGameScene creates the scene bound to its frontend.
func newGameScene(frontend *Frontend) *GameScene {
	return &GameScene{frontend: frontend}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// Vector shapes only, nothing to load.
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world, _ = u.(*ecs.World)

	common.SetBackground(colorBackground)

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	registerButtons()
	scene.world.AddSystem(newKeySystem(scene.frontend))
	scene.world.AddSystem(newFrameSystem(scene.frontend, renderSystem))
}

// Exit is called when the scene shuts down.
func (scene *GameScene) Exit() {
	engo.Exit()
}
