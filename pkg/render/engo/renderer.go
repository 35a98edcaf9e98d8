// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/splitrock/go-driftfield/pkg/engine"
	"github.com/splitrock/go-driftfield/pkg/entity"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorShip       = color.RGBA{230, 230, 230, 255}
	colorMook       = color.RGBA{180, 180, 180, 255}
	colorBullet     = color.RGBA{255, 255, 255, 255}
)

// shapeEntity is one drawable object in the render system.
type shapeEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// frameSystem consumes presented frames and mirrors them onto render
// entities: a triangle for the ship, a circle per mook scaled by level,
// a small rectangle per bullet.
type frameSystem struct {
	frontend     *Frontend
	renderSystem *common.RenderSystem

	ship    *shapeEntity
	mooks   map[entity.ID]*shapeEntity
	bullets map[entity.ID]*shapeEntity
}

func newFrameSystem(frontend *Frontend, renderSystem *common.RenderSystem) *frameSystem {
	return &frameSystem{
		frontend:     frontend,
		renderSystem: renderSystem,
		mooks:        make(map[entity.ID]*shapeEntity),
		bullets:      make(map[entity.ID]*shapeEntity),
	}
}

// Remove satisfies the ecs.System interface.
func (fs *frameSystem) Remove(basic ecs.BasicEntity) {}

// Update applies the most recent frame, if one arrived since last draw.
func (fs *frameSystem) Update(dt float32) {
	fr, ok := fs.frontend.latestFrame()
	if !ok {
		return
	}
	fs.updateShip(fr.ship)
	fs.updateMooks(fr.mooks)
	fs.updateBullets(fr.bullets)
}

func (fs *frameSystem) updateShip(ship engine.ShipState) {
	if fs.ship == nil {
		size := fieldToPixels(0.08)
		se := &shapeEntity{BasicEntity: ecs.NewBasic()}
		se.RenderComponent = common.RenderComponent{
			Drawable: common.Triangle{TriangleType: common.TriangleIsosceles},
			Color:    colorShip,
		}
		se.SpaceComponent = common.SpaceComponent{Width: size, Height: size}
		fs.renderSystem.Add(&se.BasicEntity, &se.RenderComponent, &se.SpaceComponent)
		fs.ship = se
	}

	fs.ship.SpaceComponent.Position = fieldToScreen(ship.Position.X, ship.Position.Y, fs.ship.SpaceComponent.Width)
	fs.ship.SpaceComponent.Rotation = rotationDegrees(ship.Rotation)
}

func (fs *frameSystem) updateMooks(mooks []engine.MookState) {
	seen := make(map[entity.ID]struct{}, len(mooks))
	for _, mook := range mooks {
		seen[mook.ID] = struct{}{}
		se, ok := fs.mooks[mook.ID]
		if !ok {
			size := fieldToPixels(mook.Radius * 2)
			se = &shapeEntity{BasicEntity: ecs.NewBasic()}
			se.RenderComponent = common.RenderComponent{
				Drawable: common.Circle{BorderWidth: 2, BorderColor: colorMook},
				Color:    colorBackground,
			}
			se.SpaceComponent = common.SpaceComponent{Width: size, Height: size}
			fs.renderSystem.Add(&se.BasicEntity, &se.RenderComponent, &se.SpaceComponent)
			fs.mooks[mook.ID] = se
		}
		se.SpaceComponent.Position = fieldToScreen(mook.Position.X, mook.Position.Y, se.SpaceComponent.Width)
		se.SpaceComponent.Rotation = rotationDegrees(mook.Rotation)
	}
	for id, se := range fs.mooks {
		if _, ok := seen[id]; !ok {
			fs.renderSystem.Remove(se.BasicEntity)
			delete(fs.mooks, id)
		}
	}
}

func (fs *frameSystem) updateBullets(bullets []engine.BulletState) {
	seen := make(map[entity.ID]struct{}, len(bullets))
	for _, bullet := range bullets {
		seen[bullet.ID] = struct{}{}
		se, ok := fs.bullets[bullet.ID]
		if !ok {
			se = &shapeEntity{BasicEntity: ecs.NewBasic()}
			se.RenderComponent = common.RenderComponent{
				Drawable: common.Rectangle{},
				Color:    colorBullet,
			}
			se.SpaceComponent = common.SpaceComponent{
				Width:  fieldToPixels(0.008),
				Height: fieldToPixels(0.02),
			}
			fs.renderSystem.Add(&se.BasicEntity, &se.RenderComponent, &se.SpaceComponent)
			fs.bullets[bullet.ID] = se
		}
		se.SpaceComponent.Position = fieldToScreen(bullet.Position.X, bullet.Position.Y, se.SpaceComponent.Width)
		se.SpaceComponent.Rotation = rotationDegrees(bullet.Rotation)
	}
	for id, se := range fs.bullets {
		if _, ok := seen[id]; !ok {
			fs.renderSystem.Remove(se.BasicEntity)
			delete(fs.bullets, id)
		}
	}
}

// fieldToScreen maps field coordinates to window pixels, centering the
// drawable of the given size.
func fieldToScreen(fx, fy float64, size float32) engo.Point {
	x, y := projectField(fx, fy, engo.GameWidth(), engo.GameHeight())
	return engo.Point{X: x - size/2, Y: y - size/2}
}

// projectField maps field coordinates (roughly [-1.05, 1.05] both axes)
// onto a pixel extent. Engo's Y axis points down, so field Y is flipped.
func projectField(fx, fy float64, w, h float32) (float32, float32) {
	return float32((fx + 1.05) / 2.1) * w, float32((1.05-fy)/2.1) * h
}

// fieldToPixels converts a field-unit length to pixels on the shorter
// window axis.
func fieldToPixels(units float64) float32 {
	w := engo.GameWidth()
	h := engo.GameHeight()
	min := w
	if h < min {
		min = h
	}
	return float32(units / 2.1 * float64(min))
}

// rotationDegrees converts a field rotation (radians, counter-clockwise,
// zero along +X) to Engo's clockwise degrees.
func rotationDegrees(radians float64) float32 {
	return float32(-radians * 180 / math.Pi)
}
