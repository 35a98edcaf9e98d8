// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/splitrock/go-driftfield/pkg/engine"
	"github.com/splitrock/go-driftfield/pkg/input"
	"github.com/splitrock/go-driftfield/pkg/logging"
)

// NullRenderer is an engine.Renderer that draws nothing. It logs each
// call at debug level, which makes headless sessions traceable.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements engine.Renderer.
func (r *NullRenderer) Clear() {
	r.logger.Debug(context.Background(), "Clear called")
}

// Present implements engine.Renderer.
func (r *NullRenderer) Present() {
	r.logger.Debug(context.Background(), "Present called")
}

// RenderShip implements engine.Renderer.
func (r *NullRenderer) RenderShip(ship engine.ShipState) {
	r.logger.Debug(context.Background(), "RenderShip called",
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"rotation", ship.Rotation,
	)
}

// RenderMook implements engine.Renderer.
func (r *NullRenderer) RenderMook(mook engine.MookState) {
	r.logger.Debug(context.Background(), "RenderMook called",
		"mook_id", mook.ID,
		"level", mook.Level,
	)
}

// RenderBullet implements engine.Renderer.
func (r *NullRenderer) RenderBullet(bullet engine.BulletState) {
	r.logger.Debug(context.Background(), "RenderBullet called",
		"bullet_id", bullet.ID,
	)
}

// NullSource is an engine.InputSource that never delivers events. It
// keeps headless sessions running until the context or ship ends them.
type NullSource struct{}

// Poll implements engine.InputSource.
func (NullSource) Poll() []input.Event { return nil }

// Closed implements engine.InputSource.
func (NullSource) Closed() bool { return false }
