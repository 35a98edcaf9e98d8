// pkg/engine/snapshot.go
package engine

import (
	"github.com/splitrock/go-driftfield/pkg/entity"
	"github.com/splitrock/go-driftfield/pkg/physics"
)

// BoardState is a read-only snapshot of the board taken between ticks.
// Renderers consume it freely; nothing they do can reach back into the
// live board.
type BoardState struct {
	Tick    uint64
	Ship    ShipState
	Mooks   []MookState
	Bullets []BulletState
}

// ShipState is a snapshot of the ship's pose.
type ShipState struct {
	Position  physics.Vector2D
	Velocity  physics.Vector2D
	Rotation  float64
	Health    float64
	Thrusting bool
}

// MookState is a snapshot of one mook's pose and tier.
type MookState struct {
	ID       entity.ID
	Position physics.Vector2D
	Rotation float64
	Level    int
	Radius   float64
}

// BulletState is a snapshot of one bullet's pose. Rotation is derived
// from the bullet's velocity.
type BulletState struct {
	ID       entity.ID
	Position physics.Vector2D
	Rotation float64
}

// Snapshot captures the current board state for rendering.
func (b *Board) Snapshot() *BoardState {
	state := &BoardState{
		Tick: b.tick,
		Ship: ShipState{
			Position:  b.Ship.Position,
			Velocity:  b.Ship.Velocity,
			Rotation:  b.Ship.Rotation,
			Health:    b.Ship.Health,
			Thrusting: b.thrusting,
		},
		Mooks:   make([]MookState, 0, len(b.Mooks)),
		Bullets: make([]BulletState, 0, len(b.Bullets)),
	}

	for id, mook := range b.Mooks {
		state.Mooks = append(state.Mooks, MookState{
			ID:       id,
			Position: mook.Position,
			Rotation: mook.Rotation,
			Level:    mook.Level,
			Radius:   mook.Radius(b.cfg.Mooks.BaseRadius),
		})
	}

	for id, bullet := range b.Bullets {
		state.Bullets = append(state.Bullets, BulletState{
			ID:       id,
			Position: bullet.Position,
			Rotation: bullet.Rotation(),
		})
	}

	return state
}
