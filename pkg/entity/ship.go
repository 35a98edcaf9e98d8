// pkg/entity/ship.go
package entity

import (
	"github.com/splitrock/go-driftfield/pkg/physics"
)

// Ship is the player's vessel. There is exactly one per board; it is
// created at session start and never removed. Health runs from 1.0 down
// to 0.0.
type Ship struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64 // radians
	Health   float64
}

// NewShip creates a ship at the origin, at rest, facing along +X.
func NewShip() *Ship {
	return &Ship{Health: 1.0}
}

// Heading returns the unit vector of the ship's current facing.
func (s *Ship) Heading() physics.Vector2D {
	return physics.FromAngle(s.Rotation, 1.0)
}

// Update advances the ship by one tick: position integrates velocity over
// the fixed step, then bounces off the field edge.
func (s *Ship) Update(step, wrapLimit float64) {
	s.Position = s.Position.Add(s.Velocity.Scale(step))
	s.Position = physics.Wrap(s.Position, wrapLimit)
}

// Accelerate adds thrust along the current heading. Negative accel
// thrusts backward. Speed is hard-capped: if the resulting velocity
// exceeds maxSpeed it is renormalized to exactly maxSpeed along the NEW
// aggregate direction. A ship already at the cap that pushes in a
// different direction still turns toward the new direction; the cap
// clamps magnitude, it does not block the thrust.
func (s *Ship) Accelerate(accel, maxSpeed float64) {
	s.Velocity = s.Velocity.Add(s.Heading().Scale(accel))
	if s.Velocity.Length() > maxSpeed {
		s.Velocity = s.Velocity.Normalize().Scale(maxSpeed)
	}
}

// Turn rotates the ship's facing by a fixed angular increment. Turning
// affects only the direction of future thrust; velocity is inertial and
// keeps its previous direction (drift physics).
func (s *Ship) Turn(delta float64) {
	s.Rotation += delta
}

// Fire returns a new bullet at the ship's position, traveling along the
// current heading at the muzzle speed. The ship itself is not mutated.
func (s *Ship) Fire(muzzleSpeed float64) *Bullet {
	return &Bullet{
		Position: s.Position,
		Velocity: s.Heading().Scale(muzzleSpeed),
	}
}

// TakeDamage reduces health, clamping at zero. It reports whether the
// ship was destroyed by this hit.
func (s *Ship) TakeDamage(amount float64) bool {
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
	return s.Health <= 0
}
