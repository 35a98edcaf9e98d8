// pkg/entity/bullet.go
package entity

import (
	"github.com/splitrock/go-driftfield/pkg/physics"
)

// Bullet is a ship projectile. Bullets fly in a straight line at fixed
// speed and are swept once they leave the play area; unlike ships and
// mooks they never wrap.
type Bullet struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
}

// Update advances the bullet by one tick.
func (b *Bullet) Update(step float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(step))
}

// Rotation derives the bullet's facing from its velocity: the angle
// between the +X axis and the velocity vector. Used only for rendering;
// bullets store no orientation of their own.
func (b *Bullet) Rotation() float64 {
	return physics.Vector2D{X: 1}.AngleBetween(b.Velocity)
}

// Expired reports whether the bullet has left the play area: its squared
// distance from the origin strictly exceeds rangeSq. A bullet exactly at
// the threshold persists.
func (b *Bullet) Expired(rangeSq float64) bool {
	return b.Position.LengthSquared() > rangeSq
}

// Collider returns the bullet's bounding circle for the given radius.
func (b *Bullet) Collider(radius float64) physics.Circle {
	return physics.Circle{Center: b.Position, Radius: radius}
}
