// pkg/entity/mook.go
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/splitrock/go-driftfield/pkg/physics"
)

// Mook is an autonomous enemy unit. Level is its size/difficulty tier; a
// destroyed mook above the minimum tier splits into two smaller ones.
type Mook struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
	Health   float64
	Level    int
}

// NewRandomMook spawns a mook at a uniformly random position inside the
// visible field, with a random velocity at half the given speed scale, a
// random rotation in [0, 2π), full health, and the given level.
func NewRandomMook(rng *rand.Rand, bounds, speedScale float64, level int) *Mook {
	return &Mook{
		Position: physics.Vector2D{
			X: (rng.Float64()*2 - 1) * bounds,
			Y: (rng.Float64()*2 - 1) * bounds,
		},
		Velocity: physics.FromAngle(rng.Float64()*2*math.Pi, rng.Float64()*speedScale/2),
		Rotation: rng.Float64() * 2 * math.Pi,
		Health:   1.0,
		Level:    level,
	}
}

// Update advances the mook by one tick: position integrates velocity over
// the fixed step, rotation advances by the fixed spin increment, and the
// position bounces off the field edge. Health and collision response are
// handled by the board's collision pass, never here.
func (m *Mook) Update(step, spin, wrapLimit float64) {
	m.Position = m.Position.Add(m.Velocity.Scale(step))
	m.Rotation += spin
	m.Position = physics.Wrap(m.Position, wrapLimit)
}

// Radius returns the mook's bounding radius: the base radius scaled by
// its level tier.
func (m *Mook) Radius(base float64) float64 {
	return base * float64(m.Level)
}

// Collider returns the mook's bounding circle for the given base radius.
func (m *Mook) Collider(base float64) physics.Circle {
	return physics.Circle{Center: m.Position, Radius: m.Radius(base)}
}

// TakeDamage reduces health, clamping at zero. It reports whether the
// mook was destroyed by this hit.
func (m *Mook) TakeDamage(amount float64) bool {
	m.Health -= amount
	if m.Health < 0 {
		m.Health = 0
	}
	return m.Health <= 0
}

// Split breaks a destroyed mook into two children one tier down. Each
// child starts at the parent's position with full health and the parent's
// velocity rotated apart by a randomized angle, so the pair drifts in
// diverging directions. Mooks at or below minLevel do not split and
// return nil.
func (m *Mook) Split(rng *rand.Rand, minLevel int) []*Mook {
	if m.Level <= minLevel {
		return nil
	}

	// 30°-60° of divergence between the children.
	spread := math.Pi/6 + rng.Float64()*math.Pi/6
	children := make([]*Mook, 0, 2)
	for _, angle := range []float64{spread, -spread} {
		children = append(children, &Mook{
			Position: m.Position,
			Velocity: m.Velocity.Rotate(angle),
			Rotation: m.Rotation,
			Health:   1.0,
			Level:    m.Level - 1,
		})
	}
	return children
}
