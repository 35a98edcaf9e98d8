// pkg/entity/bullet_test.go
package entity

import (
	"math"
	"testing"

	"github.com/splitrock/go-driftfield/pkg/physics"
)

func TestBullet_Update(t *testing.T) {
	bullet := &Bullet{
		Position: physics.Vector2D{X: 1.0, Y: 1.0},
		Velocity: physics.Vector2D{X: 2, Y: 0},
	}

	bullet.Update(0.02)

	if math.Abs(bullet.Position.X-1.04) > 1e-12 {
		t.Errorf("Position.X = %v, expected 1.04", bullet.Position.X)
	}
	// Bullets are swept, not wrapped: even past the field edge the
	// position keeps integrating.
	bullet.Position = physics.Vector2D{X: 5, Y: 0}
	bullet.Update(0.02)
	if bullet.Position.X < 5 {
		t.Errorf("Position.X = %v, expected no wrap", bullet.Position.X)
	}
}

func TestBullet_Expired(t *testing.T) {
	tests := []struct {
		name     string
		pos      physics.Vector2D
		expected bool
	}{
		{
			name:     "inside_range",
			pos:      physics.Vector2D{X: 0.5, Y: 0.5},
			expected: false,
		},
		{
			name:     "exactly_at_threshold_persists",
			pos:      physics.Vector2D{X: 1, Y: 1}, // squared norm exactly 2.0
			expected: false,
		},
		{
			name:     "past_threshold",
			pos:      physics.Vector2D{X: 1.5, Y: 1.5},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bullet := &Bullet{Position: tt.pos}
			if got := bullet.Expired(2.0); got != tt.expected {
				t.Errorf("Expired() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestBullet_Rotation(t *testing.T) {
	tests := []struct {
		name     string
		velocity physics.Vector2D
		expected float64
	}{
		{
			name:     "along_x",
			velocity: physics.Vector2D{X: 2, Y: 0},
			expected: 0,
		},
		{
			name:     "along_y",
			velocity: physics.Vector2D{X: 0, Y: 2},
			expected: math.Pi / 2,
		},
		{
			name:     "diagonal",
			velocity: physics.Vector2D{X: 1, Y: 1},
			expected: math.Pi / 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bullet := &Bullet{Velocity: tt.velocity}
			if got := bullet.Rotation(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Rotation() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
