// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "negative_vectors",
			v1:       Vector2D{X: -3, Y: -4},
			v2:       Vector2D{X: -1, Y: -2},
			expected: Vector2D{X: -4, Y: -6},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{X: 0, Y: 0},
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Scale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		factor   float64
		expected Vector2D
	}{
		{
			name:     "double",
			v:        Vector2D{X: 1, Y: -2},
			factor:   2,
			expected: Vector2D{X: 2, Y: -4},
		},
		{
			name:     "zero_factor",
			v:        Vector2D{X: 3, Y: 4},
			factor:   0,
			expected: Vector2D{X: 0, Y: 0},
		},
		{
			name:     "negative_factor",
			v:        Vector2D{X: 3, Y: 4},
			factor:   -1,
			expected: Vector2D{X: -3, Y: -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Scale(tt.factor)
			if result != tt.expected {
				t.Errorf("Scale() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Normalize(t *testing.T) {
	t.Run("unit_length_result", func(t *testing.T) {
		v := Vector2D{X: 3, Y: 4}
		result := v.Normalize()
		if math.Abs(result.Length()-1.0) > 1e-12 {
			t.Errorf("Normalize() length = %v, expected 1.0", result.Length())
		}
	})

	t.Run("zero_vector_stays_zero", func(t *testing.T) {
		v := Vector2D{}
		result := v.Normalize()
		if result != (Vector2D{}) {
			t.Errorf("Normalize() of zero vector = %v, expected zero vector", result)
		}
	})
}

func TestVector2D_LengthSquared(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", got)
	}
}

func TestVector2D_Dot(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected float64
	}{
		{
			name:     "perpendicular_is_zero",
			v1:       Vector2D{X: 1},
			v2:       Vector2D{Y: 1},
			expected: 0,
		},
		{
			name:     "parallel_is_product_of_lengths",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 3, Y: 4},
			expected: 25,
		},
		{
			name:     "opposed_is_negative",
			v1:       Vector2D{X: 2},
			v2:       Vector2D{X: -3},
			expected: -6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Dot(tt.v2); got != tt.expected {
				t.Errorf("Dot() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector2D_AngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     Vector2D
		to       Vector2D
		expected float64
	}{
		{
			name:     "x_axis_to_y_axis",
			from:     Vector2D{X: 1},
			to:       Vector2D{Y: 1},
			expected: math.Pi / 2,
		},
		{
			name:     "same_direction",
			from:     Vector2D{X: 1},
			to:       Vector2D{X: 5},
			expected: 0,
		},
		{
			name:     "x_axis_to_negative_y",
			from:     Vector2D{X: 1},
			to:       Vector2D{Y: -1},
			expected: -math.Pi / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.AngleBetween(tt.to)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("AngleBetween() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-2) > 1e-12 {
		t.Errorf("FromAngle(π/2, 2) = %v, expected (0, 2)", v)
	}
}

func TestWrap(t *testing.T) {
	const limit = 1.05

	tests := []struct {
		name     string
		in       Vector2D
		expected Vector2D
	}{
		{
			name:     "inside_field_untouched",
			in:       Vector2D{X: 0.5, Y: -0.9},
			expected: Vector2D{X: 0.5, Y: -0.9},
		},
		{
			name:     "exactly_at_limit_untouched",
			in:       Vector2D{X: 1.05, Y: -1.05},
			expected: Vector2D{X: 1.05, Y: -1.05},
		},
		{
			name:     "positive_x_flips",
			in:       Vector2D{X: 1.1, Y: 0.2},
			expected: Vector2D{X: -1.1, Y: 0.2},
		},
		{
			name:     "negative_y_flips",
			in:       Vector2D{X: 0.2, Y: -1.2},
			expected: Vector2D{X: 0.2, Y: 1.2},
		},
		{
			name:     "both_axes_flip_independently",
			in:       Vector2D{X: -1.5, Y: 1.5},
			expected: Vector2D{X: 1.5, Y: -1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in, limit)
			if got != tt.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}
