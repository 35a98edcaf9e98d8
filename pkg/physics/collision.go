// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided     bool
	Normal       Vector2D
	Penetration  float64
	ContactPoint Vector2D
}

// CheckCollision performs detailed collision detection between two circles
func CheckCollision(a, b Circle) CollisionResult {
	// Vector from A to B
	normal := b.Center.Sub(a.Center)
	distance := normal.Length()

	// No collision
	if distance > a.Radius+b.Radius {
		return CollisionResult{Collided: false}
	}

	// Get penetration depth
	penetration := a.Radius + b.Radius - distance

	// Calculate collision normal and contact point
	normal = normal.Normalize()
	contactPoint := a.Center.Add(normal.Scale(a.Radius))

	return CollisionResult{
		Collided:     true,
		Normal:       normal,
		Penetration:  penetration,
		ContactPoint: contactPoint,
	}
}

// PairTester decides whether two colliders intersect. The engine's
// collision pass depends only on this interface, so the brute-force
// pairwise tester can be swapped for a spatial index without touching
// call sites.
type PairTester interface {
	Test(a, b Circle) bool
}

// PhasedTester runs a cheap broad phase before the exact test: squared
// distance against the summed bounding radii rejects most pairs without a
// square root, and only survivors reach CheckCollision at a finer
// tolerance.
type PhasedTester struct {
	// Tolerance scales the radii used by the exact phase. 1.0 confirms
	// at the full bounding circles; smaller values demand deeper overlap.
	Tolerance float64
}

// NewPhasedTester creates a two-phase tester with the given exact-phase
// tolerance. Tolerance values outside (0, 1] fall back to 1.0.
func NewPhasedTester(tolerance float64) *PhasedTester {
	if tolerance <= 0 || tolerance > 1 {
		tolerance = 1.0
	}
	return &PhasedTester{Tolerance: tolerance}
}

// Test implements PairTester.
func (t *PhasedTester) Test(a, b Circle) bool {
	// Broad phase: bounding circles at full radii.
	sum := a.Radius + b.Radius
	if a.Center.Sub(b.Center).LengthSquared() > sum*sum {
		return false
	}

	// Exact phase: circle-circle at the finer tolerance.
	fineA := Circle{Center: a.Center, Radius: a.Radius * t.Tolerance}
	fineB := Circle{Center: b.Center, Radius: b.Radius * t.Tolerance}
	return CheckCollision(fineA, fineB).Collided
}
