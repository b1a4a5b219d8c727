package survival

import "github.com/vovakirdan/zombie-survival/internal/core"

// CollisionRadius is the default contact distance in world units.
const CollisionRadius = 5.0

// Collides reports whether a and b are in contact at the default radius.
func Collides(a, b core.Vec2) bool {
	return CollidesWithin(a, b, CollisionRadius)
}

// CollidesWithin reports whether a and b are strictly closer than radius.
func CollidesWithin(a, b core.Vec2, radius float64) bool {
	return a.Dist(b) < radius
}

// Touching reports whether two positioned entities are in contact.
func Touching(a, b Positioned, radius float64) bool {
	return CollidesWithin(a.Position(), b.Position(), radius)
}
