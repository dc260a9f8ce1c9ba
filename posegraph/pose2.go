// Package posegraph: planar rigid-pose value type and its group operations.
package posegraph

import "math"

// Pose2 is a planar rigid pose: translation (X, Y) and heading Theta in
// radians. The zero value is the identity pose.
type Pose2 struct {
	X, Y, Theta float64
}

// NewPose2 constructs a pose from its three components.
func NewPose2(x, y, theta float64) Pose2 { return Pose2{X: x, Y: y, Theta: theta} }

// wrapAngle reduces theta to (-π, π]. atan2 of the unit vector avoids
// accumulating error from repeated subtraction of 2π.
func wrapAngle(theta float64) float64 {
	return math.Atan2(math.Sin(theta), math.Cos(theta))
}

// Compose returns p ∘ o: the pose obtained by applying o in p's frame.
// The resulting heading is normalized to (-π, π].
func (p Pose2) Compose(o Pose2) Pose2 {
	sin, cos := math.Sincos(p.Theta)

	return Pose2{
		X:     p.X + cos*o.X - sin*o.Y,
		Y:     p.Y + sin*o.X + cos*o.Y,
		Theta: wrapAngle(p.Theta + o.Theta),
	}
}

// Inverse returns the pose q such that p ∘ q is the identity.
func (p Pose2) Inverse() Pose2 {
	sin, cos := math.Sincos(p.Theta)

	// Rotation transposes; translation is the rotated negation.
	return Pose2{
		X:     -(cos*p.X + sin*p.Y),
		Y:     -(-sin*p.X + cos*p.Y),
		Theta: wrapAngle(-p.Theta),
	}
}

// Between returns the relative pose o expressed in p's frame such that
// p ∘ result = o. The heading component is normalized to (-π, π], which is
// exactly what a relative-rotation sensor can observe: the whole-turn count
// along a loop is recovered later by chord regularization, not here.
func (p Pose2) Between(o Pose2) Pose2 {
	return p.Inverse().Compose(o)
}
