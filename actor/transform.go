package actor

import "github.com/go-gl/mathgl/mgl32"

// Transform represents a position and orientation in 2D space
type Transform struct {
	Position mgl32.Vec2
	Angle    float32 // radians, counter-clockwise
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{}
}

// Apply transforms a local-space point into world space.
func (t Transform) Apply(local mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Rotate2D(t.Angle).Mul2x1(local).Add(t.Position)
}
