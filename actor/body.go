package actor

import "github.com/go-gl/mathgl/mgl32"

// BodyType represents the type of body
type BodyType int

const (
	// BodyTypeDynamic bodies move with their velocity each step
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies are immovable (e.g., ground, walls)
	BodyTypeStatic
)

// Body represents a kinematic body tracked by the spatial pipeline
type Body struct {
	// Spatial properties
	PreviousTransform Transform
	Transform         Transform

	// Linear and angular motion
	Velocity        mgl32.Vec2 // m/s
	AngularVelocity float32    // rad/s

	BodyType  BodyType
	IsTrigger bool

	Shape ShapeInterface
}

// NewBody creates a new body with the given properties
func NewBody(transform Transform, shape ShapeInterface, bodyType BodyType) *Body {
	b := &Body{
		PreviousTransform: transform,
		Transform:         transform,
		Shape:             shape,
		BodyType:          bodyType,
	}

	b.Shape.ComputeBounds(b.Transform)

	return b
}

// Integrate advances the body by its velocity and refreshes its bounds
// Static bodies never move
func (b *Body) Integrate(dt float32) {
	if b.BodyType == BodyTypeStatic {
		return
	}

	b.PreviousTransform = b.Transform

	b.Transform.Position = b.Transform.Position.Add(b.Velocity.Mul(dt))
	b.Transform.Angle += b.AngularVelocity * dt

	b.Shape.ComputeBounds(b.Transform)
}

// Bounds returns the body's current world-space bounding box
func (b *Body) Bounds() Box {
	return b.Shape.GetBounds()
}
