package actor

import "github.com/go-gl/mathgl/mgl32"

// ShapeType represents the type of shape
type ShapeType int

const (
	ShapeTypeCircle ShapeType = iota
	ShapeTypeRectangle
)

// ShapeInterface is the interface that all shapes must implement
type ShapeInterface interface {
	// ComputeBounds calculates the axis-aligned bounding box for the shape
	// at the given transform
	ComputeBounds(transform Transform)
	GetBounds() Box
}

// Rectangle represents an oriented rectangle shape
// The rectangle is defined by its half-extents (half-width, half-height)
type Rectangle struct {
	HalfExtents mgl32.Vec2
	bounds      Box
}

func (r *Rectangle) ComputeBounds(transform Transform) {
	// Les 4 coins du rectangle en espace local
	corners := [4]mgl32.Vec2{
		{-r.HalfExtents.X(), -r.HalfExtents.Y()},
		{+r.HalfExtents.X(), -r.HalfExtents.Y()},
		{-r.HalfExtents.X(), +r.HalfExtents.Y()},
		{+r.HalfExtents.X(), +r.HalfExtents.Y()},
	}

	rotation := mgl32.Rotate2D(transform.Angle)

	// Transformer le premier coin pour initialiser les bornes
	world := rotation.Mul2x1(corners[0]).Add(transform.Position)
	bounds := BoxOfPoints(world, world)

	// Transformer tous les autres coins et étendre la boîte
	for i := 1; i < 4; i++ {
		world = rotation.Mul2x1(corners[i]).Add(transform.Position)
		bounds = bounds.ExtendToContain(world)
	}

	r.bounds = bounds
}

func (r *Rectangle) GetBounds() Box {
	return r.bounds
}

// Circle represents a circular shape
type Circle struct {
	Radius float32
	bounds Box
}

// ComputeBounds calculates the axis-aligned bounding box for the circle
func (c *Circle) ComputeBounds(transform Transform) {
	// Circle bounds are not affected by rotation, only by position
	c.bounds = BoxCenteredAt(transform.Position, mgl32.Vec2{c.Radius * 2, c.Radius * 2})
}

func (c *Circle) GetBounds() Box {
	return c.bounds
}
