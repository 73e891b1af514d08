package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCircleComputeBounds(t *testing.T) {
	tests := []struct {
		name     string
		radius   float32
		position mgl32.Vec2
		expected Box
	}{
		{"at origin", 1, mgl32.Vec2{0, 0}, NewBox(-1, -1, 1, 1)},
		{"offset", 3, mgl32.Vec2{1, 2}, NewBox(-2, -1, 4, 5)},
		{"negative space", 0.5, mgl32.Vec2{-4, -4}, NewBox(-4.5, -4.5, -3.5, -3.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circle := &Circle{Radius: tt.radius}
			circle.ComputeBounds(Transform{Position: tt.position})

			if got := circle.GetBounds(); !got.Equals(tt.expected) {
				t.Errorf("GetBounds() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCircleBoundsIgnoreRotation(t *testing.T) {
	circle := &Circle{Radius: 2}

	circle.ComputeBounds(Transform{Position: mgl32.Vec2{1, 1}})
	unrotated := circle.GetBounds()

	circle.ComputeBounds(Transform{Position: mgl32.Vec2{1, 1}, Angle: 1.3})
	rotated := circle.GetBounds()

	if !unrotated.Equals(rotated) {
		t.Errorf("circle bounds should not depend on rotation: %+v != %+v", unrotated, rotated)
	}
}

func TestRectangleComputeBounds(t *testing.T) {
	t.Run("axis aligned", func(t *testing.T) {
		rect := &Rectangle{HalfExtents: mgl32.Vec2{2, 1}}
		rect.ComputeBounds(Transform{Position: mgl32.Vec2{1, 1}})

		expected := NewBox(-1, 0, 3, 2)
		if got := rect.GetBounds(); !got.ApproxEqual(expected) {
			t.Errorf("GetBounds() = %+v, want %+v", got, expected)
		}
	})

	t.Run("quarter turn swaps extents", func(t *testing.T) {
		rect := &Rectangle{HalfExtents: mgl32.Vec2{2, 1}}
		rect.ComputeBounds(Transform{Angle: math.Pi / 2})

		expected := NewBox(-1, -2, 1, 2)
		if got := rect.GetBounds(); !got.ApproxEqual(expected) {
			t.Errorf("GetBounds() = %+v, want %+v", got, expected)
		}
	})

	t.Run("diagonal rotation grows the bounds", func(t *testing.T) {
		rect := &Rectangle{HalfExtents: mgl32.Vec2{1, 1}}
		rect.ComputeBounds(Transform{Angle: math.Pi / 4})

		// Un carré unitaire tourné de 45° couvre une diagonale de sqrt(2)
		d := float32(math.Sqrt2)
		expected := NewBox(-d, -d, d, d)
		if got := rect.GetBounds(); !got.ApproxEqual(expected) {
			t.Errorf("GetBounds() = %+v, want %+v", got, expected)
		}
	})
}

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		local     mgl32.Vec2
		expected  mgl32.Vec2
	}{
		{"identity", NewTransform(), mgl32.Vec2{1, 2}, mgl32.Vec2{1, 2}},
		{"translation only", Transform{Position: mgl32.Vec2{3, -1}}, mgl32.Vec2{1, 2}, mgl32.Vec2{4, 1}},
		{"quarter turn", Transform{Angle: math.Pi / 2}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transform.Apply(tt.local)
			if !floatEqual(got.X(), tt.expected.X()) || !floatEqual(got.Y(), tt.expected.Y()) {
				t.Errorf("Apply(%v) = %v, want %v", tt.local, got, tt.expected)
			}
		})
	}
}
