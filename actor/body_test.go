package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewBodyComputesBounds(t *testing.T) {
	body := NewBody(
		Transform{Position: mgl32.Vec2{2, 3}},
		&Circle{Radius: 1},
		BodyTypeDynamic,
	)

	expected := NewBox(1, 2, 3, 4)
	if got := body.Bounds(); !got.Equals(expected) {
		t.Errorf("Bounds() = %+v, want %+v", got, expected)
	}
}

func TestBodyIntegrate(t *testing.T) {
	t.Run("dynamic body advances with its velocity", func(t *testing.T) {
		body := NewBody(NewTransform(), &Circle{Radius: 1}, BodyTypeDynamic)
		body.Velocity = mgl32.Vec2{2, -1}

		body.Integrate(0.5)

		if body.Transform.Position != (mgl32.Vec2{1, -0.5}) {
			t.Errorf("Position = %v, want (1,-0.5)", body.Transform.Position)
		}
		if body.PreviousTransform.Position != (mgl32.Vec2{0, 0}) {
			t.Errorf("PreviousTransform should hold the pre-step position, got %v", body.PreviousTransform.Position)
		}

		expected := NewBox(0, -1.5, 2, 0.5)
		if got := body.Bounds(); !got.Equals(expected) {
			t.Errorf("bounds should follow the body, got %+v, want %+v", got, expected)
		}
	})

	t.Run("static body never moves", func(t *testing.T) {
		body := NewBody(NewTransform(), &Circle{Radius: 1}, BodyTypeStatic)
		body.Velocity = mgl32.Vec2{10, 10}

		body.Integrate(1)

		if body.Transform.Position != (mgl32.Vec2{0, 0}) {
			t.Errorf("static body moved to %v", body.Transform.Position)
		}
	})

	t.Run("angular velocity rotates the shape", func(t *testing.T) {
		body := NewBody(NewTransform(), &Rectangle{HalfExtents: mgl32.Vec2{2, 1}}, BodyTypeDynamic)
		body.AngularVelocity = 1

		body.Integrate(0.5)

		if body.Transform.Angle != 0.5 {
			t.Errorf("Angle = %v, want 0.5", body.Transform.Angle)
		}
		// Les bornes d'un rectangle tourné sont plus larges que 2x1
		if body.Bounds().Height() <= 2 {
			t.Errorf("rotated bounds should be taller than the resting shape, got %+v", body.Bounds())
		}
	})
}
