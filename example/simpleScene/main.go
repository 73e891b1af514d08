package main

import (
	"fmt"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/actor"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	world := &plume.World{
		SpatialGrid: plume.NewSpatialGrid(2.0, 256),
		Workers:     4,
		Events:      plume.NewEvents(),
	}

	// Un sol statique et deux mobiles qui se croisent
	ground := actor.NewBody(
		actor.Transform{Position: mgl32.Vec2{0, -2}},
		&actor.Rectangle{HalfExtents: mgl32.Vec2{10, 0.5}},
		actor.BodyTypeStatic,
	)
	world.AddBody(ground)

	left := actor.NewBody(
		actor.Transform{Position: mgl32.Vec2{-4, 0}},
		&actor.Circle{Radius: 1},
		actor.BodyTypeDynamic,
	)
	left.Velocity = mgl32.Vec2{2, 0}
	world.AddBody(left)

	right := actor.NewBody(
		actor.Transform{Position: mgl32.Vec2{4, 0}},
		&actor.Rectangle{HalfExtents: mgl32.Vec2{1, 1}},
		actor.BodyTypeDynamic,
	)
	right.Velocity = mgl32.Vec2{-2, 0}
	world.AddBody(right)

	// Une zone déclencheur au centre de la scène
	zone := actor.NewBody(
		actor.Transform{Position: mgl32.Vec2{0, 0}},
		&actor.Rectangle{HalfExtents: mgl32.Vec2{1.5, 1.5}},
		actor.BodyTypeStatic,
	)
	zone.IsTrigger = true
	world.AddBody(zone)

	world.Events.Subscribe(plume.TRIGGER_ENTER, func(event plume.Event) {
		e := event.(plume.TriggerEnterEvent)
		fmt.Printf("  trigger enter: %v <-> %v\n", e.BodyA.Transform.Position, e.BodyB.Transform.Position)
	})
	world.Events.Subscribe(plume.TRIGGER_EXIT, func(event plume.Event) {
		fmt.Println("  trigger exit")
	})
	world.Events.Subscribe(plume.CONTACT_ENTER, func(event plume.Event) {
		e := event.(plume.ContactEnterEvent)
		fmt.Printf("  contact enter: %v <-> %v\n", e.BodyA.Transform.Position, e.BodyB.Transform.Position)
	})

	view := actor.BoxCenteredAt(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 10})

	dt := float32(1.0 / 60.0)
	for step := 0; step < 300; step++ {
		contacts := world.Step(dt)

		for _, contact := range contacts {
			fmt.Printf("step %3d: contact normal=%v penetration=%.4f at %v\n",
				step, contact.Normal, contact.Penetration, contact.Position)
		}

		if step%60 == 0 {
			visible := world.Cull(view)
			fmt.Printf("step %3d: %d/%d bodies visible in %v\n",
				step, len(visible), len(world.Bodies), view)
		}
	}
}
