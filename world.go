package plume

import (
	"github.com/akmonengine/plume/actor"
)

const DEFAULT_WORKERS = 1

type World struct {
	// List of all bodies in the world
	Bodies      []*actor.Body
	SpatialGrid *SpatialGrid
	Workers     int

	Events Events
}

// AddBody adds a body to the world
func (w *World) AddBody(body *actor.Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world
func (w *World) RemoveBody(body *actor.Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	for pair := range w.Events.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(w.Events.previousActivePairs, pair)
		}
	}
}

// Step advances all bodies, detects overlapping pairs and emits events.
// It returns the non-trigger contacts of this step; no resolution is
// applied, callers decide what a contact means.
func (w *World) Step(dt float32) []*Contact {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	// Phase 1: advance bodies and refresh their bounds
	w.integrate(dt)

	// Phase 2.0: overlap pair finding - Broad phase
	// Phase 2.1: overlap pair finding - narrow phase
	contacts := w.detectContacts()

	// Phase 3: pair tracking for Enter/Stay/Exit events
	contacts = w.Events.recordContacts(contacts)

	w.Events.flush()

	return contacts
}

// Cull returns the indices of bodies visible in the view box
func (w *World) Cull(view actor.Box) []int {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	return Cull(view, w.Bodies, w.Workers)
}

func (w *World) integrate(dt float32) {
	task(w.Workers, w.Bodies, func(body *actor.Body) {
		body.Integrate(dt)
	})
}

func (w *World) detectContacts() []*Contact {
	return NarrowPhase(BroadPhase(w.SpatialGrid, w.Bodies, w.Workers), w.Workers)
}
