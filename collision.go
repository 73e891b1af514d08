package plume

import (
	"sync"

	"github.com/akmonengine/plume/actor"
	"github.com/go-gl/mathgl/mgl32"
)

// Contact describes the overlap between two bodies' bounding boxes
type Contact struct {
	BodyA *actor.Body
	BodyB *actor.Body
	// Normal points from BodyA towards BodyB along the axis of smallest
	// penetration
	Normal      mgl32.Vec2
	Penetration float32
	// Position is the center of the overlap region
	Position mgl32.Vec2
}

// BroadPhase performs broad-phase overlap detection using AABB tests on a
// spatial grid. It returns pairs of bodies whose boxes overlap and might
// be in contact.
func BroadPhase(spatialGrid *SpatialGrid, bodies []*actor.Body, workersCount int) <-chan Pair {
	spatialGrid.Clear()
	for i, body := range bodies {
		spatialGrid.Insert(i, body)
	}
	spatialGrid.SortCells()

	checkingPairs := spatialGrid.FindPairsParallel(bodies, workersCount)

	return checkingPairs
}

// NarrowPhase confirms candidate pairs and produces contacts. For
// axis-aligned boxes the exact test is the same overlap test the broad
// phase uses, so this phase only computes the contact geometry.
func NarrowPhase(pairs <-chan Pair, workersCount int) []*Contact {
	contactsChan := make(chan *Contact, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(contactsChan)

		for i := 0; i < workersCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for p := range pairs {
					if contact, ok := contactBoxes(p.BodyA, p.BodyB); ok {
						contactsChan <- contact
					}
				}
			}()
		}
		wg.Wait()
	}()

	contacts := make([]*Contact, 0)
	for c := range contactsChan {
		contacts = append(contacts, c)
	}

	return contacts
}

// contactBoxes builds the contact for two overlapping bodies: the normal
// follows the axis of smallest penetration (minimum translation vector),
// the position is the center of the intersection box. Edge-touching boxes
// produce a zero-penetration contact.
func contactBoxes(bodyA, bodyB *actor.Body) (*Contact, bool) {
	boundsA := bodyA.Bounds()
	boundsB := bodyB.Bounds()

	if !boundsA.Intersects(boundsB) {
		return nil, false
	}

	overlap := boundsA.Intersect(boundsB)

	var normal mgl32.Vec2
	var penetration float32
	if overlap.Width() <= overlap.Height() {
		penetration = overlap.Width()
		if boundsA.Center().X() <= boundsB.Center().X() {
			normal = mgl32.Vec2{1, 0}
		} else {
			normal = mgl32.Vec2{-1, 0}
		}
	} else {
		penetration = overlap.Height()
		if boundsA.Center().Y() <= boundsB.Center().Y() {
			normal = mgl32.Vec2{0, 1}
		} else {
			normal = mgl32.Vec2{0, -1}
		}
	}

	return &Contact{
		BodyA:       bodyA,
		BodyB:       bodyB,
		Normal:      normal,
		Penetration: penetration,
		Position:    overlap.Center(),
	}, true
}
