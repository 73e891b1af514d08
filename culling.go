package plume

import (
	"sync"

	"github.com/akmonengine/plume/actor"
)

// Cull returns the indices of the bodies whose bounds intersect the view
// box, preserving input order. Bodies touching the view edge are visible.
func Cull(view actor.Box, bodies []*actor.Body, workersCount int) []int {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	chunkSize := (len(bodies) + workersCount - 1) / workersCount
	results := make([][]int, workersCount)

	var wg sync.WaitGroup
	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min(start+chunkSize, len(bodies))
		if start >= end {
			break
		}

		wg.Add(1)
		go func(workerID, start, end int) {
			defer wg.Done()

			visible := make([]int, 0, end-start)
			for i := start; i < end; i++ {
				if view.Intersects(bodies[i].Bounds()) {
					visible = append(visible, i)
				}
			}
			results[workerID] = visible
		}(workerID, start, end)
	}
	wg.Wait()

	// Les chunks sont contigus, la concaténation garde l'ordre d'entrée
	indices := make([]int, 0, len(bodies))
	for _, r := range results {
		indices = append(indices, r...)
	}

	return indices
}

// CullMargin culls against the view box enlarged by margin on every side,
// keeping bodies that are about to enter the view.
func CullMargin(view actor.Box, margin float32, bodies []*actor.Body, workersCount int) []int {
	return Cull(view.Enlarged(margin), bodies, workersCount)
}
