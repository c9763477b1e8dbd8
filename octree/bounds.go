package octree

import (
	"math"

	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/vector"
)

// BoundsFit computes the cubical bounding region enclosing every
// particle's position. Returns the sentinel (origin, 1) for an empty
// input.
//
// The single-threaded axis-wise min/max pass below is the one named in
// the concurrency model as embarrassingly parallel (range-reducible);
// it is kept sequential here since BoundsFit is ~3% of per-step cost
// and the reduction is trivial to parallelize later without touching
// its contract.
func BoundsFit(particles []particle.Particle) (center vector.Vector3, size float64) {
	if len(particles) == 0 {
		return vector.Vector3{}, 1
	}

	min := particles[0].Position
	max := particles[0].Position
	for _, p := range particles[1:] {
		for k := 0; k < NDIM; k++ {
			if p.Position[k] < min[k] {
				min[k] = p.Position[k]
			}
			if p.Position[k] > max[k] {
				max[k] = p.Position[k]
			}
		}
	}

	extent := 0.0
	for k := 0; k < NDIM; k++ {
		center[k] = (min[k] + max[k]) / 2
		if d := max[k] - min[k]; d > extent {
			extent = d
		}
	}

	// The +1 guarantees that the half-open partition (see Octant)
	// cleanly contains the extremal positions even under coordinate
	// rounding from the ceil.
	size = math.Ceil(extent) + 1
	return center, size
}
