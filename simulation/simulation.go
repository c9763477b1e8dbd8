// Package simulation exposes the Barnes-Hut pipeline as a single
// facade type, wrapping the per-step pipeline behind one entry point
// for the CLI driver.
package simulation

import (
	"runtime"

	"github.com/phil-mansfield/barnes-hut/config"
	"github.com/phil-mansfield/barnes-hut/integrate"
	"github.com/phil-mansfield/barnes-hut/octree"
	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/stats"
	"github.com/phil-mansfield/barnes-hut/vector"
)

// Simulator owns a node arena and drives one Barnes-Hut step at a
// time over a caller-supplied particle sequence. It borrows the
// sequence for the duration of Step; it never copies or reorders it.
type Simulator struct {
	cfg     config.SimulationConfig
	arena   *octree.Arena
	workers int
	rec     stats.Recorder

	tree *octree.Tree
}

// New constructs a Simulator with an arena sized to the given
// particle count. cfg.MaxParticlesPerLeaf, cfg.Theta, cfg.G, and
// cfg.Epsilon2 govern tree construction and force evaluation; cfg.Dt
// governs integration. workers <= 0 defaults to GOMAXPROCS.
func New(cfg config.SimulationConfig, particleCount int, workers int) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	arena := octree.NewArena(arenaCapacity(particleCount))
	return &Simulator{cfg: cfg, arena: arena, workers: workers}, nil
}

// arenaCapacity sizes the arena generously enough that a typical
// octree over particleCount particles never exhausts it: one leaf per
// particle in the worst case, plus their internal ancestors.
func arenaCapacity(particleCount int) int {
	capacity := particleCount*4 + 64
	if capacity < 64 {
		capacity = 64
	}
	return capacity
}

// Step executes one full pipeline pass over particles: bounds fit,
// tree build, mass aggregation, force evaluation, and leapfrog
// integration, in that order. particles is mutated in place; Step
// does not allocate particle storage.
//
// TreeBuilder completes before MassAggregator begins; MassAggregator
// completes before ForceEvaluator begins; ForceEvaluator completes
// before Integrator begins.
func (s *Simulator) Step(particles []particle.Particle) error {
	s.rec.Reset()
	particle.ResetForces(particles)

	var center vector.Vector3
	var size float64
	s.rec.TimeBoundsFit(func() {
		center, size = octree.BoundsFit(particles)
	})

	var tree *octree.Tree
	var buildErr error
	s.rec.TimeBuild(func() {
		tree, buildErr = octree.BuildFromBounds(s.arena, particles, s.cfg.MaxParticlesPerLeaf, center, size)
	})
	if buildErr != nil {
		return buildErr
	}
	s.tree = tree

	s.rec.TimeAggregate(func() {
		octree.AggregateParallel(s.arena, s.tree.Root, particles)
	})

	var fstats octree.ForceStats
	s.rec.TimeForce(func() {
		fstats = octree.EvaluateForces(s.arena, s.tree.Root, particles, octree.ForceParams{
			G:        s.cfg.G,
			Epsilon2: s.cfg.Epsilon2,
			Theta:    s.cfg.Theta,
		}, s.workers)
	})
	s.rec.SetInteractionCounts(fstats.ParticleCellInteractions, fstats.DirectPairInteractions)

	s.rec.TimeIntegrate(func() {
		integrate.Step(particles, s.cfg.Dt)
	})

	s.rec.SetTreeShape(s.arena.Len(), s.tree.MaxDepth, s.tree.CoLocatedOverflows)
	return nil
}

// Clear invalidates the current tree and resets the arena. A
// subsequent Step rebuilds from scratch, producing the same topology
// Build(particles) would from an empty arena.
func (s *Simulator) Clear() {
	s.arena.Reset()
	s.tree = nil
}

// Stats returns the most recently recorded step's measurements.
func (s *Simulator) Stats() stats.Snapshot {
	return s.rec.Snapshot()
}
