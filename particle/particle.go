// Package particle defines the point-mass type carried through the
// simulation pipeline. Loading particles from disk lives in particleio;
// this package owns only the in-memory representation.
package particle

import "github.com/phil-mansfield/barnes-hut/vector"

// Particle is a point mass with a position, a velocity, and a
// per-step force accumulator. ID is stable across steps and equal to
// the particle's index in the input sequence.
//
// Particles are exclusively owned by the simulation driver; the octree
// holds only non-owning references to them.
type Particle struct {
	ID       int
	Mass     float64
	Position vector.Vector3
	Velocity vector.Vector3
	Force    vector.Vector3
}

// New returns a Particle with the given id, mass, position, and
// velocity and a zeroed force accumulator.
func New(id int, mass float64, position, velocity vector.Vector3) Particle {
	return Particle{ID: id, Mass: mass, Position: position, Velocity: velocity}
}

// ResetForce zeroes p's force accumulator. Called once per step before
// ForceEvaluator runs.
func (p *Particle) ResetForce() {
	p.Force = vector.Vector3{}
}

// ResetForces zeroes the force accumulator of every particle in ps.
// This is the "force reset" pass named in the concurrency model: it is
// embarrassingly parallel over particles.
func ResetForces(ps []Particle) {
	for i := range ps {
		ps[i].ResetForce()
	}
}
