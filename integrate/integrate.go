// Package integrate advances particle positions and velocities once
// per step using a symplectic kick-drift-kick leapfrog scheme.
package integrate

import "github.com/phil-mansfield/barnes-hut/particle"

// Step advances every particle by dt using kick-drift-kick leapfrog,
// in place:
//
//	a  = F / m
//	v += a * dt/2
//	x += v * dt
//	v += a * dt/2
//
// F is the force already computed for this step (by
// octree.EvaluateForces); a uses the particle's own mass. This is
// second-order accurate in time and symplectic for conservative
// forces.
//
// Step is embarrassingly parallel over particles: each particle's
// update reads and writes only its own fields.
func Step(particles []particle.Particle, dt float64) {
	for i := range particles {
		stepOne(&particles[i], dt)
	}
}

// StepRange advances particles[lo:hi] by dt, letting callers fan the
// work out over a worker pool of their own.
func StepRange(particles []particle.Particle, lo, hi int, dt float64) {
	for i := lo; i < hi; i++ {
		stepOne(&particles[i], dt)
	}
}

func stepOne(p *particle.Particle, dt float64) {
	a := p.Force.Div(p.Mass)
	half := a.Scale(dt / 2)

	p.Velocity = p.Velocity.Add(half)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Velocity = p.Velocity.Add(half)
}
