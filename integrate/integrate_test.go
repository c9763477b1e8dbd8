package integrate

import (
	"testing"

	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/vector"
	"github.com/stretchr/testify/assert"
)

func TestStepKickDriftKick(t *testing.T) {
	p := particle.New(0, 2.0, vector.Vector3{0, 0, 0}, vector.Vector3{0, 0, 0})
	p.Force = vector.Vector3{4, 0, 0} // a = F/m = 2

	ps := []particle.Particle{p}
	Step(ps, 0.1)

	// v = 0 + a*dt/2 + a*dt/2 = a*dt = 0.2
	assert.InDelta(t, 0.2, ps[0].Velocity[0], 1e-12)
	// x = 0 + v_half*dt where v_half = a*dt/2 = 0.1 -> x = 0.01
	assert.InDelta(t, 0.01, ps[0].Position[0], 1e-12)
}

func TestStepPreservesOtherAxes(t *testing.T) {
	p := particle.New(0, 1.0, vector.Vector3{1, 2, 3}, vector.Vector3{0, 0, 0})
	ps := []particle.Particle{p}
	Step(ps, 0.01)

	assert.Equal(t, 1.0, ps[0].Position[0])
	assert.Equal(t, 2.0, ps[0].Position[1])
	assert.Equal(t, 3.0, ps[0].Position[2])
}

func TestSelfForceGuardScenario(t *testing.T) {
	// N=1, m=1, x=(0,0,0), v=(1,0,0), F=(0,0,0), dt=0.01: x -> (0.01,0,0).
	p := particle.New(0, 1, vector.Vector3{0, 0, 0}, vector.Vector3{1, 0, 0})
	ps := []particle.Particle{p}
	Step(ps, 0.01)

	assert.InDelta(t, 0.01, ps[0].Position[0], 1e-12)
	assert.InDelta(t, 0, ps[0].Position[1], 1e-12)
	assert.InDelta(t, 0, ps[0].Position[2], 1e-12)
	assert.InDelta(t, 1, ps[0].Velocity[0], 1e-12)
}

func TestStepRangeMatchesStep(t *testing.T) {
	a := particle.New(0, 1, vector.Vector3{0, 0, 0}, vector.Vector3{1, 0, 0})
	a.Force = vector.Vector3{1, 1, 1}
	b := particle.New(1, 1, vector.Vector3{1, 1, 1}, vector.Vector3{0, 1, 0})
	b.Force = vector.Vector3{2, 0, 0}

	whole := []particle.Particle{a, b}
	Step(whole, 0.05)

	ranged := []particle.Particle{a, b}
	StepRange(ranged, 0, 1, 0.05)
	StepRange(ranged, 1, 2, 0.05)

	assert.Equal(t, whole, ranged)
}
