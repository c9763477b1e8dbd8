package particle

import (
	"testing"

	"github.com/phil-mansfield/barnes-hut/vector"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New(3, 2.5, vector.Vector3{1, 2, 3}, vector.Vector3{0, 0, 1})
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, 2.5, p.Mass)
	assert.Equal(t, vector.Vector3{1, 2, 3}, p.Position)
	assert.Equal(t, vector.Vector3{}, p.Force)
}

func TestResetForces(t *testing.T) {
	ps := []Particle{
		New(0, 1, vector.Vector3{}, vector.Vector3{}),
		New(1, 1, vector.Vector3{}, vector.Vector3{}),
	}
	ps[0].Force = vector.Vector3{1, 1, 1}
	ps[1].Force = vector.Vector3{2, 2, 2}

	ResetForces(ps)

	assert.Equal(t, vector.Vector3{}, ps[0].Force)
	assert.Equal(t, vector.Vector3{}, ps[1].Force)
}
