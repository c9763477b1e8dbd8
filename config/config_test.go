package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHasAmbientConstants(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultG, c.G)
	assert.Equal(t, DefaultEpsilon2, c.Epsilon2)
}

func TestValidateRejectsNonPositiveTheta(t *testing.T) {
	c := Default()
	c.Theta = 0
	c.MaxParticlesPerLeaf = 1
	c.Dt = 0.01

	err := c.Validate()
	a := assert.New(t)
	a.Error(err)
	cfgErr, ok := err.(*Error)
	a.True(ok)
	a.Equal(InvalidConfig, cfgErr.Kind)
}

func TestValidateRejectsZeroLeafCapacity(t *testing.T) {
	c := Default()
	c.Theta = 0.5
	c.MaxParticlesPerLeaf = 0
	c.Dt = 0.01

	assert.Error(t, c.Validate())
}

func TestValidateRejectsNonPositiveDt(t *testing.T) {
	c := Default()
	c.Theta = 0.5
	c.MaxParticlesPerLeaf = 1
	c.Dt = 0

	assert.Error(t, c.Validate())
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	c := SimulationConfig{
		G:                   1.0,
		Epsilon2:            1e-6,
		Theta:               0.5,
		MaxParticlesPerLeaf: 8,
		Dt:                  0.01,
	}
	assert.NoError(t, c.Validate())
}
