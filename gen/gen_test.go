package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParticleCount(t *testing.T) {
	s := DefaultScenario(50, 0.0, 1.0, 0.01)
	h, particles := Generate(s, 42)
	assert.Equal(t, 50, h.N)
	assert.Len(t, particles, 50)
}

func TestGenerateWithinRanges(t *testing.T) {
	s := DefaultScenario(200, 0.0, 1.0, 0.01)
	_, particles := Generate(s, 7)

	for _, p := range particles {
		require.GreaterOrEqual(t, p.Mass, s.MassMin)
		require.Less(t, p.Mass, s.MassMax)
		for d := 0; d < 3; d++ {
			require.GreaterOrEqual(t, p.Position[d], 0.0)
			require.Less(t, p.Position[d], s.BoxWidth)
			require.GreaterOrEqual(t, p.Velocity[d], 0.0)
			require.Less(t, p.Velocity[d], s.VelocityMax)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	s := DefaultScenario(10, 0.0, 1.0, 0.01)
	_, a := Generate(s, 99)
	_, b := Generate(s, 99)
	assert.Equal(t, a, b)
}

func TestGenerateAssignsSequentialIDs(t *testing.T) {
	s := DefaultScenario(5, 0.0, 1.0, 0.01)
	_, particles := Generate(s, 1)
	for i, p := range particles {
		assert.Equal(t, i, p.ID)
	}
}

func TestDefaultScenarioMatchesReferenceRanges(t *testing.T) {
	s := DefaultScenario(1, 0, 1, 0.1)
	assert.Equal(t, 5000.0, s.MassMin)
	assert.Equal(t, 15000.0, s.MassMax)
	assert.Equal(t, 10.0, s.BoxWidth)
	assert.Equal(t, 100.0, s.VelocityMax)
}
