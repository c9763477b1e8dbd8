package particleio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParticlesWellFormed(t *testing.T) {
	input := `2 0.0 1.0 0.01
1.0 0 0 0 0 0 0
2.0 1 1 1 0 0 0
`
	h, particles, err := ReadParticles(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, h.N)
	assert.Equal(t, 0.0, h.TStart)
	assert.Equal(t, 1.0, h.TEnd)
	assert.Equal(t, 0.01, h.Dt)
	require.Len(t, particles, 2)
	assert.Equal(t, 1.0, particles[0].Mass)
	assert.Equal(t, 0, particles[0].ID)
	assert.Equal(t, 2.0, particles[1].Mass)
	assert.Equal(t, 1, particles[1].ID)
}

func TestReadParticlesRejectsBadHeader(t *testing.T) {
	input := `0 0.0 1.0 0.01
`
	_, _, err := ReadParticles(strings.NewReader(input))
	require.Error(t, err)
	pErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidConfig, pErr.Kind)
}

func TestReadParticlesRejectsTEndBeforeTStart(t *testing.T) {
	input := `1 1.0 0.5 0.01
1.0 0 0 0 0 0 0
`
	_, _, err := ReadParticles(strings.NewReader(input))
	require.Error(t, err)
}

func TestReadParticlesRejectsNonPositiveMass(t *testing.T) {
	input := `1 0.0 1.0 0.01
0.0 0 0 0 0 0 0
`
	_, _, err := ReadParticles(strings.NewReader(input))
	require.Error(t, err)
	pErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidParticle, pErr.Kind)
}

func TestReadParticlesRejectsTruncatedFile(t *testing.T) {
	input := `2 0.0 1.0 0.01
1.0 0 0 0 0 0 0
`
	_, _, err := ReadParticles(strings.NewReader(input))
	require.Error(t, err)
}

func TestReadParticlesSkipsBlankLines(t *testing.T) {
	input := "1 0.0 1.0 0.01\n\n1.0 0 0 0 0 0 0\n\n"
	_, particles, err := ReadParticles(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, particles, 1)
}

func TestWriteForceSnapshotRoundTrip(t *testing.T) {
	input := `2 0.0 1.0 0.01
1.0 0 0 0 0 0 0
2.0 1 1 1 0 0 0
`
	_, particles, err := ReadParticles(strings.NewReader(input))
	require.NoError(t, err)
	particles[0].Force[0] = 1.5
	particles[1].Force[2] = -2.25

	var buf strings.Builder
	require.NoError(t, WriteForceSnapshot(&buf, "steps=1 total_time=0.100000", particles))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "steps=1 total_time=0.100000", lines[0])
	assert.Equal(t, "2", lines[1])
}

func TestWritePositionSnapshotCount(t *testing.T) {
	input := `1 0.0 1.0 0.01
1.0 2 3 4 0 0 0
`
	_, particles, err := ReadParticles(strings.NewReader(input))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WritePositionSnapshot(&buf, "header", particles))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1", lines[1])
}
