// Package gen synthesizes random particle data for testing, uniformly
// distributed over configurable mass, position, and velocity ranges,
// with scenario presets read from gcfg INI files.
package gen

import (
	"math/rand"

	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/particleio"
	"github.com/phil-mansfield/barnes-hut/vector"
	"gopkg.in/gcfg.v1"
)

// Scenario is a named particle-generation preset, loaded from a gcfg
// INI file via LoadScenario. Ranges are inclusive-low, exclusive-high
// uniform draws, matching generate_random's [lo, hi) convention.
type Scenario struct {
	Particles   int
	MassMin     float64
	MassMax     float64
	BoxWidth    float64
	VelocityMax float64
	TStart      float64
	TEnd        float64
	Dt          float64
}

// gcfgFile mirrors the INI section structure gcfg expects; Scenario
// itself stays free of gcfg-specific field tags so it can also be
// built programmatically by callers that skip the config file.
type gcfgFile struct {
	Scenario struct {
		Particles   int
		MassMin     float64 `gcfg:"mass-min"`
		MassMax     float64 `gcfg:"mass-max"`
		BoxWidth    float64 `gcfg:"box-width"`
		VelocityMax float64 `gcfg:"velocity-max"`
		TStart      float64 `gcfg:"t-start"`
		TEnd        float64 `gcfg:"t-end"`
		Dt          float64
	}
}

// DefaultScenario reproduces generate_data.cpp's fixed ranges: mass in
// [5000, 15000), position in [0, 10) per axis, velocity in [0, 100)
// per axis.
func DefaultScenario(particles int, tStart, tEnd, dt float64) Scenario {
	return Scenario{
		Particles:   particles,
		MassMin:     5000,
		MassMax:     15000,
		BoxWidth:    10,
		VelocityMax: 100,
		TStart:      tStart,
		TEnd:        tEnd,
		Dt:          dt,
	}
}

// LoadScenario parses a gcfg INI file of the form:
//
//	[scenario]
//	particles    = 1000
//	mass-min     = 5000
//	mass-max     = 15000
//	box-width    = 10
//	velocity-max = 100
//	t-start      = 0.0
//	t-end        = 1.0
//	dt           = 0.01
func LoadScenario(path string) (Scenario, error) {
	var f gcfgFile
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return Scenario{}, err
	}
	return Scenario{
		Particles:   f.Scenario.Particles,
		MassMin:     f.Scenario.MassMin,
		MassMax:     f.Scenario.MassMax,
		BoxWidth:    f.Scenario.BoxWidth,
		VelocityMax: f.Scenario.VelocityMax,
		TStart:      f.Scenario.TStart,
		TEnd:        f.Scenario.TEnd,
		Dt:          f.Scenario.Dt,
	}, nil
}

// Generate draws Scenario.Particles particles uniformly at random
// within the scenario's mass, position, and velocity ranges, seeded
// deterministically from seed so runs are reproducible.
func Generate(s Scenario, seed int64) (particleio.Header, []particle.Particle) {
	rng := rand.New(rand.NewSource(seed))

	particles := make([]particle.Particle, s.Particles)
	for i := range particles {
		mass := uniform(rng, s.MassMin, s.MassMax)
		var pos, vel vector.Vector3
		for d := 0; d < 3; d++ {
			pos[d] = uniform(rng, 0, s.BoxWidth)
			vel[d] = uniform(rng, 0, s.VelocityMax)
		}
		particles[i] = particle.New(i, mass, pos, vel)
	}

	header := particleio.Header{N: s.Particles, TStart: s.TStart, TEnd: s.TEnd, Dt: s.Dt}
	return header, particles
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
