// Package particleio reads and writes the simulation's text file
// formats: the whitespace-separated particle input format and the
// key=value-header snapshot output format.
package particleio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/vector"
)

// Header carries the run parameters that precede a particle file's
// particle records.
type Header struct {
	N       int
	TStart  float64
	TEnd    float64
	Dt      float64
}

// ErrorKind tags the failure modes ReadParticles and the snapshot
// writers can report.
type ErrorKind int

const (
	// InvalidConfig marks a malformed header: N <= 0, TEnd <= TStart,
	// or Dt <= 0.
	InvalidConfig ErrorKind = iota
	// InvalidParticle marks a particle record with non-positive mass
	// or a token that fails to parse as a float.
	InvalidParticle
	// IOError wraps an underlying read/write failure.
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case InvalidParticle:
		return "InvalidParticle"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Error is the typed error every function in this package returns on
// failure. Line locates the offending record when known. Index is not
// filled in by ReadParticles; its particle-record errors name the
// particle index in Msg instead.
type Error struct {
	Kind  ErrorKind
	Line  int
	Index int
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("particleio: %s at line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("particleio: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// IsValid reports whether h's fields are sane: N positive, t_end
// strictly after t_start, dt positive.
func (h Header) IsValid() bool {
	return h.N > 0 && h.TEnd > h.TStart && h.Dt > 0
}

// ReadParticles parses the whitespace-separated input format from r:
// a four-field header line (N, t_start, t_end, dt) followed by N
// particle records (m x y z vx vy vz). IDs are assigned 0..N-1 in
// file order.
func ReadParticles(r io.Reader) (Header, []particle.Particle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	nextTokens := func() ([]string, bool) {
		for sc.Scan() {
			line++
			fields := strings.Fields(sc.Text())
			if len(fields) == 0 {
				continue
			}
			return fields, true
		}
		return nil, false
	}

	headerFields, ok := nextTokens()
	if !ok {
		return Header{}, nil, newError(IOError, 0, "empty particle file")
	}
	if len(headerFields) < 4 {
		return Header{}, nil, newError(InvalidConfig, line, "expected 4 header fields, got %d", len(headerFields))
	}

	var h Header
	var err error
	if h.N, err = parseInt(headerFields[0]); err != nil {
		return Header{}, nil, newError(InvalidConfig, line, "N: %v", err)
	}
	if h.TStart, err = parseFloat(headerFields[1]); err != nil {
		return Header{}, nil, newError(InvalidConfig, line, "t_start: %v", err)
	}
	if h.TEnd, err = parseFloat(headerFields[2]); err != nil {
		return Header{}, nil, newError(InvalidConfig, line, "t_end: %v", err)
	}
	if h.Dt, err = parseFloat(headerFields[3]); err != nil {
		return Header{}, nil, newError(InvalidConfig, line, "dt: %v", err)
	}
	if !h.IsValid() {
		return Header{}, nil, newError(InvalidConfig, line, "header out of range: %+v", h)
	}

	particles := make([]particle.Particle, 0, h.N)
	for i := 0; i < h.N; i++ {
		fields, ok := nextTokens()
		if !ok {
			return Header{}, nil, newError(InvalidParticle, line, "expected particle %d, reached end of file", i)
		}
		if len(fields) < 7 {
			return Header{}, nil, newError(InvalidParticle, line, "particle %d: expected 7 fields, got %d", i, len(fields))
		}

		mass, err := parseFloat(fields[0])
		if err != nil {
			return Header{}, nil, newError(InvalidParticle, line, "particle %d mass: %v", i, err)
		}
		if mass <= 0 {
			return Header{}, nil, newError(InvalidParticle, line, "particle %d: mass must be positive, got %g", i, mass)
		}

		var pos, vel vector.Vector3
		for d := 0; d < 3; d++ {
			if pos[d], err = parseFloat(fields[1+d]); err != nil {
				return Header{}, nil, newError(InvalidParticle, line, "particle %d position[%d]: %v", i, d, err)
			}
			if vel[d], err = parseFloat(fields[4+d]); err != nil {
				return Header{}, nil, newError(InvalidParticle, line, "particle %d velocity[%d]: %v", i, d, err)
			}
		}

		particles = append(particles, particle.New(i, mass, pos, vel))
	}

	if err := sc.Err(); err != nil {
		return Header{}, nil, &Error{Kind: IOError, Msg: "scanning particle file", Err: err}
	}
	return h, particles, nil
}

// WriteParticles writes the whitespace-separated input format: the
// four-field header line followed by one "m x y z vx vy vz" line per
// particle, in slice order. It is the inverse of ReadParticles, used
// by the test-data generator to emit catalogs the pipeline can load.
func WriteParticles(w io.Writer, h Header, particles []particle.Particle) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %g %g %g\n", h.N, h.TStart, h.TEnd, h.Dt); err != nil {
		return &Error{Kind: IOError, Msg: "writing header line", Err: err}
	}
	for _, p := range particles {
		if _, err := fmt.Fprintf(bw, "%.8g %.8g %.8g %.8g %.8g %.8g %.8g\n",
			p.Mass, p.Position[0], p.Position[1], p.Position[2],
			p.Velocity[0], p.Velocity[1], p.Velocity[2]); err != nil {
			return &Error{Kind: IOError, Msg: "writing particle line", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &Error{Kind: IOError, Msg: "flushing particle file", Err: err}
	}
	return nil
}
