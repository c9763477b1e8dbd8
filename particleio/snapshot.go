package particleio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/phil-mansfield/barnes-hut/particle"
	"github.com/phil-mansfield/barnes-hut/vector"
)

// writeSnapshot renders the shared snapshot layout: a header line of
// arbitrary key=value text, the vector count on its own line, then one
// line per vector in "%+.8e %+.8e %+.8e" order.
func writeSnapshot(w io.Writer, header string, vectors []vector.Vector3) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, header); err != nil {
		return &Error{Kind: IOError, Msg: "writing header line", Err: err}
	}
	if _, err := fmt.Fprintln(bw, len(vectors)); err != nil {
		return &Error{Kind: IOError, Msg: "writing particle count", Err: err}
	}
	for _, v := range vectors {
		if _, err := fmt.Fprintf(bw, "%+.8e %+.8e %+.8e\n", v[0], v[1], v[2]); err != nil {
			return &Error{Kind: IOError, Msg: "writing vector line", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &Error{Kind: IOError, Msg: "flushing snapshot", Err: err}
	}
	return nil
}

// WriteForceSnapshot writes the forces-snapshot file format: header,
// count, then each particle's Force vector in input order.
func WriteForceSnapshot(w io.Writer, header string, particles []particle.Particle) error {
	forces := make([]vector.Vector3, len(particles))
	for i, p := range particles {
		forces[i] = p.Force
	}
	return writeSnapshot(w, header, forces)
}

// WritePositionSnapshot writes the positions-snapshot file format:
// header, count, then each particle's Position vector in input order.
func WritePositionSnapshot(w io.Writer, header string, particles []particle.Particle) error {
	positions := make([]vector.Vector3, len(particles))
	for i, p := range particles {
		positions[i] = p.Position
	}
	return writeSnapshot(w, header, positions)
}
