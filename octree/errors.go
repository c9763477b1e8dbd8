package octree

import "fmt"

// Kind of the two error conditions the core tree machinery can raise.
// Both are non-recoverable at the insertion level: the core reports
// them as typed values and does not print; the driver decides how to
// surface and exit (see cmd/bh).
type ErrorKind int

const (
	// InvalidGeometry is raised when a node has zero size during
	// insertion. It indicates a bug in BoundsFit (or a caller that
	// built a tree without going through it) and is never expected in
	// normal operation.
	InvalidGeometry ErrorKind = iota
	// ArenaExhausted is raised when the arena refuses to grow past its
	// configured node ceiling (host-memory exhaustion, modeled as a
	// configurable cap so the failure path is testable).
	ArenaExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case ArenaExhausted:
		return "ArenaExhausted"
	default:
		return "Unknown"
	}
}

// Error is the typed error raised by tree construction.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
