package octree

import (
	"fmt"
	"io"
)

// Dump writes a human-readable, indented text rendering of the
// subtree rooted at ref to w: one line per node, showing level, kind,
// mass, and particle count. Useful for debugging a build by eye, and
// for comparing tree topology across a clear+rebuild cycle in tests.
func (a *Arena) Dump(w io.Writer, ref NodeRef) {
	a.dump(w, ref)
}

func (a *Arena) dump(w io.Writer, ref NodeRef) {
	if ref == NoNode {
		return
	}
	n := a.Node(ref)
	indent := ""
	for i := 0; i < n.Level; i++ {
		indent += "  "
	}
	switch n.Kind {
	case Leaf:
		fmt.Fprintf(
			w, "%sLeaf  size=%.6g mass=%.6g particles=%d bucket=%v\n",
			indent, n.Size, n.Mass, n.ParticleCount, n.LeafBucket,
		)
	case Internal:
		fmt.Fprintf(
			w, "%sNode  size=%.6g mass=%.6g particles=%d\n",
			indent, n.Size, n.Mass, n.ParticleCount,
		)
		for _, childRef := range n.Children {
			a.dump(w, childRef)
		}
	default:
		fmt.Fprintf(w, "%sEmpty\n", indent)
	}
}
