package octree

import "github.com/phil-mansfield/barnes-hut/vector"

// Kind tags the payload a Node currently carries: Empty carries no
// payload, Leaf carries a bucket of particle indices, Internal carries
// up to NSUB child references.
type Kind uint8

const (
	// Empty is the zero value: a node with no particles in its subtree.
	Empty Kind = iota
	// Leaf holds a bucket of particle indices directly.
	Leaf
	// Internal holds up to NSUB non-empty children.
	Internal
)

// NDIM is the dimensionality of the simulation, fixed by the octree
// geometry.
const NDIM = 3

// NSUB is the number of octants a cube is split into, fixed by NDIM.
const NSUB = 1 << NDIM

// Node is a cubical region of space carrying aggregate physical state.
// Common aggregate fields (centre, size, mass, mass centre, particle
// count, level) live outside the Kind tag; only the payload below
// (Children vs LeafBucket) differs by tag.
type Node struct {
	Kind Kind

	GeoCenter     vector.Vector3
	Size          float64
	Mass          float64
	MassCenter    vector.Vector3
	ParticleCount int
	Level         int

	// Children holds, for each of the NSUB octants, either a valid
	// NodeRef (Internal payload) or NoNode (absent child / Empty
	// subtree). Populated only when Kind == Internal, but the slots
	// remain addressable regardless of Kind so that promotion (Leaf ->
	// Internal) never needs to allocate a new backing array.
	Children [NSUB]NodeRef

	// LeafBucket holds the arena-external indices of particles
	// contained directly in this node. Meaningful only when
	// Kind == Leaf; preserves insertion order.
	LeafBucket []int
}

// reset clears a Node to its zero state so it is safe to hand out from
// Arena.Allocate again after an arena Reset.
func (n *Node) reset() {
	n.Kind = Empty
	n.GeoCenter = vector.Vector3{}
	n.Size = 0
	n.Mass = 0
	n.MassCenter = vector.Vector3{}
	n.ParticleCount = 0
	n.Level = 0
	for i := range n.Children {
		n.Children[i] = NoNode
	}
	n.LeafBucket = n.LeafBucket[:0]
}

// Octant returns the 3-bit octant index of position p relative to a
// node whose geometric centre is center: bit k is set iff p[k] is
// greater than or equal to center[k]. The predicate is load-bearing:
// using >= (not >) everywhere makes the partition half-open [lo, hi)
// on every axis, which BoundsFit's padding relies on.
func Octant(p, center vector.Vector3) int {
	c := 0
	for k := 0; k < NDIM; k++ {
		if p[k] >= center[k] {
			c |= 1 << uint(k)
		}
	}
	return c
}

// ChildCenter returns the geometric centre of the child cube in octant
// c of a node with the given centre and size. The offset is ±size/4 on
// each axis, positive when bit k of c is set.
func ChildCenter(center vector.Vector3, size float64, c int) vector.Vector3 {
	var out vector.Vector3
	offset := size / 4
	for k := 0; k < NDIM; k++ {
		if c&(1<<uint(k)) != 0 {
			out[k] = center[k] + offset
		} else {
			out[k] = center[k] - offset
		}
	}
	return out
}

// Contains reports whether position p lies within this node's cube
// under the half-open convention: [center[k] - size/2, center[k] +
// size/2) on every axis.
func (n *Node) Contains(p vector.Vector3) bool {
	half := n.Size / 2
	for k := 0; k < NDIM; k++ {
		lo, hi := n.GeoCenter[k]-half, n.GeoCenter[k]+half
		if p[k] < lo || p[k] >= hi {
			return false
		}
	}
	return true
}
